package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/internal/models/m_batch_entry"
	"github.com/light-bringer/backoffice-service/internal/models/m_price_batch"
	"github.com/light-bringer/backoffice-service/internal/models/m_product"
)

// LedgerRepo implements LedgerRepository for Spanner.
type LedgerRepo struct {
	client     *spanner.Client
	batchModel *m_price_batch.Model
	entryModel *m_batch_entry.Model
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(client *spanner.Client) contracts.LedgerRepository {
	return &LedgerRepo{
		client:     client,
		batchModel: m_price_batch.NewModel(),
		entryModel: m_batch_entry.NewModel(),
	}
}

// PeekLast returns the most recent batch with its entries.
func (r *LedgerRepo) PeekLast(ctx context.Context) (*domain.PriceChangeBatch, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`
			SELECT %s, %s, %s, %s
			FROM %s
			ORDER BY %s DESC, %s DESC
			LIMIT 1
		`, m_price_batch.BatchID, m_price_batch.Kind, m_price_batch.Parameter, m_price_batch.CreatedAt,
			m_price_batch.TableName, m_price_batch.CreatedAt, m_price_batch.BatchID),
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrEmptyHistory
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read ledger: %s", domain.ErrStoreUnavailable, err)
	}

	var data m_price_batch.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse batch row: %w", err)
	}

	entries, err := r.readEntries(ctx, data.BatchID)
	if err != nil {
		return nil, err
	}

	var parameter *float64
	if data.Parameter.Valid {
		v := data.Parameter.Float64
		parameter = &v
	}

	return domain.NewPriceChangeBatch(
		data.BatchID,
		domain.BatchKind(data.Kind),
		parameter,
		data.CreatedAt,
		entries,
	), nil
}

// InsertMuts creates the mutations appending a batch and its entries.
func (r *LedgerRepo) InsertMuts(batch *domain.PriceChangeBatch) ([]*spanner.Mutation, error) {
	batchData := &m_price_batch.Data{
		BatchID:   batch.ID(),
		Kind:      string(batch.Kind()),
		CreatedAt: batch.CreatedAt(),
	}
	if p := batch.Parameter(); p != nil {
		batchData.Parameter = spanner.NullFloat64{Float64: *p, Valid: true}
	}

	muts := make([]*spanner.Mutation, 0, batch.Size()+1)
	muts = append(muts, r.batchModel.InsertMut(batchData))

	for i, entry := range batch.Entries() {
		if !entry.OldPrice.IsSafeForStorage() || !entry.NewPrice.IsSafeForStorage() {
			return nil, fmt.Errorf("batch entry price exceeds storage capacity: %w", domain.ErrMoneyOverflow)
		}
		muts = append(muts, r.entryModel.InsertMut(&m_batch_entry.Data{
			BatchID:             batch.ID(),
			Seq:                 int64(i),
			ProductID:           entry.ProductID,
			OldPriceNumerator:   entry.OldPrice.Numerator(),
			OldPriceDenominator: entry.OldPrice.Denominator(),
			NewPriceNumerator:   entry.NewPrice.Numerator(),
			NewPriceDenominator: entry.NewPrice.Denominator(),
		}))
	}

	return muts, nil
}

// DeleteMut creates the mutation removing a batch; interleaved entry rows
// cascade with the parent.
func (r *LedgerRepo) DeleteMut(batchID string) *spanner.Mutation {
	return r.batchModel.DeleteMut(batchID)
}

// RecentEntries returns up to limit entries across batches, most recent first.
// Within a batch, entries come back in reverse application order so that the
// global ordering stays newest-first.
func (r *LedgerRepo) RecentEntries(ctx context.Context, limit int) ([]contracts.LedgerEntryRecord, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`
			SELECT b.%s, b.%s, b.%s,
			       e.%s, e.%s, e.%s, e.%s, e.%s,
			       p.%s
			FROM %s AS e
			JOIN %s AS b ON b.%s = e.%s
			LEFT JOIN %s AS p ON p.%s = e.%s
			ORDER BY b.%s DESC, b.%s DESC, e.%s DESC
			LIMIT @limit
		`,
			m_price_batch.BatchID, m_price_batch.Kind, m_price_batch.CreatedAt,
			m_batch_entry.ProductID, m_batch_entry.OldPriceNumerator, m_batch_entry.OldPriceDenominator,
			m_batch_entry.NewPriceNumerator, m_batch_entry.NewPriceDenominator,
			m_product.Name,
			m_batch_entry.TableName,
			m_price_batch.TableName, m_price_batch.BatchID, m_batch_entry.BatchID,
			m_product.TableName, m_product.ProductID, m_batch_entry.ProductID,
			m_price_batch.CreatedAt, m_price_batch.BatchID, m_batch_entry.Seq,
		),
		Params: map[string]interface{}{"limit": int64(limit)},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var records []contracts.LedgerEntryRecord
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read ledger entries: %s", domain.ErrStoreUnavailable, err)
		}

		var (
			batchID, kind  string
			createdAt      spanner.NullTime
			productID      string
			oldNum, oldDen int64
			newNum, newDen int64
			productName    spanner.NullString
		)
		if err := row.Columns(&batchID, &kind, &createdAt, &productID, &oldNum, &oldDen, &newNum, &newDen, &productName); err != nil {
			return nil, fmt.Errorf("failed to parse ledger entry row: %w", err)
		}

		oldPrice, err := domain.NewMoney(oldNum, oldDen)
		if err != nil {
			return nil, fmt.Errorf("invalid stored old price: %w", err)
		}
		newPrice, err := domain.NewMoney(newNum, newDen)
		if err != nil {
			return nil, fmt.Errorf("invalid stored new price: %w", err)
		}

		record := contracts.LedgerEntryRecord{
			BatchID:   batchID,
			Kind:      domain.BatchKind(kind),
			ProductID: productID,
			OldPrice:  oldPrice,
			NewPrice:  newPrice,
		}
		if createdAt.Valid {
			record.ChangedAt = createdAt.Time
		}
		if productName.Valid {
			record.ProductName = productName.StringVal
		}
		records = append(records, record)
	}

	return records, nil
}

// StaleBatchIDs returns ids of batches beyond the retention bound, oldest first.
func (r *LedgerRepo) StaleBatchIDs(ctx context.Context, keep int) ([]string, error) {
	if keep < 0 {
		keep = 0
	}
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`
			SELECT %s
			FROM %s
			ORDER BY %s DESC, %s DESC
			LIMIT 1000 OFFSET @keep
		`, m_price_batch.BatchID, m_price_batch.TableName, m_price_batch.CreatedAt, m_price_batch.BatchID),
		Params: map[string]interface{}{"keep": int64(keep)},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var ids []string
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read stale batches: %s", domain.ErrStoreUnavailable, err)
		}
		var id string
		if err := row.Columns(&id); err != nil {
			return nil, fmt.Errorf("failed to parse batch id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// readEntries loads the entry rows of one batch in application order.
func (r *LedgerRepo) readEntries(ctx context.Context, batchID string) ([]domain.PriceChangeEntry, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`
			SELECT %s, %s, %s, %s, %s
			FROM %s
			WHERE %s = @batchID
			ORDER BY %s
		`, m_batch_entry.ProductID,
			m_batch_entry.OldPriceNumerator, m_batch_entry.OldPriceDenominator,
			m_batch_entry.NewPriceNumerator, m_batch_entry.NewPriceDenominator,
			m_batch_entry.TableName, m_batch_entry.BatchID, m_batch_entry.Seq),
		Params: map[string]interface{}{"batchID": batchID},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var entries []domain.PriceChangeEntry
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read batch entries: %s", domain.ErrStoreUnavailable, err)
		}

		var (
			productID      string
			oldNum, oldDen int64
			newNum, newDen int64
		)
		if err := row.Columns(&productID, &oldNum, &oldDen, &newNum, &newDen); err != nil {
			return nil, fmt.Errorf("failed to parse batch entry row: %w", err)
		}

		oldPrice, err := domain.NewMoney(oldNum, oldDen)
		if err != nil {
			return nil, fmt.Errorf("invalid stored old price: %w", err)
		}
		newPrice, err := domain.NewMoney(newNum, newDen)
		if err != nil {
			return nil, fmt.Errorf("invalid stored new price: %w", err)
		}

		entries = append(entries, domain.PriceChangeEntry{
			ProductID: productID,
			OldPrice:  oldPrice,
			NewPrice:  newPrice,
		})
	}

	return entries, nil
}
