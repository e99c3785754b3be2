package testutil

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/committer"
)

// noopMut builds a placeholder mutation. Spanner mutations are opaque, so
// fakes assert on recorded calls and plan sizes rather than contents.
func noopMut() *spanner.Mutation {
	return spanner.Delete("noop", spanner.Key{"noop"})
}

// PriceWrite records one UpdatePriceMut call.
type PriceWrite struct {
	ProductID string
	Price     *domain.Money
}

// FakeCatalog is an in-memory contracts.CatalogRepository.
type FakeCatalog struct {
	Products    []*domain.Product
	PriceWrites []PriceWrite
	Inserted    []*domain.Product
	Updated     []*domain.Product
	DeletedIDs  []string
	Categories  []*domain.Category
	GetAllErr   error
}

func (f *FakeCatalog) GetAllProducts(ctx context.Context) ([]*domain.Product, error) {
	if f.GetAllErr != nil {
		return nil, f.GetAllErr
	}
	out := make([]*domain.Product, len(f.Products))
	copy(out, f.Products)
	return out, nil
}

func (f *FakeCatalog) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	for _, p := range f.Products {
		if p.ID() == productID {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (f *FakeCatalog) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	f.Inserted = append(f.Inserted, product)
	return noopMut(), nil
}

func (f *FakeCatalog) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	f.Updated = append(f.Updated, product)
	return noopMut(), nil
}

func (f *FakeCatalog) UpdatePriceMut(productID string, price *domain.Money) (*spanner.Mutation, error) {
	f.PriceWrites = append(f.PriceWrites, PriceWrite{ProductID: productID, Price: price})
	return noopMut(), nil
}

func (f *FakeCatalog) DeleteMut(productID string) *spanner.Mutation {
	f.DeletedIDs = append(f.DeletedIDs, productID)
	return noopMut()
}

func (f *FakeCatalog) InsertCategoryMut(category *domain.Category) *spanner.Mutation {
	f.Categories = append(f.Categories, category)
	return noopMut()
}

// FakeLedger is an in-memory contracts.LedgerRepository. Batches holds the
// current ledger contents, newest last.
type FakeLedger struct {
	Batches  []*domain.PriceChangeBatch
	Inserted []*domain.PriceChangeBatch
	Deleted  []string
	Stale    []string
	PeekErr  error
}

func (f *FakeLedger) PeekLast(ctx context.Context) (*domain.PriceChangeBatch, error) {
	if f.PeekErr != nil {
		return nil, f.PeekErr
	}
	if len(f.Batches) == 0 {
		return nil, domain.ErrEmptyHistory
	}
	return f.Batches[len(f.Batches)-1], nil
}

func (f *FakeLedger) InsertMuts(batch *domain.PriceChangeBatch) ([]*spanner.Mutation, error) {
	f.Inserted = append(f.Inserted, batch)
	muts := make([]*spanner.Mutation, 0, batch.Size()+1)
	muts = append(muts, noopMut())
	for range batch.Entries() {
		muts = append(muts, noopMut())
	}
	return muts, nil
}

func (f *FakeLedger) DeleteMut(batchID string) *spanner.Mutation {
	f.Deleted = append(f.Deleted, batchID)
	return noopMut()
}

func (f *FakeLedger) RecentEntries(ctx context.Context, limit int) ([]contracts.LedgerEntryRecord, error) {
	var records []contracts.LedgerEntryRecord
	for n := len(f.Batches) - 1; n >= 0 && len(records) < limit; n-- {
		b := f.Batches[n]
		entries := b.Entries()
		for m := len(entries) - 1; m >= 0 && len(records) < limit; m-- {
			records = append(records, contracts.LedgerEntryRecord{
				BatchID:   b.ID(),
				Kind:      b.Kind(),
				ProductID: entries[m].ProductID,
				OldPrice:  entries[m].OldPrice,
				NewPrice:  entries[m].NewPrice,
				ChangedAt: b.CreatedAt(),
			})
		}
	}
	return records, nil
}

func (f *FakeLedger) StaleBatchIDs(ctx context.Context, keep int) ([]string, error) {
	return f.Stale, nil
}

// FakeCommitter records applied plans. Err makes Apply fail without side
// effects; OnApply, when set, runs after a successful Apply so tests can
// reflect the commit in their fakes.
type FakeCommitter struct {
	Plans   []*committer.CommitPlan
	Err     error
	OnApply func()
}

func (f *FakeCommitter) Apply(ctx context.Context, plan *committer.CommitPlan) error {
	if f.Err != nil {
		return f.Err
	}
	f.Plans = append(f.Plans, plan)
	if f.OnApply != nil {
		f.OnApply()
	}
	return nil
}
