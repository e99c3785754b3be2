package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/backoffice-service/internal/app/orders/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/orders/domain"
	"github.com/light-bringer/backoffice-service/internal/models/m_order"
	"github.com/light-bringer/backoffice-service/internal/models/m_user"
)

const (
	defaultPerPage  = 20
	maxPerPage      = 100
	defaultLastRows = 5
)

// ReadModel implements order queries against Spanner directly.
type ReadModel struct {
	client *spanner.Client
}

// NewReadModel creates a new orders ReadModel.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModel{client: client}
}

// orderRow carries one joined order plus the owning user's email.
type orderRow struct {
	OrderID          string             `spanner:"order_id"`
	UserID           string             `spanner:"user_id"`
	UserEmail        spanner.NullString `spanner:"user_email"`
	TotalNumerator   int64              `spanner:"total_numerator"`
	TotalDenominator int64              `spanner:"total_denominator"`
	Status           string             `spanner:"status"`
	CreatedAt        time.Time          `spanner:"created_at"`
}

const orderSelect = `
	SELECT o.order_id, o.user_id, u.email AS user_email,
	       o.total_numerator, o.total_denominator, o.status, o.created_at
	FROM orders o
	LEFT JOIN users u ON u.user_id = o.user_id`

// ListOrders retrieves a page of orders with search and status filtering.
func (rm *ReadModel) ListOrders(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	if filter == nil {
		filter = &contracts.ListFilter{}
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	where, params := buildOrderFilter(filter)

	countStmt := spanner.Statement{
		SQL: fmt.Sprintf(`SELECT COUNT(*) FROM %s o
			LEFT JOIN %s u ON u.%s = o.%s%s`,
			m_order.TableName, m_user.TableName, m_user.UserID, m_order.UserID, where),
		Params: params,
	}
	total, err := rm.queryCount(ctx, countStmt)
	if err != nil {
		return nil, err
	}

	listParams := make(map[string]interface{}, len(params)+2)
	for k, v := range params {
		listParams[k] = v
	}
	listParams["limit"] = int64(perPage)
	listParams["offset"] = int64((page - 1) * perPage)

	stmt := spanner.Statement{
		SQL:    orderSelect + where + "\n\tORDER BY o.created_at DESC, o.order_id DESC\n\tLIMIT @limit OFFSET @offset",
		Params: listParams,
	}

	orders, err := rm.queryOrders(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return &contracts.ListResult{Orders: orders, Total: total}, nil
}

// LastOrders retrieves the most recent orders, newest first.
func (rm *ReadModel) LastOrders(ctx context.Context, limit int) ([]*contracts.OrderDTO, error) {
	if limit <= 0 {
		limit = defaultLastRows
	}
	stmt := spanner.Statement{
		SQL:    orderSelect + "\n\tORDER BY o.created_at DESC, o.order_id DESC\n\tLIMIT @limit",
		Params: map[string]interface{}{"limit": int64(limit)},
	}
	return rm.queryOrders(ctx, stmt)
}

// ActiveTimes aggregates order counts by hour of day, hours with no
// orders omitted.
func (rm *ReadModel) ActiveTimes(ctx context.Context) ([]*contracts.HourActivity, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`
			SELECT EXTRACT(HOUR FROM %s) AS hour, COUNT(*) AS order_count
			FROM %s
			GROUP BY hour
			ORDER BY hour
		`, m_order.CreatedAt, m_order.TableName),
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var hours []*contracts.HourActivity
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to aggregate order activity: %s", domain.ErrStoreUnavailable, err)
		}

		var hour, count int64
		if err := row.Columns(&hour, &count); err != nil {
			return nil, fmt.Errorf("failed to parse activity row: %w", err)
		}
		hours = append(hours, &contracts.HourActivity{Hour: hour, Count: count})
	}
	return hours, nil
}

func (rm *ReadModel) queryOrders(ctx context.Context, stmt spanner.Statement) ([]*contracts.OrderDTO, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var orders []*contracts.OrderDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to list orders: %s", domain.ErrStoreUnavailable, err)
		}

		var data orderRow
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse order row: %w", err)
		}
		orders = append(orders, rowToDTO(&data))
	}
	return orders, nil
}

func (rm *ReadModel) queryCount(ctx context.Context, stmt spanner.Statement) (int64, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count orders: %s", domain.ErrStoreUnavailable, err)
	}
	var total int64
	if err := row.Columns(&total); err != nil {
		return 0, fmt.Errorf("failed to parse count row: %w", err)
	}
	return total, nil
}

// buildOrderFilter assembles the WHERE clause for order listing. Search
// terms match as case-insensitive substrings across order id, user email
// and status; every term must match somewhere.
func buildOrderFilter(filter *contracts.ListFilter) (string, map[string]interface{}) {
	params := make(map[string]interface{})
	var conds []string

	if filter.Status != "" {
		conds = append(conds, "o."+m_order.Status+" = @status")
		params["status"] = filter.Status
	}

	terms := strings.Fields(filter.Search)
	for n, term := range terms {
		p := fmt.Sprintf("term%d", n)
		params[p] = "%" + strings.ToLower(term) + "%"
		group := []string{
			fmt.Sprintf("LOWER(o.%s) LIKE @%s", m_order.OrderID, p),
			fmt.Sprintf("LOWER(COALESCE(u.%s, '')) LIKE @%s", m_user.Email, p),
			fmt.Sprintf("LOWER(o.%s) LIKE @%s", m_order.Status, p),
		}
		conds = append(conds, "("+strings.Join(group, " OR ")+")")
	}

	if len(conds) == 0 {
		return "", params
	}
	return "\n\tWHERE " + strings.Join(conds, " AND "), params
}

func rowToDTO(data *orderRow) *contracts.OrderDTO {
	total := 0.0
	if data.TotalDenominator != 0 {
		total = float64(data.TotalNumerator) / float64(data.TotalDenominator)
	}
	return &contracts.OrderDTO{
		OrderID:   data.OrderID,
		UserID:    data.UserID,
		UserEmail: data.UserEmail.StringVal,
		Total:     total,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
	}
}
