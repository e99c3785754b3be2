package repo

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/internal/models/m_category"
	"github.com/light-bringer/backoffice-service/internal/models/m_product"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// ReadModel implements catalog queries against Spanner directly.
type ReadModel struct {
	client *spanner.Client
}

// NewReadModel creates a new catalog ReadModel.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModel{client: client}
}

// ListProducts retrieves a page of products with multi-term substring search.
func (rm *ReadModel) ListProducts(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
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

	where, params := buildSearchClause(filter.Search)

	countStmt := spanner.Statement{
		SQL:    fmt.Sprintf("SELECT COUNT(*) FROM %s%s", m_product.TableName, where),
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
		SQL: fmt.Sprintf(`
			SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
			FROM %s%s
			ORDER BY %s
			LIMIT @limit OFFSET @offset
		`, m_product.ProductID, m_product.Name, m_product.Description, m_product.CategoryID,
			m_product.PriceNumerator, m_product.PriceDenominator,
			m_product.BaselinePriceNumerator, m_product.BaselinePriceDenominator,
			m_product.Stock, m_product.ImageURL, m_product.CreatedAt, m_product.UpdatedAt,
			m_product.TableName, where, m_product.ProductID),
		Params: listParams,
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var products []*contracts.ProductDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to list products: %s", domain.ErrStoreUnavailable, err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product row: %w", err)
		}
		products = append(products, dataToDTO(&data))
	}

	return &contracts.ListResult{Products: products, Total: total}, nil
}

// ListCategories retrieves all categories ordered by name.
func (rm *ReadModel) ListCategories(ctx context.Context) ([]*contracts.CategoryDTO, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf("SELECT %s, %s, %s FROM %s ORDER BY %s",
			m_category.CategoryID, m_category.Name, m_category.Description,
			m_category.TableName, m_category.Name),
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var categories []*contracts.CategoryDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to list categories: %s", domain.ErrStoreUnavailable, err)
		}

		var data m_category.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse category row: %w", err)
		}
		categories = append(categories, &contracts.CategoryDTO{
			CategoryID:  data.CategoryID,
			Name:        data.Name,
			Description: data.Description,
		})
	}

	return categories, nil
}

// buildSearchClause turns a whitespace-separated search string into a WHERE
// clause requiring every term to match at least one searchable column.
func buildSearchClause(search string) (string, map[string]interface{}) {
	terms := strings.Fields(strings.ToLower(search))
	if len(terms) == 0 {
		return "", map[string]interface{}{}
	}

	params := make(map[string]interface{}, len(terms))
	var groups []string
	for i, term := range terms {
		name := fmt.Sprintf("term%d", i)
		params[name] = "%" + term + "%"
		groups = append(groups, fmt.Sprintf(`(
			LOWER(%s) LIKE @%s
			OR LOWER(%s) LIKE @%s
			OR LOWER(%s) LIKE @%s
			OR LOWER(%s) LIKE @%s
			OR CAST(%s / %s AS STRING) LIKE @%s
			OR CAST(%s AS STRING) LIKE @%s
		)`,
			m_product.ProductID, name,
			m_product.Name, name,
			m_product.Description, name,
			m_product.CategoryID, name,
			m_product.PriceNumerator, m_product.PriceDenominator, name,
			m_product.Stock, name,
		))
	}

	return " WHERE " + strings.Join(groups, " AND "), params
}

// queryCount runs a single-column COUNT query.
func (rm *ReadModel) queryCount(ctx context.Context, stmt spanner.Statement) (int64, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count products: %s", domain.ErrStoreUnavailable, err)
	}
	var total int64
	if err := row.Columns(&total); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return total, nil
}

// dataToDTO converts a product row to its display DTO.
func dataToDTO(data *m_product.Data) *contracts.ProductDTO {
	return &contracts.ProductDTO{
		ProductID:     data.ProductID,
		Name:          data.Name,
		Description:   data.Description,
		CategoryID:    data.CategoryID,
		Price:         float64(data.PriceNumerator) / float64(data.PriceDenominator),
		BaselinePrice: float64(data.BaselinePriceNumerator) / float64(data.BaselinePriceDenominator),
		Stock:         data.Stock,
		ImageURL:      data.ImageURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
