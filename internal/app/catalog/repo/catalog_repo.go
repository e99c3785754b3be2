package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/internal/models/m_category"
	"github.com/light-bringer/backoffice-service/internal/models/m_product"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
)

// CatalogRepo implements CatalogRepository for Spanner.
type CatalogRepo struct {
	client        *spanner.Client
	productModel  *m_product.Model
	categoryModel *m_category.Model
	clock         clock.Clock
}

// NewCatalogRepo creates a new CatalogRepo.
func NewCatalogRepo(client *spanner.Client, clk clock.Clock) contracts.CatalogRepository {
	return &CatalogRepo{
		client:        client,
		productModel:  m_product.NewModel(),
		categoryModel: m_category.NewModel(),
		clock:         clk,
	}
}

// GetAllProducts returns the full catalog snapshot ordered by product id.
func (r *CatalogRepo) GetAllProducts(ctx context.Context) ([]*domain.Product, error) {
	iter := r.client.Single().Read(
		ctx,
		m_product.TableName,
		spanner.AllKeys(),
		r.productModel.ReadColumns(),
	)
	defer iter.Stop()

	var products []*domain.Product
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read catalog: %s", domain.ErrStoreUnavailable, err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product row: %w", err)
		}

		product, err := r.dataToDomain(&data)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate.
func (r *CatalogRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, r.productModel.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("%w: failed to read product: %s", domain.ErrStoreUnavailable, err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product row: %w", err)
	}

	return r.dataToDomain(&data)
}

// InsertMut creates a mutation for inserting a new product.
func (r *CatalogRepo) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	data, err := r.domainToData(product)
	if err != nil {
		return nil, err
	}
	return r.productModel.InsertMut(data), nil
}

// UpdateMut creates a mutation rewriting a product's mutable fields.
// The baseline price columns are deliberately not written: the baseline is
// immutable after seeding.
func (r *CatalogRepo) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	price := product.CurrentPrice()
	if !price.IsSafeForStorage() {
		return nil, fmt.Errorf("current price exceeds storage capacity: %w", domain.ErrMoneyOverflow)
	}

	updates := map[string]interface{}{
		m_product.Name:             product.Name(),
		m_product.Description:      product.Description(),
		m_product.CategoryID:       product.CategoryID(),
		m_product.PriceNumerator:   price.Numerator(),
		m_product.PriceDenominator: price.Denominator(),
		m_product.Stock:            product.Stock(),
		m_product.ImageURL:         product.ImageURL(),
		m_product.UpdatedAt:        r.clock.Now(),
	}
	return r.productModel.UpdateMut(product.ID(), updates), nil
}

// UpdatePriceMut creates a mutation that writes only the current price.
func (r *CatalogRepo) UpdatePriceMut(productID string, price *domain.Money) (*spanner.Mutation, error) {
	if !price.IsSafeForStorage() {
		return nil, fmt.Errorf("price exceeds storage capacity: %w", domain.ErrMoneyOverflow)
	}
	return r.productModel.UpdatePriceMut(productID, price.Numerator(), price.Denominator(), r.clock.Now()), nil
}

// DeleteMut creates a mutation for deleting a product.
func (r *CatalogRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.productModel.DeleteMut(productID)
}

// InsertCategoryMut creates a mutation for inserting a category.
func (r *CatalogRepo) InsertCategoryMut(category *domain.Category) *spanner.Mutation {
	return r.categoryModel.InsertMut(&m_category.Data{
		CategoryID:  category.ID(),
		Name:        category.Name(),
		Description: category.Description(),
	})
}

// domainToData converts a domain Product to database Data.
func (r *CatalogRepo) domainToData(product *domain.Product) (*m_product.Data, error) {
	price := product.CurrentPrice()
	baseline := product.BaselinePrice()
	if !price.IsSafeForStorage() || !baseline.IsSafeForStorage() {
		return nil, fmt.Errorf("price exceeds storage capacity: %w", domain.ErrMoneyOverflow)
	}

	return &m_product.Data{
		ProductID:                product.ID(),
		Name:                     product.Name(),
		Description:              product.Description(),
		CategoryID:               product.CategoryID(),
		PriceNumerator:           price.Numerator(),
		PriceDenominator:         price.Denominator(),
		BaselinePriceNumerator:   baseline.Numerator(),
		BaselinePriceDenominator: baseline.Denominator(),
		Stock:                    product.Stock(),
		ImageURL:                 product.ImageURL(),
		CreatedAt:                product.CreatedAt(),
		UpdatedAt:                product.UpdatedAt(),
	}, nil
}

// dataToDomain converts database Data to a domain Product.
func (r *CatalogRepo) dataToDomain(data *m_product.Data) (*domain.Product, error) {
	price, err := domain.NewMoney(data.PriceNumerator, data.PriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid stored price: %w", err)
	}
	baseline, err := domain.NewMoney(data.BaselinePriceNumerator, data.BaselinePriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid stored baseline price: %w", err)
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.Name,
		data.Description,
		data.CategoryID,
		price,
		baseline,
		data.Stock,
		data.ImageURL,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}
