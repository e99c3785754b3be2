package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/models/m_product"
)

// InsertTestProduct writes one product row with the given price in cents
// and returns its id. Baseline equals the initial price.
func InsertTestProduct(t *testing.T, client *spanner.Client, name string, priceCents int64) string {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC()
	id := uuid.New().String()

	mut := m_product.NewModel().InsertMut(&m_product.Data{
		ProductID:                id,
		Name:                     name,
		Description:              "test product",
		CategoryID:               "",
		PriceNumerator:           priceCents,
		PriceDenominator:         100,
		BaselinePriceNumerator:   priceCents,
		BaselinePriceDenominator: 100,
		Stock:                    10,
		CreatedAt:                now,
		UpdatedAt:                now,
	})

	_, err := client.Apply(ctx, []*spanner.Mutation{mut})
	require.NoError(t, err, "failed to insert test product")
	return id
}

// ReadPriceCents reads back a product's current price, requiring the
// stored denominator to divide 100.
func ReadPriceCents(t *testing.T, client *spanner.Client, productID string) int64 {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID},
		[]string{m_product.PriceNumerator, m_product.PriceDenominator})
	require.NoError(t, err, "failed to read product price")

	var num, den int64
	require.NoError(t, row.Columns(&num, &den))
	require.NotZero(t, den)
	require.Zero(t, 100%den, "price denominator must divide 100")
	return num * (100 / den)
}
