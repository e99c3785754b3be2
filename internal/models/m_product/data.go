package m_product

import "time"

// Data represents the database model for the products table.
type Data struct {
	ProductID                string    `spanner:"product_id"`
	Name                     string    `spanner:"name"`
	Description              string    `spanner:"description"`
	CategoryID               string    `spanner:"category_id"`
	PriceNumerator           int64     `spanner:"price_numerator"`
	PriceDenominator         int64     `spanner:"price_denominator"`
	BaselinePriceNumerator   int64     `spanner:"baseline_price_numerator"`
	BaselinePriceDenominator int64     `spanner:"baseline_price_denominator"`
	Stock                    int64     `spanner:"stock"`
	ImageURL                 string    `spanner:"image_url"`
	CreatedAt                time.Time `spanner:"created_at"`
	UpdatedAt                time.Time `spanner:"updated_at"`
}
