package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID                = "product_id"
	Name                     = "name"
	Description              = "description"
	CategoryID               = "category_id"
	PriceNumerator           = "price_numerator"
	PriceDenominator         = "price_denominator"
	BaselinePriceNumerator   = "baseline_price_numerator"
	BaselinePriceDenominator = "baseline_price_denominator"
	Stock                    = "stock"
	ImageURL                 = "image_url"
	CreatedAt                = "created_at"
	UpdatedAt                = "updated_at"
)
