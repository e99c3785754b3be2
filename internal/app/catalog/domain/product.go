package domain

import "time"

// Product is the aggregate for catalog entries. The baseline price is fixed
// when the product is first created and is the target of bulk resets; the
// current price is the only field bulk pricing operations may touch.
type Product struct {
	id            string
	name          string
	description   string
	categoryID    string
	currentPrice  *Money
	baselinePrice *Money
	stock         int64
	imageURL      string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewProduct creates a new Product. The baseline price is seeded from the
// initial price and never changes afterwards.
func NewProduct(id, name, description, categoryID string, price *Money, stock int64, imageURL string, now time.Time) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price == nil || price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	rounded := price.Round2()
	return &Product{
		id:            id,
		name:          name,
		description:   description,
		categoryID:    categoryID,
		currentPrice:  rounded,
		baselinePrice: rounded.Copy(),
		stock:         stock,
		imageURL:      imageURL,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructProduct reconstitutes a Product loaded from the database.
func ReconstructProduct(
	id, name, description, categoryID string,
	currentPrice, baselinePrice *Money,
	stock int64,
	imageURL string,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:            id,
		name:          name,
		description:   description,
		categoryID:    categoryID,
		currentPrice:  currentPrice,
		baselinePrice: baselinePrice,
		stock:         stock,
		imageURL:      imageURL,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Getters
func (p *Product) ID() string            { return p.id }
func (p *Product) Name() string          { return p.name }
func (p *Product) Description() string   { return p.description }
func (p *Product) CategoryID() string    { return p.categoryID }
func (p *Product) CurrentPrice() *Money  { return p.currentPrice.Copy() }
func (p *Product) BaselinePrice() *Money { return p.baselinePrice.Copy() }
func (p *Product) Stock() int64          { return p.stock }
func (p *Product) ImageURL() string      { return p.imageURL }
func (p *Product) CreatedAt() time.Time  { return p.createdAt }
func (p *Product) UpdatedAt() time.Time  { return p.updatedAt }

// SetName updates the product name.
func (p *Product) SetName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	p.name = name
	return nil
}

// SetDescription updates the product description.
func (p *Product) SetDescription(description string) {
	p.description = description
}

// SetCategoryID updates the product category.
func (p *Product) SetCategoryID(categoryID string) {
	p.categoryID = categoryID
}

// SetStock updates the stock level.
func (p *Product) SetStock(stock int64) error {
	if stock < 0 {
		return ErrInvalidStock
	}
	p.stock = stock
	return nil
}

// SetImageURL updates the image URL.
func (p *Product) SetImageURL(url string) {
	p.imageURL = url
}

// SetCurrentPrice updates the current price. The baseline is untouched.
func (p *Product) SetCurrentPrice(price *Money) error {
	if price == nil || price.IsNegative() {
		return ErrInvalidPrice
	}
	p.currentPrice = price.Round2()
	return nil
}

// AtBaseline reports whether the current price equals the baseline price.
func (p *Product) AtBaseline() bool {
	return p.currentPrice.Equals(p.baselinePrice)
}
