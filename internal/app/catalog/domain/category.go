package domain

// Category groups catalog products for filtering and reporting.
type Category struct {
	id          string
	name        string
	description string
}

// NewCategory creates a new Category.
func NewCategory(id, name, description string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyCategory
	}
	return &Category{id: id, name: name, description: description}, nil
}

// ReconstructCategory reconstitutes a Category loaded from the database.
func ReconstructCategory(id, name, description string) *Category {
	return &Category{id: id, name: name, description: description}
}

func (c *Category) ID() string          { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }
