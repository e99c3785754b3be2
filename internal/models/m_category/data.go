package m_category

import "cloud.google.com/go/spanner"

// Field name constants for the categories table.
const (
	TableName = "categories"

	CategoryID  = "category_id"
	Name        = "name"
	Description = "description"
)

// Data represents the database model for the categories table.
type Data struct {
	CategoryID  string `spanner:"category_id"`
	Name        string `spanner:"name"`
	Description string `spanner:"description"`
}

// Model provides type-safe database operations for categories.
type Model struct{}

// NewModel creates a new category model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a category.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// ReadColumns returns the column names for reading categories.
func (m *Model) ReadColumns() []string {
	return []string{CategoryID, Name, Description}
}
