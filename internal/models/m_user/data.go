package m_user

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Field name constants for the users table.
const (
	TableName = "users"

	UserID    = "user_id"
	Email     = "email"
	Name      = "name"
	Role      = "role"
	CreatedAt = "created_at"
)

// Data represents the database model for the users table. The service only
// reads users for display joins; account management is out of scope.
type Data struct {
	UserID    string    `spanner:"user_id"`
	Email     string    `spanner:"email"`
	Name      string    `spanner:"name"`
	Role      string    `spanner:"role"`
	CreatedAt time.Time `spanner:"created_at"`
}

// Model provides type-safe database operations for users.
type Model struct{}

// NewModel creates a new user model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a user.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}
