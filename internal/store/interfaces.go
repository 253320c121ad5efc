package store

import (
	"context"

	"github.com/MKhiriev/go-fin-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with the store-assigned
	// UserID and CreatedAt. A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail looks a user up by exact email match.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateName(ctx context.Context, userID int64, name string) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
}

// TransactionRepository persists transactions. Every method is scoped by the
// owner's user id; a row of another user is indistinguishable from a missing
// one.
type TransactionRepository interface {
	// Create inserts t and returns the stored row. A unique violation on the
	// custom id yields [ErrCustomIDAlreadyExists].
	Create(ctx context.Context, t models.Transaction) (models.Transaction, error)
	// Update rewrites all editable fields of the row matching t.ID and
	// t.UserID. No such row yields [ErrTransactionNotFound].
	Update(ctx context.Context, t models.Transaction) (models.Transaction, error)
	// Delete removes the row matching id and userID. No such row yields
	// [ErrTransactionNotFound].
	Delete(ctx context.Context, userID, id int64) error
	// List returns one page of rows together with the total number of rows
	// matching the query's filter and search.
	List(ctx context.Context, query models.ListQuery) ([]models.Transaction, int, error)
	// CustomIDExists reports whether customID is taken within (userID, type)
	// by a row other than excludeID. Pass 0 to exclude nothing.
	CustomIDExists(ctx context.Context, userID int64, txType models.TransactionType, customID string, excludeID int64) (bool, error)
	// MaxCustomIDNumber returns the largest numeric suffix among well-formed
	// custom ids of (userID, type), or 0 when there are none.
	MaxCustomIDNumber(ctx context.Context, userID int64, txType models.TransactionType) (int64, error)
	// ListForReport returns every row selected by query, oldest first.
	ListForReport(ctx context.Context, query models.ReportQuery) ([]models.Transaction, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
