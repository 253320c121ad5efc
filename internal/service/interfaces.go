package service

import (
	"context"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// AuthService registers and authenticates users and issues session tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService manages the profile of the authenticated user.
type UserService interface {
	GetProfile(ctx context.Context) (models.User, error)
	UpdateName(ctx context.Context, change models.NameChange) (models.User, error)
	ChangePassword(ctx context.Context, change models.PasswordChange) error
}

// TransactionService creates, edits, removes and lists the authenticated
// user's transactions. The owner is always taken from the context.
type TransactionService interface {
	Create(ctx context.Context, in models.TransactionInput) (models.Transaction, error)
	Update(ctx context.Context, id int64, in models.TransactionInput) (models.Transaction, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query models.ListQuery) (models.TransactionPage, error)
}

// TransactionServiceWrapper defines middleware composition for
// TransactionService. Implementations wrap an existing TransactionService to
// add behavior such as validation.
type TransactionServiceWrapper interface {
	Wrap(TransactionService) TransactionService
}

// ReportService builds the dashboard statistics. The only error it returns
// is [ErrUnauthenticated]; every other failure degrades to
// [models.EmptyDashboardStats].
type ReportService interface {
	GetDashboardStats(ctx context.Context, filter models.Filter, reportType models.ReportType) (models.DashboardStats, error)
}

// AppInfoService exposes build and version metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}
