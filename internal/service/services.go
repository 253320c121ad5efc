package service

import (
	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/models"
)

type Services struct {
	AuthService        AuthService
	UserService        UserService
	TransactionService TransactionService
	ReportService      ReportService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	transactionService := NewTransactionValidationService().
		Wrap(NewTransactionService(storages.TransactionRepository, logger))

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:        NewUserService(storages.UserRepository, cfg.App, logger),
		TransactionService: transactionService,
		ReportService:      NewReportService(storages.TransactionRepository, logger),
		AppInfoService:     appInfoService,
	}, nil
}
