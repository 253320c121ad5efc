package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/report"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/models"
	"golang.org/x/sync/errgroup"
)

type reportService struct {
	transactionRepository store.TransactionRepository
	now                   func() time.Time
	logger                *logger.Logger
}

// NewReportService constructs the dashboard statistics service.
func NewReportService(repo store.TransactionRepository, logger *logger.Logger) ReportService {
	return &reportService{
		transactionRepository: repo,
		now:                   time.Now,
		logger:                logger,
	}
}

// GetDashboardStats loads the rows under filter and the rows of the chart
// window concurrently and aggregates them. A failed load or a panic while
// aggregating is logged and answered with zeroed statistics.
func (s *reportService) GetDashboardStats(ctx context.Context, filter models.Filter, reportType models.ReportType) (stats models.DashboardStats, err error) {
	log := logger.FromContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Int64("user_id", userID).Msg("dashboard aggregation panicked")
			stats, err = models.EmptyDashboardStats(filter, reportType), nil
		}
	}()

	today := models.DateOf(s.now())

	var filtered, chartRows []models.Transaction
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.transactionRepository.ListForReport(gctx, models.ReportQuery{UserID: userID, Filter: filter})
		if err != nil {
			return fmt.Errorf("error loading filtered rows: %w", err)
		}
		filtered = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.transactionRepository.ListForReport(gctx, models.ReportQuery{
			UserID: userID,
			Filter: models.FilterAll,
			Since:  report.WindowStart(reportType, today),
		})
		if err != nil {
			return fmt.Errorf("error loading chart rows: %w", err)
		}
		chartRows = rows
		return nil
	})

	if err = g.Wait(); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error loading dashboard statistics")
		return models.EmptyDashboardStats(filter, reportType), nil
	}

	return report.Build(filter, reportType, filtered, chartRows, today), nil
}
