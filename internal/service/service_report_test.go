package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/mock"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var reportToday = time.Date(2024, time.March, 14, 10, 0, 0, 0, time.UTC)

func newTestReportService(repo store.TransactionRepository) *reportService {
	svc := NewReportService(repo, logger.Nop()).(*reportService)
	svc.now = func() time.Time { return reportToday }
	return svc
}

func seedReportRows(t *testing.T, repo store.TransactionRepository, userID int64) {
	t.Helper()

	rows := []models.Transaction{
		{Type: models.Income, Description: "Salary", Amount: models.NewMoney(100, 0), Date: models.NewDate(2024, time.March, 1)},
		{Type: models.Income, Description: "Bonus", Amount: models.NewMoney(50, 0), Date: models.NewDate(2024, time.March, 2)},
		{Type: models.Expense, Description: "Rent", Amount: models.NewMoney(30, 0), Date: models.NewDate(2024, time.March, 2)},
	}
	for _, row := range rows {
		row.UserID = userID
		_, err := repo.Create(context.Background(), row)
		require.NoError(t, err)
	}
}

func TestReportService_GetDashboardStats(t *testing.T) {
	repo := store.NewMemoryTransactionRepository()
	seedReportRows(t, repo, 1)
	seedReportRows(t, repo, 2)
	svc := newTestReportService(repo)

	stats, err := svc.GetDashboardStats(userCtx(1), models.FilterAll, models.ReportRevenueVsExpense)
	require.NoError(t, err)

	assert.Equal(t, models.Summary{
		TotalIncome:      models.NewMoney(150, 0),
		TotalExpense:     models.NewMoney(30, 0),
		Balance:          models.NewMoney(120, 0),
		TransactionCount: 3,
	}, stats.Summary)
	require.NotNil(t, stats.TopPerformer)
	assert.Equal(t, "Salary", stats.TopPerformer.Description)
	require.NotNil(t, stats.PeakDay)
	assert.Equal(t, models.NewDate(2024, time.March, 1), stats.PeakDay.Date)
	assert.Equal(t, models.NewMoney(100, 0), stats.PeakDay.Amount)
	assert.Equal(t, []models.ChartPoint{
		{Name: "Income", Value: models.NewMoney(150, 0)},
		{Name: "Expense", Value: models.NewMoney(30, 0)},
	}, stats.Chart)
}

func TestReportService_GetDashboardStats_FilterLeavesChartUserWide(t *testing.T) {
	repo := store.NewMemoryTransactionRepository()
	seedReportRows(t, repo, 1)
	svc := newTestReportService(repo)

	stats, err := svc.GetDashboardStats(userCtx(1), models.FilterExpense, models.ReportRevenueVsExpense)
	require.NoError(t, err)

	assert.Equal(t, models.FilterExpense, stats.Filter)
	assert.Equal(t, models.NewMoney(0, 0), stats.Summary.TotalIncome)
	assert.Equal(t, models.NewMoney(30, 0), stats.Summary.TotalExpense)
	assert.Equal(t, 1, stats.Summary.TransactionCount)
	assert.Len(t, stats.Chart, 2)
	assert.Equal(t, models.NewMoney(150, 0), stats.Chart[0].Value)
}

func TestReportService_GetDashboardStats_NoRows(t *testing.T) {
	svc := newTestReportService(store.NewMemoryTransactionRepository())

	stats, err := svc.GetDashboardStats(userCtx(1), models.FilterAll, models.ReportProfitByMonth)
	require.NoError(t, err)

	assert.Zero(t, stats.Summary)
	assert.Nil(t, stats.TopPerformer)
	assert.Nil(t, stats.BottomPerformer)
	assert.Nil(t, stats.PeakDay)
	assert.Len(t, stats.PeriodSeries, 12)
}

func TestReportService_GetDashboardStats_LoadErrorFallsBackToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTransactionRepository(ctrl)
	repo.EXPECT().ListForReport(gomock.Any(), gomock.Any()).Return(nil, errStorage).AnyTimes()

	svc := newTestReportService(repo)
	stats, err := svc.GetDashboardStats(userCtx(1), models.FilterIncome, models.ReportProfitByWeek)

	require.NoError(t, err)
	assert.Equal(t, models.EmptyDashboardStats(models.FilterIncome, models.ReportProfitByWeek), stats)
}

func TestReportService_GetDashboardStats_QueriesChartWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTransactionRepository(ctrl)

	weekStart := models.NewDate(2024, time.January, 22)
	repo.EXPECT().ListForReport(gomock.Any(), models.ReportQuery{UserID: 1, Filter: models.FilterIncome}).
		Return([]models.Transaction{}, nil)
	repo.EXPECT().ListForReport(gomock.Any(), models.ReportQuery{UserID: 1, Filter: models.FilterAll, Since: &weekStart}).
		Return([]models.Transaction{}, nil)

	svc := newTestReportService(repo)
	stats, err := svc.GetDashboardStats(userCtx(1), models.FilterIncome, models.ReportProfitByWeek)

	require.NoError(t, err)
	assert.Len(t, stats.PeriodSeries, 8)
}

func TestReportService_GetDashboardStats_Unauthenticated(t *testing.T) {
	svc := newTestReportService(store.NewMemoryTransactionRepository())

	_, err := svc.GetDashboardStats(context.Background(), models.FilterAll, models.ReportRevenueVsExpense)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}
