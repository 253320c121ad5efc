package report

import (
	"github.com/MKhiriev/go-fin-tracker/models"
)

const (
	// DailyLimit caps the daily series to the most recent dates.
	DailyLimit = 30
	// CategoryLimit caps the category series and the per-description charts.
	CategoryLimit = 10
	// Weeks is the length of the weekly profit window.
	Weeks = 8
	// Months is the length of the monthly profit window.
	Months = 12
)

// Chart labels of the revenue_vs_expense report.
const (
	LabelIncome  = "Income"
	LabelExpense = "Expense"
)

// Build computes the dashboard for one user.
//
// filtered holds the rows under the active filter and feeds the summary,
// performers, peak day and the daily and category series. chartRows feeds the
// chart selected by reportType; for the period reports it must cover at least
// the window starting at [WindowStart]. today anchors the period windows.
func Build(filter models.Filter, reportType models.ReportType, filtered, chartRows []models.Transaction, today models.Date) models.DashboardStats {
	stats := models.EmptyDashboardStats(filter, reportType)

	stats.Summary = Summarize(filtered)
	stats.TopPerformer, stats.BottomPerformer = Performers(filtered)
	stats.PeakDay = Peak(filtered)
	stats.DailySeries = Daily(filtered, DailyLimit)
	stats.CategorySeries = Categories(filtered, CategoryLimit)
	stats.Chart, stats.PeriodSeries = Chart(reportType, chartRows, today)

	return stats
}

// Chart returns the chart points of reportType and, for the weekly and
// monthly reports, the underlying period series. Unknown report types yield
// an empty chart.
func Chart(reportType models.ReportType, rows []models.Transaction, today models.Date) ([]models.ChartPoint, []models.PeriodPoint) {
	switch reportType {
	case models.ReportRevenueVsExpense:
		s := Summarize(rows)
		return []models.ChartPoint{
			{Name: LabelIncome, Value: s.TotalIncome},
			{Name: LabelExpense, Value: s.TotalExpense},
		}, []models.PeriodPoint{}

	case models.ReportRevenueByProduct:
		return descriptionChart(rows, models.Income), []models.PeriodPoint{}

	case models.ReportExpenseByCategory:
		return descriptionChart(rows, models.Expense), []models.PeriodPoint{}

	case models.ReportProfitByWeek:
		periods := Weekly(rows, today, Weeks)
		return periodChart(periods), periods

	case models.ReportProfitByMonth:
		periods := Monthly(rows, today, Months)
		return periodChart(periods), periods
	}

	return []models.ChartPoint{}, []models.PeriodPoint{}
}

// WindowStart returns the first date the chart of reportType looks at, or nil
// when the chart spans every row.
func WindowStart(reportType models.ReportType, today models.Date) *models.Date {
	var start models.Date
	switch reportType {
	case models.ReportProfitByWeek:
		start = weekStart(today).AddDays(-7 * (Weeks - 1))
	case models.ReportProfitByMonth:
		start = monthStart(today, -(Months - 1))
	default:
		return nil
	}
	return &start
}

func descriptionChart(rows []models.Transaction, t models.TransactionType) []models.ChartPoint {
	only := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		if row.Type == t {
			only = append(only, row)
		}
	}

	categories := Categories(only, CategoryLimit)
	points := make([]models.ChartPoint, 0, len(categories))
	for _, c := range categories {
		points = append(points, models.ChartPoint{Name: c.Description, Value: c.Amount})
	}
	return points
}

func periodChart(periods []models.PeriodPoint) []models.ChartPoint {
	points := make([]models.ChartPoint, 0, len(periods))
	for _, p := range periods {
		points = append(points, models.ChartPoint{Name: p.Label, Value: p.Profit})
	}
	return points
}
