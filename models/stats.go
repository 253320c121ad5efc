package models

// ReportType selects which chart series accompanies the dashboard statistics.
type ReportType string

const (
	ReportRevenueVsExpense  ReportType = "revenue_vs_expense"
	ReportRevenueByProduct  ReportType = "revenue_by_product"
	ReportExpenseByCategory ReportType = "expense_by_category"
	ReportProfitByWeek      ReportType = "profit_by_week"
	ReportProfitByMonth     ReportType = "profit_by_month"
)

// Summary holds the headline totals under the active filter.
type Summary struct {
	TotalIncome      Money `json:"total_income"`
	TotalExpense     Money `json:"total_expense"`
	Balance          Money `json:"balance"`
	TransactionCount int   `json:"transaction_count"`
}

// Performer is a description together with its summed amount.
type Performer struct {
	Description string `json:"description"`
	Amount      Money  `json:"amount"`
}

// PeakDay is the calendar date with the highest summed amount.
type PeakDay struct {
	Date   Date  `json:"date"`
	Amount Money `json:"amount"`
}

// DailyPoint is the income and expense recorded on one date.
type DailyPoint struct {
	Date    Date  `json:"date"`
	Income  Money `json:"income"`
	Expense Money `json:"expense"`
}

// CategoryPoint is the summed amount of one description of one type.
type CategoryPoint struct {
	Description string          `json:"description"`
	Amount      Money           `json:"amount"`
	Type        TransactionType `json:"type"`
}

// PeriodPoint is one week or month of a profit series.
type PeriodPoint struct {
	Label   string `json:"label"`
	Start   Date   `json:"start"`
	Income  Money  `json:"income"`
	Expense Money  `json:"expense"`
	Profit  Money  `json:"profit"`
}

// ChartPoint is a generic name/value pair rendered by the chart widgets.
type ChartPoint struct {
	Name  string `json:"name"`
	Value Money  `json:"value"`
}

// DashboardStats is everything the dashboard renders in one call.
// Absence of data is a valid state: slices are empty and pointers nil.
type DashboardStats struct {
	Filter     Filter     `json:"filter"`
	ReportType ReportType `json:"report_type"`

	Summary Summary `json:"summary"`

	TopPerformer    *Performer `json:"top_performer"`
	BottomPerformer *Performer `json:"bottom_performer"`
	PeakDay         *PeakDay   `json:"peak_day"`

	DailySeries    []DailyPoint    `json:"daily_series"`
	CategorySeries []CategoryPoint `json:"category_series"`
	PeriodSeries   []PeriodPoint   `json:"period_series"`
	Chart          []ChartPoint    `json:"chart"`
}

// EmptyDashboardStats returns the zeroed result used both for users without
// transactions and as the fallback when loading statistics fails.
func EmptyDashboardStats(filter Filter, reportType ReportType) DashboardStats {
	return DashboardStats{
		Filter:         filter,
		ReportType:     reportType,
		DailySeries:    []DailyPoint{},
		CategorySeries: []CategoryPoint{},
		PeriodSeries:   []PeriodPoint{},
		Chart:          []ChartPoint{},
	}
}
