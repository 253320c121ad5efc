package report

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// Summarize totals income and expense. The balance may be negative.
func Summarize(rows []models.Transaction) models.Summary {
	var s models.Summary
	for _, row := range rows {
		switch row.Type {
		case models.Income:
			s.TotalIncome = s.TotalIncome.Add(row.Amount)
		case models.Expense:
			s.TotalExpense = s.TotalExpense.Add(row.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	s.TransactionCount = len(rows)
	return s
}

// Performers returns the descriptions with the highest and the lowest summed
// amount. Equal sums are resolved by the lexically smallest description.
// Both are nil when rows is empty.
func Performers(rows []models.Transaction) (top, bottom *models.Performer) {
	sums := make(map[string]models.Money)
	for _, row := range rows {
		sums[row.Description] = sums[row.Description].Add(row.Amount)
	}
	if len(sums) == 0 {
		return nil, nil
	}

	descriptions := make([]string, 0, len(sums))
	for d := range sums {
		descriptions = append(descriptions, d)
	}
	slices.Sort(descriptions)

	topDesc, bottomDesc := descriptions[0], descriptions[0]
	for _, d := range descriptions[1:] {
		if sums[d].Cmp(sums[topDesc]) > 0 {
			topDesc = d
		}
		if sums[d].Cmp(sums[bottomDesc]) < 0 {
			bottomDesc = d
		}
	}

	return &models.Performer{Description: topDesc, Amount: sums[topDesc]},
		&models.Performer{Description: bottomDesc, Amount: sums[bottomDesc]}
}

// Peak returns the date with the highest summed amount, preferring the
// earliest date on ties, or nil for no rows.
func Peak(rows []models.Transaction) *models.PeakDay {
	sums := make(map[models.Date]models.Money)
	for _, row := range rows {
		sums[row.Date] = sums[row.Date].Add(row.Amount)
	}

	var peak *models.PeakDay
	for date, amount := range sums {
		if peak == nil {
			peak = &models.PeakDay{Date: date, Amount: amount}
			continue
		}
		if c := amount.Cmp(peak.Amount); c > 0 || (c == 0 && date.Compare(peak.Date) < 0) {
			peak = &models.PeakDay{Date: date, Amount: amount}
		}
	}
	return peak
}

// Daily returns per-date income and expense, most recent date first, keeping
// at most limit dates.
func Daily(rows []models.Transaction, limit int) []models.DailyPoint {
	byDate := make(map[models.Date]*models.DailyPoint)
	for _, row := range rows {
		p, ok := byDate[row.Date]
		if !ok {
			p = &models.DailyPoint{Date: row.Date}
			byDate[row.Date] = p
		}
		if row.Type == models.Income {
			p.Income = p.Income.Add(row.Amount)
		} else {
			p.Expense = p.Expense.Add(row.Amount)
		}
	}

	points := make([]models.DailyPoint, 0, len(byDate))
	for _, p := range byDate {
		points = append(points, *p)
	}
	slices.SortFunc(points, func(a, b models.DailyPoint) int {
		return b.Date.Compare(a.Date)
	})

	if len(points) > limit {
		points = points[:limit]
	}
	return points
}

type categoryKey struct {
	description string
	txType      models.TransactionType
}

// Categories sums amounts per (description, type) and keeps the limit
// largest. Ties are ordered by description, then by type.
func Categories(rows []models.Transaction, limit int) []models.CategoryPoint {
	sums := make(map[categoryKey]models.Money)
	for _, row := range rows {
		key := categoryKey{row.Description, row.Type}
		sums[key] = sums[key].Add(row.Amount)
	}

	points := make([]models.CategoryPoint, 0, len(sums))
	for k, amount := range sums {
		points = append(points, models.CategoryPoint{Description: k.description, Amount: amount, Type: k.txType})
	}
	slices.SortFunc(points, func(a, b models.CategoryPoint) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		if c := strings.Compare(a.Description, b.Description); c != 0 {
			return c
		}
		return strings.Compare(string(a.Type), string(b.Type))
	})

	if len(points) > limit {
		points = points[:limit]
	}
	return points
}
