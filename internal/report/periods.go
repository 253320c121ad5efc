package report

import (
	"time"

	"github.com/MKhiriev/go-fin-tracker/models"
)

const (
	weekLabelLayout  = "02 Jan 2006"
	monthLabelLayout = "Jan 2006"
)

// Weekly buckets rows into the n ISO weeks ending with the week of today,
// oldest first. Weeks start on Monday; rows outside the window are ignored.
func Weekly(rows []models.Transaction, today models.Date, n int) []models.PeriodPoint {
	first := weekStart(today).AddDays(-7 * (n - 1))

	points := make([]models.PeriodPoint, n)
	for i := range points {
		start := first.AddDays(7 * i)
		points[i] = models.PeriodPoint{Label: start.Time().Format(weekLabelLayout), Start: start}
	}

	for _, row := range rows {
		if row.Date.Compare(first) < 0 {
			continue
		}
		i := int(row.Date.Time().Sub(first.Time()).Hours()) / (24 * 7)
		if i >= n {
			continue
		}
		add(&points[i], row)
	}
	return points
}

// Monthly buckets rows into the n calendar months ending with the month of
// today, oldest first.
func Monthly(rows []models.Transaction, today models.Date, n int) []models.PeriodPoint {
	first := monthStart(today, -(n - 1))

	points := make([]models.PeriodPoint, n)
	for i := range points {
		start := monthStart(first, i)
		points[i] = models.PeriodPoint{Label: start.Time().Format(monthLabelLayout), Start: start}
	}

	firstYear, firstMonth := first.Time().Year(), int(first.Time().Month())
	for _, row := range rows {
		t := row.Date.Time()
		i := (t.Year()-firstYear)*12 + int(t.Month()) - firstMonth
		if i < 0 || i >= n {
			continue
		}
		add(&points[i], row)
	}
	return points
}

func add(p *models.PeriodPoint, row models.Transaction) {
	if row.Type == models.Income {
		p.Income = p.Income.Add(row.Amount)
	} else {
		p.Expense = p.Expense.Add(row.Amount)
	}
	p.Profit = p.Income.Sub(p.Expense)
}

// weekStart returns the Monday of d's ISO week.
func weekStart(d models.Date) models.Date {
	offset := (int(d.Time().Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// monthStart returns the first day of the month shifted by months from d's.
func monthStart(d models.Date, months int) models.Date {
	t := d.Time()
	return models.DateOf(time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC))
}
