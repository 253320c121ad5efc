package models

import (
	"math"
	"strings"
)

// Filter scopes lists and reports to all transactions or a single type.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterIncome  Filter = "income"
	FilterExpense Filter = "expense"
)

// ParseFilter maps a query-string value onto a Filter. An empty value means
// [FilterAll]; ok is false for anything unknown.
func ParseFilter(s string) (Filter, bool) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, true
	case FilterIncome:
		return FilterIncome, true
	case FilterExpense:
		return FilterExpense, true
	}
	return "", false
}

// Type returns the transaction type selected by the filter, or "" for
// [FilterAll].
func (f Filter) Type() TransactionType {
	switch f {
	case FilterIncome:
		return Income
	case FilterExpense:
		return Expense
	}
	return ""
}

// Matches reports whether a transaction of type t passes the filter.
func (f Filter) Matches(t TransactionType) bool {
	return f == FilterAll || f == "" || f.Type() == t
}

// SortField is one of the allow-listed list orderings.
type SortField string

const (
	SortByDefault     SortField = ""
	SortByCustomID    SortField = "custom_id"
	SortByAmount      SortField = "amount"
	SortByDate        SortField = "date"
	SortByDescription SortField = "description"
)

// ParseSortField maps an arbitrary caller string onto the allow-list. Unknown
// values fall back to [SortByDefault] (most recently created first).
func ParseSortField(s string) SortField {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortByCustomID, SortByAmount, SortByDate, SortByDescription:
		return f
	}
	return SortByDefault
}

// SortOrder is the list direction.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// ParseSortOrder returns [Desc] for "desc" (any case) and [Asc] otherwise.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxPage keeps (Page-1)*PageSize far below the int and BIGINT limits.
	MaxPage = math.MaxInt32
)

// ListQuery describes one page request against a user's transactions.
type ListQuery struct {
	UserID    int64
	Page      int
	PageSize  int
	Filter    Filter
	Search    string
	SortBy    SortField
	SortOrder SortOrder
}

// Normalize clamps paging values into their valid ranges and fills defaults.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if q.Filter == "" {
		q.Filter = FilterAll
	}
	if q.SortOrder == "" {
		q.SortOrder = Asc
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

// Offset returns the number of rows skipped before the requested page. It is
// only meaningful on a normalized query and never negative.
func (q ListQuery) Offset() int {
	if q.Page <= 1 || q.PageSize <= 0 {
		return 0
	}
	return (min(q.Page, MaxPage) - 1) * min(q.PageSize, MaxPageSize)
}

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	Total       int  `json:"total"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// NewPagination computes paging metadata for a 1-indexed page.
func NewPagination(page, pageSize, total int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// TransactionPage is one page of a listing.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Pagination   Pagination    `json:"pagination"`
}

// ReportQuery selects the rows the reporting engine aggregates.
// Since, when set, keeps only rows dated on or after it.
type ReportQuery struct {
	UserID int64
	Filter Filter
	Since  *Date
}
