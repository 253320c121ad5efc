package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name                   string
		page, pageSize, total  int
		wantPages              int
		wantNext, wantPrev     bool
	}{
		{name: "last page of 45 by 20", page: 3, pageSize: 20, total: 45, wantPages: 3, wantNext: false, wantPrev: true},
		{name: "first page", page: 1, pageSize: 20, total: 45, wantPages: 3, wantNext: true, wantPrev: false},
		{name: "exact multiple", page: 2, pageSize: 10, total: 20, wantPages: 2, wantNext: false, wantPrev: true},
		{name: "empty", page: 1, pageSize: 20, total: 0, wantPages: 0, wantNext: false, wantPrev: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.pageSize, tt.total)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
		})
	}
}

func TestListQuery_Normalize(t *testing.T) {
	q := ListQuery{Page: 0, PageSize: 500, Search: "  rent "}.Normalize()

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, MaxPageSize, q.PageSize)
	assert.Equal(t, FilterAll, q.Filter)
	assert.Equal(t, Asc, q.SortOrder)
	assert.Equal(t, "rent", q.Search)
	assert.Equal(t, 0, q.Offset())

	q = ListQuery{Page: 3, PageSize: 0}.Normalize()
	assert.Equal(t, DefaultPageSize, q.PageSize)
	assert.Equal(t, 40, q.Offset())
}

func TestListQuery_HugePage(t *testing.T) {
	q := ListQuery{Page: 1 << 62, PageSize: MaxPageSize}.Normalize()

	assert.Equal(t, MaxPage, q.Page)
	assert.Equal(t, (MaxPage-1)*MaxPageSize, q.Offset())
	assert.Positive(t, q.Offset())

	assert.Equal(t, 0, ListQuery{Page: -7, PageSize: 20}.Offset())
	assert.Positive(t, ListQuery{Page: 1 << 62, PageSize: 1 << 62}.Offset())
}

func TestParsers(t *testing.T) {
	f, ok := ParseFilter("")
	assert.True(t, ok)
	assert.Equal(t, FilterAll, f)

	f, ok = ParseFilter("Income")
	assert.True(t, ok)
	assert.Equal(t, FilterIncome, f)
	assert.Equal(t, Income, f.Type())
	assert.True(t, f.Matches(Income))
	assert.False(t, f.Matches(Expense))

	_, ok = ParseFilter("income' OR 1=1 --")
	assert.False(t, ok)

	assert.Equal(t, SortByCustomID, ParseSortField("custom_id"))
	assert.Equal(t, SortByDefault, ParseSortField("amount; DROP TABLE users"))
	assert.Equal(t, Desc, ParseSortOrder("DESC"))
	assert.Equal(t, Asc, ParseSortOrder("sideways"))
}
