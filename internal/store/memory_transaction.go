package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// maxAllocatableDigits bounds the suffixes considered for allocation so that
// the next number always fits into int64.
const maxAllocatableDigits = 18

// memoryTransactionRepository is an in-process [TransactionRepository] with
// the same filter, search, ordering and uniqueness rules as the PostgreSQL
// one.
type memoryTransactionRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]models.Transaction
	now    func() time.Time
}

// NewMemoryTransactionRepository returns an empty in-memory
// [TransactionRepository].
func NewMemoryTransactionRepository() TransactionRepository {
	return &memoryTransactionRepository{
		rows: make(map[int64]models.Transaction),
		now:  time.Now,
	}
}

func (m *memoryTransactionRepository) Create(_ context.Context, t models.Transaction) (models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.customIDTaken(t.UserID, t.Type, t.CustomID, 0) {
		return models.Transaction{}, ErrCustomIDAlreadyExists
	}

	m.nextID++
	now := m.now().UTC()
	t.ID = m.nextID
	t.CreatedAt = now
	t.UpdatedAt = now
	t.CustomID = cloneString(t.CustomID)

	m.rows[t.ID] = t
	return t, nil
}

func (m *memoryTransactionRepository) Update(_ context.Context, t models.Transaction) (models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.rows[t.ID]
	if !ok || existing.UserID != t.UserID {
		return models.Transaction{}, ErrTransactionNotFound
	}
	if m.customIDTaken(t.UserID, t.Type, t.CustomID, t.ID) {
		return models.Transaction{}, ErrCustomIDAlreadyExists
	}

	existing.CustomID = cloneString(t.CustomID)
	existing.Type = t.Type
	existing.Description = t.Description
	existing.Amount = t.Amount
	existing.Date = t.Date
	existing.UpdatedAt = m.now().UTC()

	m.rows[t.ID] = existing
	return existing, nil
}

func (m *memoryTransactionRepository) Delete(_ context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.rows[id]
	if !ok || existing.UserID != userID {
		return ErrTransactionNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memoryTransactionRepository) List(_ context.Context, query models.ListQuery) ([]models.Transaction, int, error) {
	query = query.Normalize()

	m.mu.RLock()
	matched := make([]models.Transaction, 0, len(m.rows))
	for _, t := range m.rows {
		if t.UserID == query.UserID && query.Filter.Matches(t.Type) && matchesSearch(t, query.Search) {
			matched = append(matched, t)
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(matched, listComparator(query.SortBy, query.SortOrder))

	total := len(matched)
	start := min(query.Offset(), total)
	end := min(start+query.PageSize, total)

	page := make([]models.Transaction, 0, end-start)
	for _, t := range matched[start:end] {
		t.CustomID = cloneString(t.CustomID)
		page = append(page, t)
	}
	return page, total, nil
}

func (m *memoryTransactionRepository) CustomIDExists(_ context.Context, userID int64, txType models.TransactionType, customID string, excludeID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.customIDTaken(userID, txType, &customID, excludeID), nil
}

func (m *memoryTransactionRepository) MaxCustomIDNumber(_ context.Context, userID int64, txType models.TransactionType) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var maxNumber int64
	for _, t := range m.rows {
		if t.UserID != userID || t.Type != txType || t.CustomID == nil {
			continue
		}
		id := *t.CustomID
		if !strings.HasPrefix(id, txType.CustomIDPrefix()) || len(id)-1 > maxAllocatableDigits {
			continue
		}
		if n, ok := models.CustomIDNumber(t.CustomID); ok && n > maxNumber {
			maxNumber = n
		}
	}
	return maxNumber, nil
}

func (m *memoryTransactionRepository) ListForReport(_ context.Context, query models.ReportQuery) ([]models.Transaction, error) {
	m.mu.RLock()
	result := make([]models.Transaction, 0, len(m.rows))
	for _, t := range m.rows {
		if t.UserID != query.UserID || !query.Filter.Matches(t.Type) {
			continue
		}
		if query.Since != nil && t.Date.Compare(*query.Since) < 0 {
			continue
		}
		t.CustomID = cloneString(t.CustomID)
		result = append(result, t)
	}
	m.mu.RUnlock()

	slices.SortFunc(result, func(a, b models.Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return result, nil
}

// customIDTaken must be called with m.mu held.
func (m *memoryTransactionRepository) customIDTaken(userID int64, txType models.TransactionType, customID *string, excludeID int64) bool {
	if customID == nil {
		return false
	}
	for id, t := range m.rows {
		if id == excludeID || t.UserID != userID || t.Type != txType || t.CustomID == nil {
			continue
		}
		if *t.CustomID == *customID {
			return true
		}
	}
	return false
}

// matchesSearch is the case-insensitive substring match over description,
// custom id, amount text and date text.
func matchesSearch(t models.Transaction, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)

	fields := []string{t.Description, t.Amount.String(), t.Date.String()}
	if t.CustomID != nil {
		fields = append(fields, *t.CustomID)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// listComparator orders rows the way listOrderBy orders them in SQL.
func listComparator(field models.SortField, order models.SortOrder) func(a, b models.Transaction) int {
	sign := 1
	if order == models.Desc {
		sign = -1
	}

	switch field {
	case models.SortByCustomID:
		return func(a, b models.Transaction) int {
			if c := cmp.Compare(typeRank(a.Type), typeRank(b.Type)); c != 0 {
				return c
			}
			if c := compareNullsLast(customIDSuffix(a.CustomID), customIDSuffix(b.CustomID), compareDigits, sign); c != 0 {
				return c
			}
			if c := compareNullsLast(a.CustomID, b.CustomID, strings.Compare, sign); c != 0 {
				return c
			}
			return sign * cmp.Compare(a.ID, b.ID)
		}
	case models.SortByAmount:
		return thenByID(sign, func(a, b models.Transaction) int { return a.Amount.Cmp(b.Amount) })
	case models.SortByDate:
		return thenByID(sign, func(a, b models.Transaction) int { return a.Date.Compare(b.Date) })
	case models.SortByDescription:
		return thenByID(sign, func(a, b models.Transaction) int { return strings.Compare(a.Description, b.Description) })
	default:
		return thenByID(-1, func(a, b models.Transaction) int { return a.CreatedAt.Compare(b.CreatedAt) })
	}
}

func thenByID(sign int, primary func(a, b models.Transaction) int) func(a, b models.Transaction) int {
	return func(a, b models.Transaction) int {
		if c := primary(a, b); c != 0 {
			return sign * c
		}
		return sign * cmp.Compare(a.ID, b.ID)
	}
}

func typeRank(t models.TransactionType) int {
	if t == models.Income {
		return 0
	}
	return 1
}

// customIDSuffix returns the digits of a well-formed custom id, or nil.
func customIDSuffix(customID *string) *string {
	if customID == nil || !models.IsWellFormedCustomID(*customID) {
		return nil
	}
	digits := (*customID)[1:]
	return &digits
}

// compareNullsLast applies sign to the comparison of present values only;
// nil always sorts after a present value.
func compareNullsLast(a, b *string, compare func(x, y string) int, sign int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return sign * compare(*a, *b)
}

// compareDigits compares two decimal digit strings by numeric value without
// any size limit.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
