package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// psql builds PostgreSQL statements with $n placeholders. Every caller value
// is bound as an argument; only allow-listed column names and directions are
// ever written into the query text.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	usersTable        = "users"
	transactionsTable = "transactions"
)

var (
	userColumns = []string{"id", "email", "name", "password_hash", "created_at"}

	transactionColumns = []string{
		"id", "user_id", "custom_id", "type", "description",
		"amount", "date", "created_at", "updated_at",
	}
)

const (
	// customIDIndex is the partial unique index guarding custom ids.
	customIDIndex = "idx_transactions_custom_id_type_user"

	// customIDNumberExpr extracts the numeric suffix of a well-formed custom
	// id and yields NULL for anything else.
	customIDNumberExpr = `CASE WHEN custom_id ~ '` + models.CustomIDPatternSQL + `' THEN CAST(SUBSTRING(custom_id FROM 2) AS NUMERIC) END`

	// incomeFirstExpr ranks income rows before expense rows.
	incomeFirstExpr = `CASE WHEN type = 'income' THEN 0 ELSE 1 END`
)

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns("email", "name", "password_hash").
		Values(user.Email, user.Name, user.PasswordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildFindUserQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildUpdateUserNameQuery(userID int64, name string) (string, []any, error) {
	return psql.Update(usersTable).
		Set("name", name).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildUpdatePasswordHashQuery(userID int64, passwordHash string) (string, []any, error) {
	return psql.Update(usersTable).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// ── transactions ──────────────────────────────────────────────────────────────

func buildCreateTransactionQuery(t models.Transaction) (string, []any, error) {
	return psql.Insert(transactionsTable).
		Columns("user_id", "custom_id", "type", "description", "amount", "date").
		Values(t.UserID, t.CustomID, t.Type, t.Description, t.Amount, t.Date).
		Suffix("RETURNING " + strings.Join(transactionColumns, ", ")).
		ToSql()
}

func buildUpdateTransactionQuery(t models.Transaction) (string, []any, error) {
	return psql.Update(transactionsTable).
		Set("custom_id", t.CustomID).
		Set("type", t.Type).
		Set("description", t.Description).
		Set("amount", t.Amount).
		Set("date", t.Date).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": t.ID, "user_id": t.UserID}).
		Suffix("RETURNING " + strings.Join(transactionColumns, ", ")).
		ToSql()
}

func buildDeleteTransactionQuery(userID, id int64) (string, []any, error) {
	return psql.Delete(transactionsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// buildCustomIDExistsQuery selects at most one row holding customID within
// (userID, type), ignoring the row excludeID.
func buildCustomIDExistsQuery(userID int64, txType models.TransactionType, customID string, excludeID int64) (string, []any, error) {
	b := psql.Select("id").
		From(transactionsTable).
		Where(sq.Eq{"user_id": userID, "type": txType, "custom_id": customID})
	if excludeID > 0 {
		b = b.Where(sq.NotEq{"id": excludeID})
	}
	return b.Limit(1).ToSql()
}

// buildMaxCustomIDNumberQuery only considers ids with the type's own prefix
// and at most 18 digits, so the suffix always fits into BIGINT.
func buildMaxCustomIDNumberQuery(userID int64, txType models.TransactionType) (string, []any, error) {
	pattern := "^" + txType.CustomIDPrefix() + "[0-9]{1,18}$"
	return psql.Select("COALESCE(MAX(CAST(SUBSTRING(custom_id FROM 2) AS BIGINT)), 0)").
		From(transactionsTable).
		Where(sq.Eq{"user_id": userID, "type": txType}).
		Where(sq.Expr("custom_id ~ ?", pattern)).
		ToSql()
}

// listWhere is the filter and search predicate shared by the page and the
// count query.
func listWhere(query models.ListQuery) sq.And {
	where := sq.And{sq.Eq{"user_id": query.UserID}}

	if t := query.Filter.Type(); t != "" {
		where = append(where, sq.Eq{"type": t})
	}

	if query.Search != "" {
		pattern := "%" + escapeLike(query.Search) + "%"
		where = append(where, sq.Or{
			sq.ILike{"description": pattern},
			sq.ILike{"custom_id": pattern},
			sq.Expr("amount::text ILIKE ?", pattern),
			sq.Expr("date::text ILIKE ?", pattern),
		})
	}

	return where
}

func buildListTransactionsQuery(query models.ListQuery) (string, []any, error) {
	return psql.Select(transactionColumns...).
		From(transactionsTable).
		Where(listWhere(query)).
		OrderBy(listOrderBy(query.SortBy, query.SortOrder)...).
		Limit(uint64(query.PageSize)).
		Offset(uint64(query.Offset())).
		ToSql()
}

func buildCountTransactionsQuery(query models.ListQuery) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(transactionsTable).
		Where(listWhere(query)).
		ToSql()
}

// listOrderBy maps an allow-listed sort onto ORDER BY terms. Every ordering
// ends on id so that pages are stable.
func listOrderBy(field models.SortField, order models.SortOrder) []string {
	dir := "ASC"
	if order == models.Desc {
		dir = "DESC"
	}

	switch field {
	case models.SortByCustomID:
		return []string{
			incomeFirstExpr + " ASC",
			customIDNumberExpr + " " + dir + " NULLS LAST",
			"custom_id " + dir + " NULLS LAST",
			"id " + dir,
		}
	case models.SortByAmount, models.SortByDate, models.SortByDescription:
		return []string{string(field) + " " + dir, "id " + dir}
	default:
		return []string{"created_at DESC", "id DESC"}
	}
}

func buildListForReportQuery(query models.ReportQuery) (string, []any, error) {
	b := psql.Select(transactionColumns...).
		From(transactionsTable).
		Where(sq.Eq{"user_id": query.UserID})

	if t := query.Filter.Type(); t != "" {
		b = b.Where(sq.Eq{"type": t})
	}
	if query.Since != nil {
		b = b.Where(sq.GtOrEq{"date": *query.Since})
	}

	return b.OrderBy("date ASC", "id ASC").ToSql()
}

// escapeLike escapes the LIKE metacharacters of s with PostgreSQL's default
// escape character, the backslash.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
