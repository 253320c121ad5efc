// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/jackc/pgerrcode"
)

// transactionRepository is the PostgreSQL-backed implementation of
// [TransactionRepository] over the "transactions" table.
type transactionRepository struct {
	*DB
	logger *logger.Logger
}

// NewTransactionRepository constructs a [TransactionRepository] backed by
// the provided database connection and logger.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts t and returns the stored row.
//
// Error handling:
//   - unique_violation on the custom id index → [ErrCustomIDAlreadyExists].
//     This is the authoritative guard against concurrent allocations of
//     the same id.
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *transactionRepository) Create(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateTransactionQuery(t)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanTransaction(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isCustomIDViolation(err) {
			return models.Transaction{}, ErrCustomIDAlreadyExists
		}
		log.Err(err).
			Str("func", "transactionRepository.Create").
			Int64("user_id", t.UserID).
			Msg("failed to insert transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// Update rewrites all editable fields of the row matching t.ID and t.UserID
// and bumps updated_at. A row owned by another user is reported as
// [ErrTransactionNotFound].
func (r *transactionRepository) Update(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTransactionQuery(t)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanTransaction(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Transaction{}, ErrTransactionNotFound
		case isCustomIDViolation(err):
			return models.Transaction{}, ErrCustomIDAlreadyExists
		}
		log.Err(err).
			Str("func", "transactionRepository.Update").
			Int64("user_id", t.UserID).
			Int64("id", t.ID).
			Msg("failed to update transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// Delete removes the row matching id and userID.
func (r *transactionRepository) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTransactionQuery(userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.Delete").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to delete transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// List runs the page query and the count query for the same predicate.
func (r *transactionRepository) List(ctx context.Context, query models.ListQuery) ([]models.Transaction, int, error) {
	log := logger.FromContext(ctx)
	query = query.Normalize()

	countSQL, countArgs, err := buildCountTransactionsQuery(query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.DB.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "transactionRepository.List").
			Int64("user_id", query.UserID).
			Msg("failed to count transactions")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listSQL, listArgs, err := buildListTransactionsQuery(query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := r.queryTransactions(ctx, listSQL, listArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.List").
			Int64("user_id", query.UserID).
			Int("page", query.Page).
			Msg("failed to list transactions")
		return nil, 0, err
	}

	return items, total, nil
}

// CustomIDExists reports whether another row of (userID, type) already holds
// customID.
func (r *transactionRepository) CustomIDExists(ctx context.Context, userID int64, txType models.TransactionType, customID string, excludeID int64) (bool, error) {
	query, args, err := buildCustomIDExistsQuery(userID, txType, customID, excludeID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "transactionRepository.CustomIDExists").
			Int64("user_id", userID).
			Msg("failed to check custom id")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// MaxCustomIDNumber returns the highest numeric suffix among the type's
// well-formed custom ids.
func (r *transactionRepository) MaxCustomIDNumber(ctx context.Context, userID int64, txType models.TransactionType) (int64, error) {
	query, args, err := buildMaxCustomIDNumberQuery(userID, txType)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var maxNumber int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&maxNumber); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "transactionRepository.MaxCustomIDNumber").
			Int64("user_id", userID).
			Msg("failed to read max custom id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return maxNumber, nil
}

// ListForReport returns every row selected by query, oldest first.
func (r *transactionRepository) ListForReport(ctx context.Context, query models.ReportQuery) ([]models.Transaction, error) {
	sqlQuery, args, err := buildListForReportQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := r.queryTransactions(ctx, sqlQuery, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "transactionRepository.ListForReport").
			Int64("user_id", query.UserID).
			Msg("failed to list transactions for report")
		return nil, err
	}

	return items, nil
}

func (r *transactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, models.DefaultPageSize)
	for rows.Next() {
		item, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads one row in transactionColumns order.
func scanTransaction(row rowScanner) (models.Transaction, error) {
	var (
		t        models.Transaction
		customID sql.NullString
	)

	err := row.Scan(
		&t.ID,
		&t.UserID,
		&customID,
		&t.Type,
		&t.Description,
		&t.Amount,
		&t.Date,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return models.Transaction{}, err
	}

	if customID.Valid {
		t.CustomID = &customID.String
	}
	return t, nil
}

// isCustomIDViolation reports whether err is a unique violation of the custom
// id index.
func isCustomIDViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation && postgresConstraint(err) == customIDIndex
}
