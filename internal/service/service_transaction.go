// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// transactionService is the concrete implementation of [TransactionService].
// Payloads are expected to be validated by [TransactionValidationService].
type transactionService struct {
	transactionRepository store.TransactionRepository
	logger                *logger.Logger
}

// NewTransactionService constructs a [TransactionService] over repo.
func NewTransactionService(repo store.TransactionRepository, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepository: repo,
		logger:                logger,
	}
}

// Create stores a new transaction of the authenticated user.
//
// Without a custom id the next one of the type is allocated: the largest
// numeric suffix among the user's well-formed ids plus one ("R001" for the
// first income). An explicit id already taken within (user, type) yields
// [store.ErrCustomIDAlreadyExists]. Allocation is not atomic; a concurrent
// creator losing the race gets the same error from the unique index.
func (s *transactionService) Create(ctx context.Context, in models.TransactionInput) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	t := newTransaction(userID, in)

	customID := strings.TrimSpace(in.CustomID)
	if customID == "" {
		maxNumber, err := s.transactionRepository.MaxCustomIDNumber(ctx, userID, in.Type)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("error allocating custom id: %w", err)
		}
		customID = models.FormatCustomID(in.Type, maxNumber+1)
	} else if err = s.ensureCustomIDFree(ctx, userID, in.Type, customID, 0); err != nil {
		return models.Transaction{}, err
	}
	t.CustomID = &customID

	created, err := s.transactionRepository.Create(ctx, t)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error creating transaction")
		return models.Transaction{}, fmt.Errorf("error creating transaction: %w", err)
	}

	return created, nil
}

// Update rewrites the transaction id of the authenticated user. A row of
// another user is reported as [store.ErrTransactionNotFound].
func (s *transactionService) Update(ctx context.Context, id int64, in models.TransactionInput) (models.Transaction, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	customID := strings.TrimSpace(in.CustomID)
	if err = s.ensureCustomIDFree(ctx, userID, in.Type, customID, id); err != nil {
		return models.Transaction{}, err
	}

	t := newTransaction(userID, in)
	t.ID = id
	t.CustomID = &customID

	updated, err := s.transactionRepository.Update(ctx, t)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("error updating transaction: %w", err)
	}
	return updated, nil
}

func (s *transactionService) Delete(ctx context.Context, id int64) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err = s.transactionRepository.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting transaction: %w", err)
	}
	return nil
}

// List returns one page of the authenticated user's transactions. The user
// id of query is always replaced by the one from ctx.
func (s *transactionService) List(ctx context.Context, query models.ListQuery) (models.TransactionPage, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return models.TransactionPage{}, err
	}

	query.UserID = userID
	query = query.Normalize()

	items, total, err := s.transactionRepository.List(ctx, query)
	if err != nil {
		return models.TransactionPage{}, fmt.Errorf("error listing transactions: %w", err)
	}

	return models.TransactionPage{
		Transactions: items,
		Pagination:   models.NewPagination(query.Page, query.PageSize, total),
	}, nil
}

func (s *transactionService) ensureCustomIDFree(ctx context.Context, userID int64, txType models.TransactionType, customID string, excludeID int64) error {
	exists, err := s.transactionRepository.CustomIDExists(ctx, userID, txType, customID, excludeID)
	if err != nil {
		return fmt.Errorf("error checking custom id: %w", err)
	}
	if exists {
		return store.ErrCustomIDAlreadyExists
	}
	return nil
}

func newTransaction(userID int64, in models.TransactionInput) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Date:        in.Date,
	}
}
