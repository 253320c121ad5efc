package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/internal/validators"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// TransactionValidationService checks payloads before handing them to the
// wrapped [TransactionService].
type TransactionValidationService struct {
	inner     TransactionService
	validator validators.Validator
}

func NewTransactionValidationService() TransactionServiceWrapper {
	return &TransactionValidationService{
		validator: validators.NewTransactionValidator(),
	}
}

// Create trims the custom id once, so the checks and the stored row see the
// same value.
func (v *TransactionValidationService) Create(ctx context.Context, in models.TransactionInput) (models.Transaction, error) {
	in.CustomID = strings.TrimSpace(in.CustomID)
	if err := v.validator.Validate(ctx, in, validators.CreateFields()...); err != nil {
		return models.Transaction{}, err
	}
	return v.inner.Create(ctx, in)
}

func (v *TransactionValidationService) Update(ctx context.Context, id int64, in models.TransactionInput) (models.Transaction, error) {
	if id <= 0 {
		return models.Transaction{}, errInvalidTransactionID
	}
	in.CustomID = strings.TrimSpace(in.CustomID)
	if err := v.validator.Validate(ctx, in, validators.UpdateFields()...); err != nil {
		return models.Transaction{}, err
	}
	return v.inner.Update(ctx, id, in)
}

func (v *TransactionValidationService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return errInvalidTransactionID
	}
	return v.inner.Delete(ctx, id)
}

// List needs no checks: every query parameter is normalized or mapped
// through an allow-list.
func (v *TransactionValidationService) List(ctx context.Context, query models.ListQuery) (models.TransactionPage, error) {
	return v.inner.List(ctx, query)
}

func (v *TransactionValidationService) Wrap(wrapped TransactionService) TransactionService {
	v.inner = wrapped
	return v
}

var errInvalidTransactionID error = &validators.FieldError{Field: "id", Message: "invalid transaction id"}
