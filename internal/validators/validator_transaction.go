package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// maxAmount is the largest value a NUMERIC(14, 2) column holds.
var maxAmount = models.NewMoney(999_999_999_999, 99)

var (
	createTransactionFields = []string{FieldType, FieldDescription, FieldAmount, FieldDate, FieldCustomID}
	updateTransactionFields = []string{FieldType, FieldDescription, FieldAmount, FieldDate, FieldCustomIDRequired}
)

// TransactionValidator implements [Validator] for [models.TransactionInput].
type TransactionValidator struct{}

// NewTransactionValidator constructs a [TransactionValidator] and returns it
// as the [Validator] interface.
func NewTransactionValidator() Validator {
	return &TransactionValidator{}
}

// CreateFields are the fields checked when a transaction is created.
func CreateFields() []string { return createTransactionFields }

// UpdateFields are the fields checked when a transaction is updated. Unlike
// create, an update must carry a custom id.
func UpdateFields() []string { return updateTransactionFields }

// Validate accepts models.TransactionInput or *models.TransactionInput. With
// no fields the create rules apply.
func (v *TransactionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TransactionInput:
		return v.validateInput(value, fields...)
	case *models.TransactionInput:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateInput(*value, fields...)
	}
	return ErrUnsupportedType
}

func (v *TransactionValidator) validateInput(in models.TransactionInput, fields ...string) error {
	if len(fields) == 0 {
		fields = createTransactionFields
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !in.Type.Valid() {
				return newFieldError(f, "type must be income or expense")
			}
		case FieldDescription:
			if strings.TrimSpace(in.Description) == "" {
				return newFieldError(f, "description is required")
			}
		case FieldAmount:
			if !in.Amount.IsPositive() {
				return newFieldError(f, "amount must be greater than 0")
			}
			if !in.Amount.WholeCents() {
				return newFieldError(f, "amount must have at most 2 decimal places")
			}
			if in.Amount.Cmp(maxAmount) > 0 {
				return newFieldError(f, "amount is too large")
			}
		case FieldDate:
			if in.Date.IsZero() {
				return newFieldError(f, "date is required")
			}
		case FieldCustomID:
			if err := validateCustomID(in.CustomID, false); err != nil {
				return err
			}
		case FieldCustomIDRequired:
			if err := validateCustomID(in.CustomID, true); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateCustomID(customID string, required bool) error {
	trimmed := strings.TrimSpace(customID)
	if trimmed == "" {
		if required {
			return newFieldError(FieldCustomID, "custom id is required")
		}
		return nil
	}
	if trimmed != customID {
		return newFieldError(FieldCustomID, "custom id must not start or end with spaces")
	}
	if utf8.RuneCountInString(customID) > MaxCustomIDLength {
		return newFieldError(FieldCustomID, "custom id must be at most 50 characters")
	}
	return nil
}
