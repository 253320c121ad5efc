package validators

import "errors"

var (
	// ErrInvalidData is the root of every validation failure. Callers match
	// it with errors.Is; the concrete *FieldError carries the message.
	ErrInvalidData = errors.New("invalid data provided")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// FieldError reports the first field of a payload that failed validation.
// Its message is safe to show to the end user.
type FieldError struct {
	Field   string
	Message string
}

func newFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

func (e *FieldError) Error() string {
	return e.Message
}

// Unwrap makes every *FieldError match [ErrInvalidData].
func (e *FieldError) Unwrap() error {
	return ErrInvalidData
}
