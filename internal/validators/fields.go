package validators

// Field names accepted by Validate to restrict validation to a subset of a
// payload's fields.
const (
	FieldType        = "type"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldDate        = "date"

	// FieldCustomID checks an optional custom id: empty is allowed.
	FieldCustomID = "custom_id"

	// FieldCustomIDRequired checks a custom id that must be present, as on
	// update.
	FieldCustomIDRequired = "custom_id_required"

	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldConfirmPassword = "confirm_password"
)

// Limits enforced on user input.
const (
	MinNameLength     = 2
	MinPasswordLength = 6

	// MaxPasswordBytes is the longest password bcrypt can hash.
	MaxPasswordBytes = 72

	MaxCustomIDLength = 50
	MaxEmailLength    = 255
	MaxNameLength     = 255
)
