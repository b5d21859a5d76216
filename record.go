package prompting

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// recordValidator holds the declarative rules shared by every record type.
var recordValidator = validator.New(validator.WithRequiredStructEnabled())

// RegisterValidation adds a custom rule usable in record `validate` tags.
func RegisterValidation(tag string, fn validator.Func) error {
	return recordValidator.RegisterValidation(tag, fn)
}

// ValidateRecord runs the declarative rules on an already-built record.
func ValidateRecord(v any) error {
	return recordValidator.Struct(v)
}

// SanitizeJSONResponse removes garbage characters often produced by LLMs.
// Very defensive, yet fast; tweak as you like.
func SanitizeJSONResponse(b []byte) []byte {
	s := strings.TrimSpace(string(b))
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return []byte(strings.TrimSpace(s))
}

// Decode coerces a raw model reply into a validated record of type T.
// T must be a struct. Parse failures and rule violations are both
// terminal: the caller gets either a record that satisfies its own
// declaration, or an error saying exactly which rule broke.
func Decode[T any](raw []byte) (*T, error) {
	var out T
	clean := SanitizeJSONResponse(raw)
	if err := json.Unmarshal(clean, &out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := recordValidator.Struct(&out); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return &out, nil
}
