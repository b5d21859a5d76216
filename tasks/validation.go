package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	prompting "github.com/RyanGertz/gemini-prompt-engineering"
)

// UserProfile introduces record declarations and validation. The rules live
// in the struct tags; the custom user_id rule is registered below.
type UserProfile struct {
	UserID      string   `json:"user_id" description:"User ID - must be under 32 chars, lowercase and dashes only" validate:"required,user_id"`
	Age         int      `json:"age" description:"User age between 13 and 120" validate:"gte=13,lte=120"`
	Email       string   `json:"email" description:"Valid email address" validate:"required,email"`
	Preferences []string `json:"preferences" description:"User preferences list"`
	Status      string   `json:"status" description:"Account status" validate:"oneof=active inactive pending"`
}

func init() {
	// After stripping dashes: no uppercase letters, and at least one
	// lowercase letter must be present. Digits and other uncased
	// characters pass through.
	err := prompting.RegisterValidation("user_id", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if len(v) >= 32 {
			return false
		}
		hasLower := false
		for _, r := range strings.ReplaceAll(v, "-", "") {
			if unicode.IsUpper(r) {
				return false
			}
			if unicode.IsLower(r) {
				hasLower = true
			}
		}
		return hasLower
	})
	if err != nil {
		panic(fmt.Sprintf("register user_id rule: %v", err))
	}
}

// invalidProfileJSON breaks three rules at once: the ID is too long and
// uppercase, the age is out of range, and the email is not an email.
const invalidProfileJSON = `
{
    "user_id": "USER-123-TOO-LONG-USERNAME-THAT-EXCEEDS-32-CHARS",
    "age": 150,
    "preferences": ["reading", "gaming", "cooking"],
    "email": "invalid-email",
    "status": "active"
}
`

// runValidation parses a deliberately broken profile and shows what the
// validator reports, then a clean one. No model call is involved.
func runValidation(_ context.Context, _ *prompting.Client, out io.Writer) error {
	fmt.Fprintln(out, "=== JSON Validation with Intentional Failures ===")
	fmt.Fprintln(out, "Original JSON string:")
	fmt.Fprint(out, invalidProfileJSON)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(invalidProfileJSON), &parsed); err != nil {
		return fmt.Errorf("parse profile JSON: %w", err)
	}
	fmt.Fprintf(out, "Parsed dictionary: %v\n", parsed)

	fmt.Fprintln(out, "\nAttempting record validation...")
	if _, err := prompting.Decode[UserProfile]([]byte(invalidProfileJSON)); err != nil {
		fmt.Fprintln(out, "Validation failed, as expected:")
		fmt.Fprintf(out, "  %v\n", err)
	} else {
		return fmt.Errorf("broken profile unexpectedly passed validation")
	}

	valid := UserProfile{
		UserID:      "ryan-gertz",
		Age:         25,
		Email:       "ryan@example.com",
		Preferences: []string{"reading", "gaming"},
		Status:      "active",
	}
	if err := prompting.ValidateRecord(&valid); err != nil {
		return fmt.Errorf("valid profile rejected: %w", err)
	}
	fmt.Fprintf(out, "\nValid profile accepted: %s (%s)\n", valid.UserID, valid.Status)
	return nil
}
