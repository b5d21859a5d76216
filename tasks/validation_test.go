package tasks

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prompting "github.com/RyanGertz/gemini-prompt-engineering"
)

func TestUserIDRule(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		valid  bool
	}{
		{"simple", "ryan", true},
		{"with dashes", "ryan-gertz", true},
		{"digits are uncased", "ryan-gertz-2024", true},
		{"uppercase", "Ryan-Gertz", false},
		{"digits only", "123-456", false}, // no lowercase letter anywhere
		{"too long", strings.Repeat("a", 32), false},
		{"just under limit", strings.Repeat("a", 31), true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := UserProfile{
				UserID:      tt.userID,
				Age:         30,
				Email:       "user@example.com",
				Preferences: []string{"reading"},
				Status:      "active",
			}
			err := prompting.ValidateRecord(&p)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUserProfile_Decode(t *testing.T) {
	good := `{
		"user_id": "jane-doe",
		"age": 30,
		"email": "jane@example.com",
		"preferences": ["hiking"],
		"status": "pending"
	}`
	p, err := prompting.Decode[UserProfile]([]byte(good))
	require.NoError(t, err)
	assert.Equal(t, "jane-doe", p.UserID)
	assert.Equal(t, "pending", p.Status)
}

func TestUserProfile_DecodeRejectsBrokenProfile(t *testing.T) {
	_, err := prompting.Decode[UserProfile]([]byte(invalidProfileJSON))
	require.Error(t, err)
	// All three broken fields surface in one validation error.
	assert.Contains(t, err.Error(), "UserID")
	assert.Contains(t, err.Error(), "Age")
	assert.Contains(t, err.Error(), "Email")
}

func TestUserProfile_RejectsUnknownStatus(t *testing.T) {
	p := UserProfile{
		UserID: "jane-doe",
		Age:    30,
		Email:  "jane@example.com",
		Status: "suspended",
	}
	assert.Error(t, prompting.ValidateRecord(&p))
}

func TestRunValidation(t *testing.T) {
	var out strings.Builder
	require.NoError(t, runValidation(context.Background(), nil, &out))
	assert.Contains(t, out.String(), `"user_id": "USER-123-TOO-LONG-USERNAME-THAT-EXCEEDS-32-CHARS"`)
	assert.Contains(t, out.String(), "Validation failed, as expected")
	assert.Contains(t, out.String(), "Valid profile accepted: ryan-gertz")
}
