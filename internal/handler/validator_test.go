package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Identifier(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		// Best case
		{"uuid", "3f8a6c1e-0b7d-4c55-9a6e-1d2f3b4c5d6e", false},
		{"word", "imp", false},
		{"dotted", "gold.bonus_2", false},

		// Boundaries
		{"one char", "a", false},
		{"exactly max length", strings.Repeat("a", 64), false},
		{"over max length", strings.Repeat("a", 65), true},

		// Invalid
		{"empty", "", true},
		{"leading dash", "-imp", true},
		{"slash", "imp/../ogre", true},
		{"space", "gold bonus", true},
		{"newline", "imp\n", true},
		{"unicode", "impé", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateVar(tt.value, RulePlayerID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_OptionalIdentifierInStruct(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(CreatePlayerRequest{}))
	assert.NoError(t, v.ValidateStruct(CreatePlayerRequest{PlayerID: "alice"}))
	assert.Error(t, v.ValidateStruct(CreatePlayerRequest{PlayerID: "alice smith"}))
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	t.Run("struct field errors use lowercase names", func(t *testing.T) {
		err := v.ValidateStruct(CreatePlayerRequest{PlayerID: strings.Repeat("x", 65)})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "Must be at most 64 characters", fields["playerid"])
	})

	t.Run("variable errors use a generic key", func(t *testing.T) {
		err := v.ValidateVar("", RulePlayerID)
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "This field is required", fields["value"])
	})

	t.Run("non validation errors", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", fields["error"])
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}
