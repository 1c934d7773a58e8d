package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/finkit/pkg/validator"
)

func TestDate(t *testing.T) {
	t.Parallel()

	t.Run("parses supported layouts in order", func(t *testing.T) {
		testCases := []struct {
			input  string
			parsed time.Time
		}{
			{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
			{"03/15/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
			{"15/03/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)}, // falls through to DD/MM/YYYY
			{"2024-03-15 10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		}

		for _, tc := range testCases {
			res := validator.Validate(tc.input, validator.Date())
			require.True(t, res.Valid, "input %q should parse", tc.input)
			assert.Equal(t, tc.parsed, res.Value, "input %q", tc.input)
		}
	})

	t.Run("ambiguous dates resolve US-first", func(t *testing.T) {
		res := validator.Validate("03/04/2024", validator.Date())
		require.True(t, res.Valid)
		assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), res.Value)
	})

	t.Run("time values pass through unchanged", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		res := validator.Validate(now, validator.Date())
		require.True(t, res.Valid)
		assert.Equal(t, now, res.Value)
	})

	t.Run("rejects unparseable input", func(t *testing.T) {
		for _, input := range []any{"not-a-date", "2024-13-45", "15-03-2024", 20240315} {
			res := validator.Validate(input, validator.Date())
			require.False(t, res.Valid, "input %v", input)
			assert.Equal(t, "Invalid date format", res.Errors[0].Message)
			assert.Equal(t, "validation.date", res.Errors[0].TranslationKey)
		}
	})
}
