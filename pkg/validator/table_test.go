package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/finkit/pkg/validator"
)

func TestValidateTable(t *testing.T) {
	t.Parallel()

	amountRules := map[string][]validator.Rule{
		"amount": {validator.Required(), validator.Positive()},
		"date":   {validator.Required(), validator.Date()},
	}

	t.Run("empty input returns ErrNoRows", func(t *testing.T) {
		_, err := validator.ValidateTable(nil, []string{"amount"}, amountRules)
		require.ErrorIs(t, err, validator.ErrNoRows)
	})

	t.Run("missing required column aborts row validation", func(t *testing.T) {
		rows := [][]any{
			{"amount", "vendor"},
			{100.0, "V-001"},
		}

		report, err := validator.ValidateTable(rows, []string{"amount", "date"}, amountRules)
		require.NoError(t, err)

		require.Len(t, report.HeaderErrors, 1)
		assert.Equal(t, "Missing required column: date", report.HeaderErrors[0])
		assert.Empty(t, report.Rows, "data rows must not be validated under a broken header")
		assert.False(t, report.Valid)
	})

	t.Run("clean table passes with every row reported", func(t *testing.T) {
		rows := [][]any{
			{"amount", "date"},
			{100.0, "2024-01-15"},
			{"$2,500.00", "2024-02-01"},
		}

		report, err := validator.ValidateTable(rows, []string{"amount", "date"}, amountRules)
		require.NoError(t, err)

		assert.True(t, report.Valid)
		assert.Equal(t, 2, report.TotalRows)
		assert.Zero(t, report.TotalErrors)
		require.Len(t, report.Rows, 2)
		assert.Equal(t, 2, report.Rows[0].Row, "first data row is row 2, after the header")
		assert.Equal(t, 3, report.Rows[1].Row)
	})

	t.Run("cell failures carry the column name and row number", func(t *testing.T) {
		rows := [][]any{
			{"amount", "date"},
			{100.0, "2024-01-15"},
			{-50.0, "not-a-date"},
			{"", "2024-03-01"},
		}

		report, err := validator.ValidateTable(rows, []string{"amount", "date"}, amountRules)
		require.NoError(t, err)

		assert.False(t, report.Valid)
		assert.Equal(t, 3, report.TotalRows)
		assert.Equal(t, 3, report.TotalErrors)
		assert.Equal(t, []int{3, 4}, report.ErrorRows)

		require.Len(t, report.Rows, 3)
		assert.Equal(t, []string{
			"amount: Value must be positive",
			"date: Invalid date format",
		}, report.Rows[1].Errors)
		assert.Equal(t, []string{"amount: Field is required"}, report.Rows[2].Errors)
	})

	t.Run("warnings count separately from errors", func(t *testing.T) {
		rules := map[string][]validator.Rule{
			"rate": {validator.Percentage()},
		}
		rows := [][]any{
			{"rate"},
			{150},
			{"50%"},
		}

		report, err := validator.ValidateTable(rows, []string{"rate"}, rules)
		require.NoError(t, err)

		assert.True(t, report.Valid, "warnings never fail the table")
		assert.Zero(t, report.TotalErrors)
		assert.Equal(t, 1, report.TotalWarnings)
		assert.Equal(t, []string{"rate: Percentage should be between 0% and 100%"}, report.Rows[0].Warnings)
	})

	t.Run("short rows skip missing cells", func(t *testing.T) {
		rows := [][]any{
			{"amount", "date"},
			{100.0},
		}

		report, err := validator.ValidateTable(rows, []string{"amount", "date"}, amountRules)
		require.NoError(t, err)
		assert.True(t, report.Valid)
	})
}

func TestCleanColumns(t *testing.T) {
	t.Parallel()

	t.Run("valid cells are replaced by cleaned values", func(t *testing.T) {
		dataset := map[string][]any{
			"amount": {"$1,000.00", "  42 ", 99.5},
			"email":  {"Foo@Bar.COM", "ops@example.com"},
		}
		rules := map[string][]validator.Rule{
			"amount": {validator.Numeric()},
			"email":  {validator.Email()},
		}

		cleaned, report := validator.CleanColumns(dataset, rules)

		assert.True(t, report.Success)
		assert.Equal(t, 3, report.OriginalRows)
		assert.Equal(t, 3, report.FinalRows)
		assert.Equal(t, []string{"amount", "email"}, report.Columns)
		assert.Equal(t, []any{1000.0, 42.0, 99.5}, cleaned["amount"])
		assert.Equal(t, []any{"foo@bar.com", "ops@example.com"}, cleaned["email"])
	})

	t.Run("invalid cells keep the original value and are reported", func(t *testing.T) {
		dataset := map[string][]any{
			"amount": {"$100", "abc", -5},
		}
		rules := map[string][]validator.Rule{
			"amount": {validator.Positive()},
		}

		cleaned, report := validator.CleanColumns(dataset, rules)

		assert.False(t, report.Success)
		assert.Equal(t, []any{100.0, "abc", -5}, cleaned["amount"])
		assert.Equal(t, []string{
			"amount - Row 2: Invalid numeric value",
			"amount - Row 3: Value must be positive",
		}, report.Errors)
		assert.Equal(t, []string{"Dataset contains 2 validation errors"}, report.Actions)
	})

	t.Run("unknown rule column is reported, not fatal", func(t *testing.T) {
		dataset := map[string][]any{
			"amount": {100},
		}
		rules := map[string][]validator.Rule{
			"amount":  {validator.Numeric()},
			"missing": {validator.Required()},
		}

		cleaned, report := validator.CleanColumns(dataset, rules)

		assert.False(t, report.Success)
		assert.Contains(t, report.Errors, "Column 'missing' not found in dataset")
		assert.Equal(t, []string{"amount"}, report.Columns)
		assert.Equal(t, []any{100.0}, cleaned["amount"])
	})

	t.Run("columns without rules pass through copied", func(t *testing.T) {
		dataset := map[string][]any{
			"notes": {"a", "b"},
		}

		cleaned, report := validator.CleanColumns(dataset, nil)

		assert.True(t, report.Success)
		assert.Equal(t, []any{"a", "b"}, cleaned["notes"])

		cleaned["notes"][0] = "mutated"
		assert.Equal(t, "a", dataset["notes"][0], "cleaning must not alias the input dataset")
	})

	t.Run("warnings are collected per row", func(t *testing.T) {
		dataset := map[string][]any{
			"rate": {0.5, 150},
		}
		rules := map[string][]validator.Rule{
			"rate": {validator.Percentage()},
		}

		_, report := validator.CleanColumns(dataset, rules)

		assert.True(t, report.Success)
		assert.Equal(t, []string{"rate - Row 2: Percentage should be between 0% and 100%"}, report.Warnings)
	})
}
