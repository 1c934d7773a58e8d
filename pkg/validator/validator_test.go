package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/finkit/pkg/validator"
)

func TestValidateMergeSemantics(t *testing.T) {
	t.Parallel()

	t.Run("empty rule list is always valid", func(t *testing.T) {
		res := validator.Validate("anything")
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.Empty(t, res.Warnings)
		assert.Equal(t, "anything", res.Value)
		assert.Empty(t, res.Cleanings)
	})

	t.Run("errors concatenate without short-circuit", func(t *testing.T) {
		res := validator.Validate("abc",
			validator.Numeric(),
			validator.MinLength(5),
		)
		require.Len(t, res.Errors, 2, "both rules should report")
		assert.Equal(t, "Invalid numeric value", res.Errors[0].Message)
		assert.Equal(t, "Minimum length is 5", res.Errors[1].Message)
		assert.False(t, res.Valid)
	})

	t.Run("valid mirrors empty errors", func(t *testing.T) {
		inputs := []any{"$1,234.56", "42", 7, nil, ""}
		for _, input := range inputs {
			res := validator.Validate(input, validator.Numeric())
			assert.Equal(t, len(res.Errors) == 0, res.Valid, "input %v", input)
		}
	})

	t.Run("warnings never affect validity", func(t *testing.T) {
		res := validator.Validate(150, validator.Percentage())
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, "Percentage should be between 0% and 100%", res.Warnings[0].Message)
	})

	t.Run("last cleaning wins and sequence is preserved", func(t *testing.T) {
		res := validator.Validate("50%",
			validator.Currency(),
			validator.Percentage(),
		)
		require.True(t, res.Valid)
		assert.Equal(t, 0.5, res.Value, "later percentage cleaning overrides currency")
		require.Len(t, res.Cleanings, 2)
		assert.Equal(t, validator.KindCurrency, res.Cleanings[0].Kind)
		assert.Equal(t, 50.0, res.Cleanings[0].Value)
		assert.Equal(t, validator.KindPercentage, res.Cleanings[1].Kind)
		assert.Equal(t, 0.5, res.Cleanings[1].Value)

		reversed := validator.Validate("50%",
			validator.Percentage(),
			validator.Currency(),
		)
		assert.Equal(t, 50.0, reversed.Value)
	})

	t.Run("rules see the original value, not running cleanings", func(t *testing.T) {
		res := validator.Validate("$100",
			validator.Currency(),
			validator.Positive(),
		)
		assert.True(t, res.Valid)
		assert.Equal(t, 100.0, res.Value)
	})
}

func TestValidateEmptyPolicy(t *testing.T) {
	t.Parallel()

	t.Run("empty values skip non-required rules", func(t *testing.T) {
		for _, input := range []any{nil, ""} {
			res := validator.Validate(input,
				validator.Numeric(),
				validator.Date(),
				validator.Email(),
			)
			assert.True(t, res.Valid, "empty input %v should skip format rules", input)
			assert.Empty(t, res.Errors)
			assert.Empty(t, res.Cleanings)
			assert.Equal(t, input, res.Value)
		}
	})

	t.Run("required fails empty and later rules stay skipped", func(t *testing.T) {
		res := validator.Validate("",
			validator.Required(),
			validator.Numeric(),
		)
		require.Len(t, res.Errors, 1, "only required should fire on empty")
		assert.Equal(t, "Field is required", res.Errors[0].Message)
		assert.Equal(t, "validation.required", res.Errors[0].TranslationKey)
	})

	t.Run("whitespace fails required but still reaches other rules", func(t *testing.T) {
		res := validator.Validate("   ",
			validator.Required(),
			validator.Numeric(),
		)
		require.Len(t, res.Errors, 2)
		assert.Equal(t, "Field is required", res.Errors[0].Message)
		assert.Equal(t, "Invalid numeric value", res.Errors[1].Message)
	})

	t.Run("zero is present, not empty", func(t *testing.T) {
		res := validator.Validate(0, validator.Required(), validator.Positive())
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "Value must be positive", res.Errors[0].Message)
	})
}

func TestValidateIdempotence(t *testing.T) {
	t.Parallel()

	t.Run("re-validating a cleaned value yields the same value", func(t *testing.T) {
		first := validator.Validate("$1,234.56", validator.Currency())
		require.True(t, first.Valid)

		second := validator.Validate(first.Value, validator.Currency())
		require.True(t, second.Valid)
		assert.Equal(t, first.Value, second.Value)
	})

	t.Run("numeric float round-trips", func(t *testing.T) {
		first := validator.Validate("  42 ", validator.Numeric())
		require.True(t, first.Valid)
		assert.Equal(t, 42.0, first.Value)

		second := validator.Validate(first.Value, validator.Numeric())
		assert.Equal(t, 42.0, second.Value)
	})
}

func TestValidateContractViolations(t *testing.T) {
	t.Parallel()

	t.Run("unknown rule kind panics", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.Validate(1, validator.Rule{Kind: validator.Kind("bogus")})
		})
	})

	t.Run("zero rule panics", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.Validate(1, validator.Rule{})
		})
	})
}

func TestRuleMessageOverrides(t *testing.T) {
	t.Parallel()

	t.Run("error message override", func(t *testing.T) {
		res := validator.Validate("", validator.Required().WithMessage("Rent is required"))
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "Rent is required", res.Errors[0].Message)
		assert.Equal(t, "validation.required", res.Errors[0].TranslationKey, "override keeps the translation key")
	})

	t.Run("warning message override", func(t *testing.T) {
		res := validator.Validate(2.5, validator.Percentage().WithWarning("Rate looks too high"))
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, "Rate looks too high", res.Warnings[0].Message)
	})
}

func TestValidatorOptions(t *testing.T) {
	t.Parallel()

	t.Run("custom currency symbols", func(t *testing.T) {
		v := validator.New(validator.WithCurrencySymbols("zł"))
		res := v.Validate("1200zł", validator.Numeric())
		require.True(t, res.Valid)
		assert.Equal(t, 1200.0, res.Value)

		rejected := v.Validate("$1200", validator.Numeric())
		assert.False(t, rejected.Valid, "dollar sign is no longer stripped")
	})

	t.Run("custom date layouts", func(t *testing.T) {
		v := validator.New(validator.WithDateLayouts("02.01.2006"))
		res := v.Validate("15.03.2024", validator.Date())
		require.True(t, res.Valid)

		rejected := v.Validate("2024-03-15", validator.Date())
		assert.False(t, rejected.Valid, "ISO layout was replaced")
	})

	t.Run("custom phone patterns", func(t *testing.T) {
		v := validator.New(validator.WithPhonePatterns(`^\d{4}$`))
		res := v.Validate("1234", validator.Phone())
		require.True(t, res.Valid)
		assert.Equal(t, "1234", res.Value)
	})
}

func TestResultMessageHelpers(t *testing.T) {
	t.Parallel()

	res := validator.Validate("abc", validator.Numeric(), validator.MinLength(5))
	assert.Equal(t, []string{"Invalid numeric value", "Minimum length is 5"}, res.ErrorMessages())

	warned := validator.Validate(150, validator.Percentage())
	assert.Equal(t, []string{"Percentage should be between 0% and 100%"}, warned.WarningMessages())
}
