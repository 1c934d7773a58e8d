package validator

// CheckLoanParameters sanity-checks amortization inputs before a schedule
// is generated. Rates are expected in decimal form, so a rate above 1 is
// flagged as percentage-form input rather than rejected.
func CheckLoanParameters(principal, annualRate float64, years int) Result {
	return defaultValidator.CheckLoanParameters(principal, annualRate, years)
}

func (v *Validator) CheckLoanParameters(principal, annualRate float64, years int) Result {
	var errs, warns []ValidationError

	principalRes := v.Validate(principal, Required(), Positive())
	for _, e := range principalRes.Errors {
		e.Field = "principal"
		errs = append(errs, e)
	}

	if annualRate <= 0 || annualRate > 1 {
		if annualRate > 1 {
			warns = append(warns, ValidationError{
				Field:          "annual_rate",
				Message:        "Interest rate appears to be in percentage form - should be decimal",
				TranslationKey: "validation.loan_rate_form",
			})
		} else {
			errs = append(errs, ValidationError{
				Field:          "annual_rate",
				Message:        "Interest rate must be positive",
				TranslationKey: "validation.loan_rate",
			})
		}
	}
	if annualRate > 0.5 {
		warns = append(warns, ValidationError{
			Field:          "annual_rate",
			Message:        "Very high interest rate - please verify",
			TranslationKey: "validation.loan_rate_high",
		})
	}

	if years <= 0 {
		errs = append(errs, ValidationError{
			Field:          "years",
			Message:        "Loan term must be positive",
			TranslationKey: "validation.loan_term",
		})
	} else if years > 50 {
		warns = append(warns, ValidationError{
			Field:          "years",
			Message:        "Very long loan term - please verify",
			TranslationKey: "validation.loan_term_long",
		})
	}

	return Result{Valid: len(errs) == 0, Errors: errs, Warnings: warns}
}

// CheckNPVParameters sanity-checks discounting inputs. An empty series
// fails both the emptiness and all-zero checks, matching the aggregate
// error a caller should see before attempting the calculation.
func CheckNPVParameters(rate float64, cashFlows []float64) Result {
	var errs, warns []ValidationError

	if rate < -1 || rate > 1 {
		warns = append(warns, ValidationError{
			Field:          "rate",
			Message:        "Unusual discount rate - should typically be between 0% and 50%",
			TranslationKey: "validation.npv_rate",
		})
	}

	if len(cashFlows) == 0 {
		errs = append(errs, ValidationError{
			Field:          "cash_flows",
			Message:        "Cash flows cannot be empty",
			TranslationKey: "validation.npv_empty",
		})
	} else if len(cashFlows) < 2 {
		warns = append(warns, ValidationError{
			Field:          "cash_flows",
			Message:        "NPV typically requires multiple periods",
			TranslationKey: "validation.npv_periods",
		})
	}

	allZero := true
	for _, cf := range cashFlows {
		if cf != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		errs = append(errs, ValidationError{
			Field:          "cash_flows",
			Message:        "All cash flows cannot be zero",
			TranslationKey: "validation.npv_zero",
		})
	}

	return Result{Valid: len(errs) == 0, Errors: errs, Warnings: warns}
}
