package validator

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// RowIssues collects the problems found in one data row. Row numbering is
// 1-based and counts the header, so the first data row is row 2.
type RowIssues struct {
	Row      int
	Errors   []string
	Warnings []string
}

// TableReport summarizes validation of header-labelled tabular data.
type TableReport struct {
	TotalRows     int
	TotalErrors   int
	TotalWarnings int
	ErrorRows     []int
	Rows          []RowIssues
	HeaderErrors  []string
	Valid         bool
}

// ValidateTable validates rows using the default configuration.
func ValidateTable(rows [][]any, required []string, rules map[string][]Rule) (TableReport, error) {
	return defaultValidator.ValidateTable(rows, required, rules)
}

// ValidateTable checks imported tabular data. The first row is the header;
// every column named in required must appear there, and a missing column
// aborts row validation with the report carrying only HeaderErrors. Data
// rows are validated cell by cell against the rule lists keyed by column
// name, and every row is reported even when clean.
func (v *Validator) ValidateTable(rows [][]any, required []string, rules map[string][]Rule) (TableReport, error) {
	if len(rows) == 0 {
		return TableReport{}, ErrNoRows
	}

	headers := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		headers[i] = cellString(cell)
	}

	var report TableReport
	for _, col := range required {
		if !slices.Contains(headers, col) {
			report.HeaderErrors = append(report.HeaderErrors, fmt.Sprintf("Missing required column: %s", col))
		}
	}
	if len(report.HeaderErrors) > 0 {
		return report, nil
	}

	indices := make(map[string]int, len(required))
	for _, col := range required {
		indices[col] = slices.Index(headers, col)
	}

	for i, row := range rows[1:] {
		issues := RowIssues{Row: i + 2}

		for _, col := range required {
			idx := indices[col]
			if idx >= len(row) {
				continue
			}
			colRules := rules[col]
			if len(colRules) == 0 {
				continue
			}

			res := v.Validate(row[idx], colRules...)
			if !res.Valid {
				for _, msg := range res.ErrorMessages() {
					issues.Errors = append(issues.Errors, fmt.Sprintf("%s: %s", col, msg))
				}
			}
			for _, msg := range res.WarningMessages() {
				issues.Warnings = append(issues.Warnings, fmt.Sprintf("%s: %s", col, msg))
			}
		}

		report.Rows = append(report.Rows, issues)
		report.TotalErrors += len(issues.Errors)
		report.TotalWarnings += len(issues.Warnings)
		if len(issues.Errors) > 0 {
			report.ErrorRows = append(report.ErrorRows, issues.Row)
		}
	}

	report.TotalRows = len(report.Rows)
	report.Valid = report.TotalErrors == 0
	return report, nil
}

// CleanReport summarizes a column-cleaning pass over a dataset.
type CleanReport struct {
	OriginalRows int
	Columns      []string
	Actions      []string
	Errors       []string
	Warnings     []string
	FinalRows    int
	Success      bool
}

// CleanColumns cleans dataset columns using the default configuration.
func CleanColumns(dataset map[string][]any, rules map[string][]Rule) (map[string][]any, CleanReport) {
	return defaultValidator.CleanColumns(dataset, rules)
}

// CleanColumns applies rule lists to whole dataset columns. Valid cells
// are replaced by their cleaned values; invalid cells keep the original
// value and are reported with their 1-based row number. Columns without a
// rule entry pass through copied but untouched.
func (v *Validator) CleanColumns(dataset map[string][]any, rules map[string][]Rule) (map[string][]any, CleanReport) {
	cleaned := make(map[string][]any, len(dataset))
	rowCount := 0
	for col, values := range dataset {
		cleaned[col] = slices.Clone(values)
		if len(values) > rowCount {
			rowCount = len(values)
		}
	}

	report := CleanReport{OriginalRows: rowCount}

	columns := make([]string, 0, len(rules))
	for col := range rules {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	for _, col := range columns {
		values, ok := dataset[col]
		if !ok {
			report.Errors = append(report.Errors, fmt.Sprintf("Column '%s' not found in dataset", col))
			continue
		}

		report.Columns = append(report.Columns, col)

		cleanedValues := make([]any, len(values))
		var colErrors, colWarnings []string

		for i, value := range values {
			res := v.Validate(value, rules[col]...)
			if res.Valid {
				cleanedValues[i] = res.Value
			} else {
				cleanedValues[i] = value
				colErrors = append(colErrors, fmt.Sprintf("Row %d: %s", i+1, strings.Join(res.ErrorMessages(), ", ")))
			}
			for _, msg := range res.WarningMessages() {
				colWarnings = append(colWarnings, fmt.Sprintf("Row %d: %s", i+1, msg))
			}
		}

		cleaned[col] = cleanedValues
		for _, e := range colErrors {
			report.Errors = append(report.Errors, fmt.Sprintf("%s - %s", col, e))
		}
		for _, w := range colWarnings {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s - %s", col, w))
		}
	}

	if len(report.Errors) > 0 {
		report.Actions = append(report.Actions, fmt.Sprintf("Dataset contains %d validation errors", len(report.Errors)))
	}

	report.FinalRows = rowCount
	report.Success = len(report.Errors) == 0
	return cleaned, report
}

func cellString(cell any) string {
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprint(cell)
}
