// Package money renders monetary amounts, percentages and rounded cents
// for reports.
//
// Formatting is locale-aware through golang.org/x/text, defaulting to US
// English with a dollar symbol: thousands are grouped, currency keeps two
// decimals and negative amounts use accounting parentheses.
//
//	money.Currency(1234.5)   // "$1,234.50"
//	money.Currency(-1234.5)  // "($1,234.50)"
//	money.Percent(0.0825)    // "8.25%"
//
// A custom Formatter changes the symbol or locale without any package
// state:
//
//	f := money.NewFormatter(money.WithSymbol("€"), money.WithLanguage(language.German))
//	f.Currency(1234.5) // "€1.234,50"
package money
