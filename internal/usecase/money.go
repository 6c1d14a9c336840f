package usecase

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// newPrinter builds a localized number printer from a BCP 47 locale such as
// "es-CO". language.Make falls back to a sane default on malformed input.
func newPrinter(locale string) *message.Printer {
	return message.NewPrinter(language.Make(locale))
}

// formatMoney renders an amount with the locale's digit grouping, e.g.
// 50000 -> "$50.000" under es-CO.
func formatMoney(p *message.Printer, v float64) string {
	return "$" + p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// formatQuantity renders a quantity without trailing zeros: 5 -> "5",
// 2.5 -> "2.5".
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
