// Package format holds the display formatters applied to raw cell values.
package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency renders numeric strings as a currency amount with locale-aware
// digit grouping. The configuration is owned by the caller; there is no
// package-level state to mutate.
type Currency struct {
	symbol  string
	printer *message.Printer
}

// NewCurrency creates a formatter for the given symbol and locale.
func NewCurrency(symbol string, tag language.Tag) Currency {
	return Currency{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Format returns the formatted amount, or the raw value unchanged when it
// does not parse as a number. It never panics.
func (c Currency) Format(raw string) string {
	normalized := strings.NewReplacer(",", "", " ", "").Replace(strings.TrimSpace(raw))
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return raw
	}
	return c.symbol + c.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
