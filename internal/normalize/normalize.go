// Package normalize parses locale-formatted amounts and multi-format dates
// into typed values. Parsing is deterministic: results never depend on the
// ambient locale of the host.
package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrAmount marks a cell whose residue after cleanup is not a number.
// Callers treat it as a zero contribution, never as a fatal condition.
var ErrAmount = errors.New("not a numeric amount")

// currencyMarkers are stripped from amount text before parsing.
var currencyMarkers = []string{"R$", "US$", "$", " "}

// dateFormats is the ordered list of accepted date layouts. First match wins.
var dateFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// ParseAmount converts an amount cell to a decimal. When localeFormatted,
// the text uses Brazilian separators ("1.234,56"): periods are thousands
// separators and the comma is the decimal mark. Otherwise separators are left
// as-is and the text must already be machine-readable.
func ParseAmount(text string, localeFormatted bool) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	for _, m := range currencyMarkers {
		s = strings.ReplaceAll(s, m, "")
	}
	s = strings.ReplaceAll(s, " ", "")

	if localeFormatted {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmount, text)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmount, text)
	}
	return d, nil
}

// ParseDate converts a date cell to a calendar day at midnight UTC. Returns
// false when no known layout matches.
func ParseDate(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err != nil {
			continue
		}
		return Day(t), true
	}
	return time.Time{}, false
}

// Day truncates a time to its calendar day at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
