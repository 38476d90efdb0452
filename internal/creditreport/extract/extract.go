// Package extract turns loosely typed bureau values into safe scalars.
//
// Every function is total: malformed input yields "absent" (false, nil) or a
// documented fallback, never an error or a panic.
package extract

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"creditguard/internal/creditreport/models"
)

// DefaultCurrency is used when a monetary object does not name its currency.
const DefaultCurrency = "USD"

// Amount returns a finite number from a bare number or from an
// {amount, currency} object whose amount is numeric or a numeric string.
// Anything else, including NaN and infinities, is absent.
func Amount(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case map[string]any:
		return amountField(x["amount"])
	default:
		return number(x)
	}
}

func amountField(v any) (float64, bool) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	}
	return number(v)
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	}
	return 0, false
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// AmountOr returns Amount(v) or fallback when absent.
func AmountOr(v any, fallback float64) float64 {
	if f, ok := Amount(v); ok {
		return f
	}
	return fallback
}

// Money returns the amount (0 when absent) and the currency named by an
// {amount, currency} object, defaulting to DefaultCurrency.
func Money(v any) models.Money {
	m := models.Money{Amount: AmountOr(v, 0), Currency: DefaultCurrency}
	if obj, ok := v.(map[string]any); ok {
		if c, ok := obj["currency"].(string); ok && strings.TrimSpace(c) != "" {
			m.Currency = strings.ToUpper(strings.TrimSpace(c))
		}
	}
	return m
}

// Int returns a count rounded to the nearest integer. Unlike Amount it also
// accepts numeric strings, which some bureaus use for counts.
func Int(v any) (int, bool) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		v = f
	}
	f, ok := Amount(v)
	if !ok {
		return 0, false
	}
	return int(math.Round(f)), true
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"2006-01",
	"01/02/2006",
	"2006/01/02",
}

// ParseDate reads a millisecond Unix timestamp or an ISO-8601 style string.
func ParseDate(v any) (time.Time, bool) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
		return time.Time{}, false
	}
	ms, ok := Amount(v)
	if !ok {
		return time.Time{}, false
	}
	if _, isObject := v.(map[string]any); isObject {
		return time.Time{}, false
	}
	if ms > maxEpochMillis || ms < -maxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}

// maxEpochMillis bounds epoch-millisecond dates to the ECMAScript date range
// (±100,000,000 days).
const maxEpochMillis = 8.64e15

// Date is ParseDate with now as the fallback for missing or unparseable input.
// now is supplied by the caller so results stay reproducible.
func Date(v any, now time.Time) time.Time {
	if t, ok := ParseDate(v); ok {
		return t
	}
	return now
}

// OptionalDate is ParseDate with omission as the fallback.
func OptionalDate(v any) *time.Time {
	if t, ok := ParseDate(v); ok {
		return &t
	}
	return nil
}
