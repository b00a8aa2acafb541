// Package formats provides number, currency, percentage, date, and duration
// formatting for chart labels and annotations.
package formats

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Number formats v with a fixed number of decimals, grouping the integer part
// by threes with thousandsSep.
//
//	Number(1234567, 2, ",") == "1,234,567.00"
func Number(v float64, decimals int, thousandsSep string) string {
	return NumberSep(v, decimals, thousandsSep, ".", "", "")
}

// NumberSep is Number with a custom decimal separator and an optional prefix
// and suffix. The sign is placed before the prefix: -1234.5 with prefix "$"
// renders as "-$1,234.50".
func NumberSep(v float64, decimals int, thousandsSep, decimalSep, prefix, suffix string) string {
	negative := math.Signbit(v) && v != 0
	abs := math.Abs(v)

	if decimals < 0 {
		decimals = 0
	}
	fixed := strconv.FormatFloat(abs, 'f', decimals, 64)

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(prefix)
	b.WriteString(group(intPart, thousandsSep))
	if fracPart != "" {
		b.WriteString(decimalSep)
		b.WriteString(fracPart)
	}
	b.WriteString(suffix)
	return b.String()
}

// group inserts sep between every group of three digits, right to left.
func group(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Percentage formats a fraction as a percentage: 0.1234 with one decimal
// renders as "12.3%".
func Percentage(v float64, decimals int) string {
	return NumberSep(v*100, decimals, ",", ".", "", "%")
}

// currencySymbols maps ISO currency codes to display symbols.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CHF": "CHF",
	"CNY": "¥",
}

// Currency formats v with the symbol for the given ISO code and two decimals.
// Unknown codes are an error listing the supported set.
func Currency(v float64, code string) (string, error) {
	symbol, ok := currencySymbols[code]
	if !ok {
		codes := make([]string, 0, len(currencySymbols))
		for c := range currencySymbols {
			codes = append(codes, c)
		}
		sort.Strings(codes)
		return "", fmt.Errorf("unknown currency code %q: supported codes are %s", code, strings.Join(codes, ", "))
	}
	return NumberSep(v, 2, ",", ".", symbol, ""), nil
}

// dateLayouts are the accepted input layouts for Date, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// Date parses an ISO-ish date string and renders it with a strftime-style
// pattern:
//
//	Date("2024-01-15", "%B %d, %Y") == "January 15, 2024"
func Date(value, pattern string) (string, error) {
	t, err := ParseDate(value)
	if err != nil {
		return "", err
	}
	return Time(t, pattern)
}

// ParseDate parses value against the accepted date layouts.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q: expected a layout like 2006-01-02, 2006-01-02 15:04:05, RFC 3339, or 01/02/2006", value)
}

// strftime verb to reference-time layout. Verbs without a direct layout
// (such as %j) are computed in Time.
var strftimeLayouts = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'B': "January",
	'b': "Jan",
	'A': "Monday",
	'a': "Mon",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
}

// Time renders an already-structured time with a strftime-style pattern.
// Unsupported verbs are an error naming the verb.
func Time(t time.Time, pattern string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(pattern) {
			return "", fmt.Errorf("date pattern %q ends with a bare %%", pattern)
		}
		verb := pattern[i]
		switch verb {
		case '%':
			b.WriteByte('%')
		case 'j':
			fmt.Fprintf(&b, "%03d", t.YearDay())
		default:
			layout, ok := strftimeLayouts[verb]
			if !ok {
				return "", fmt.Errorf("unsupported verb %%%c in date pattern %q", verb, pattern)
			}
			b.WriteString(t.Format(layout))
		}
	}
	return b.String(), nil
}

// Abbreviated formats large numbers with K/M/B/T suffixes: 1530000 with one
// decimal renders as "1.5M". Values under a thousand fall back to Number.
func Abbreviated(v float64, decimals int) string {
	abs := math.Abs(v)
	switch {
	case abs < 1e3:
		return Number(v, 0, ",")
	case abs < 1e6:
		return strconv.FormatFloat(v/1e3, 'f', decimals, 64) + "K"
	case abs < 1e9:
		return strconv.FormatFloat(v/1e6, 'f', decimals, 64) + "M"
	case abs < 1e12:
		return strconv.FormatFloat(v/1e9, 'f', decimals, 64) + "B"
	default:
		return strconv.FormatFloat(v/1e12, 'f', decimals, 64) + "T"
	}
}

// Duration renders d as a human-readable duration. The short style yields a
// single coarse unit ("3h"); any other style yields the long form with the
// two most significant units ("3 hours, 20 minutes").
func Duration(d time.Duration, style string) string {
	seconds := int(d.Seconds())
	if seconds < 0 {
		seconds = -seconds
	}

	if style == "short" {
		switch {
		case seconds < 60:
			return fmt.Sprintf("%ds", seconds)
		case seconds < 3600:
			return fmt.Sprintf("%dm", seconds/60)
		case seconds < 86400:
			return fmt.Sprintf("%dh", seconds/3600)
		default:
			return fmt.Sprintf("%dd", seconds/86400)
		}
	}

	switch {
	case seconds < 60:
		return fmt.Sprintf("%d seconds", seconds)
	case seconds < 3600:
		minutes, rest := seconds/60, seconds%60
		if rest == 0 {
			return fmt.Sprintf("%d minutes", minutes)
		}
		return fmt.Sprintf("%d minutes, %d seconds", minutes, rest)
	case seconds < 86400:
		hours, rest := seconds/3600, (seconds%3600)/60
		if rest == 0 {
			return fmt.Sprintf("%d hours", hours)
		}
		return fmt.Sprintf("%d hours, %d minutes", hours, rest)
	default:
		days, rest := seconds/86400, (seconds%86400)/3600
		if rest == 0 {
			return fmt.Sprintf("%d days", days)
		}
		return fmt.Sprintf("%d days, %d hours", days, rest)
	}
}
