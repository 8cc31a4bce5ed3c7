// Package money renders integer minor-unit amounts as locale-aware display
// strings. Amounts are never handled as floats; the exponent shift is done
// with decimal arithmetic and everything after that is string assembly.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type currencyInfo struct {
	symbol   string
	exponent int32
}

var currencies = map[string]currencyInfo{
	"USD": {symbol: "$", exponent: 2},
	"EUR": {symbol: "€", exponent: 2},
	"GBP": {symbol: "£", exponent: 2},
	"UAH": {symbol: "₴", exponent: 2},
}

type localeInfo struct {
	decimalSep  string
	groupSep    string
	symbolFirst bool
	symbolGap   bool
}

var locales = map[string]localeInfo{
	"en": {decimalSep: ".", groupSep: ",", symbolFirst: true},
	"uk": {decimalSep: ",", groupSep: " ", symbolGap: true},
}

// Format converts an amount in minor units ("1999" cents) to a display
// string ("$19.99"). Unknown currencies and locales are errors, not panics.
func Format(minor int64, currencyCode, locale string) (string, error) {
	cur, ok := currencies[strings.ToUpper(strings.TrimSpace(currencyCode))]
	if !ok {
		return "", fmt.Errorf("unknown currency %q", currencyCode)
	}
	loc, ok := locales[normalizeLocale(locale)]
	if !ok {
		return "", fmt.Errorf("unknown locale %q", locale)
	}

	amount := decimal.New(minor, -cur.exponent)
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(cur.exponent)

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	var b strings.Builder
	b.WriteString(groupDigits(intPart, loc.groupSep))
	if fracPart != "" {
		b.WriteString(loc.decimalSep)
		b.WriteString(fracPart)
	}

	formatted := b.String()
	if loc.symbolFirst {
		formatted = cur.symbol + formatted
	} else if loc.symbolGap {
		formatted = formatted + " " + cur.symbol
	} else {
		formatted = formatted + cur.symbol
	}

	if negative {
		formatted = "-" + formatted
	}
	return formatted, nil
}

// normalizeLocale reduces BCP 47 tags ("uk-UA") to the base language.
func normalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		locale = locale[:i]
	}
	return locale
}

func groupDigits(digits, sep string) string {
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
