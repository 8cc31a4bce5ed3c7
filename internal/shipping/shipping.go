// Package shipping classifies checkout destinations into the zones the
// shop ships to and resolves the flat shipping rate per zone.
package shipping

import (
	"fmt"
	"strings"
)

type Zone string

const (
	ZoneEU  Zone = "EU"
	ZoneGB  Zone = "GB"
	ZoneROW Zone = "ROW"
)

// EU member states by ISO 3166-1 alpha-2 code.
var euMembers = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "HR": {}, "CY": {}, "CZ": {},
	"DK": {}, "EE": {}, "FI": {}, "FR": {}, "DE": {}, "GR": {},
	"HU": {}, "IE": {}, "IT": {}, "LV": {}, "LT": {}, "LU": {},
	"MT": {}, "NL": {}, "PL": {}, "PT": {}, "RO": {}, "SK": {},
	"SI": {}, "ES": {}, "SE": {},
}

// Classify maps an ISO 3166-1 alpha-2 country code to a shipping zone.
func Classify(countryCode string) (Zone, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if len(code) != 2 || code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return "", fmt.Errorf("invalid country code %q", countryCode)
	}

	if code == "GB" {
		return ZoneGB, nil
	}
	if _, ok := euMembers[code]; ok {
		return ZoneEU, nil
	}
	return ZoneROW, nil
}

// Flat rates in minor units. Stand-in for external shipping configuration.
var rates = map[Zone]map[string]int64{
	ZoneEU:  {"EUR": 500, "USD": 600, "GBP": 450, "UAH": 25000},
	ZoneGB:  {"EUR": 650, "USD": 750, "GBP": 550, "UAH": 30000},
	ZoneROW: {"EUR": 1200, "USD": 1300, "GBP": 1000, "UAH": 55000},
}

// RateMinor returns the shipping rate for a zone in the given currency.
func RateMinor(zone Zone, currency string) (int64, bool) {
	byCurrency, ok := rates[zone]
	if !ok {
		return 0, false
	}
	rate, ok := byCurrency[strings.ToUpper(currency)]
	return rate, ok
}
