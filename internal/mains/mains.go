// Package mains derives the local electrical mains frequency (50 or 60 Hz)
// from the system timezone. Call recordings made near unbalanced wiring pick
// up hum at the mains fundamental, so the enhancement pipeline places its
// hum high-pass cutoff just above whichever frequency applies locally.
package mains

import (
	"strings"

	tz "github.com/medama-io/go-timezone-country"
	"github.com/thlib/go-timezone-local/tzlocal"
)

// Frequency returns the local mains frequency in Hz. Detection failures and
// ambiguous timezones fall back to 50Hz, the more common value worldwide.
func Frequency() int {
	timezone, err := tzlocal.RuntimeTZ()
	if err != nil {
		return 50
	}
	return FrequencyForTimezone(timezone)
}

// HumCutoffHz returns the high-pass cutoff used to attenuate mains hum on the
// local grid: one and a half times the fundamental, so the pole sits clear of
// the hum while leaving the voice band untouched.
func HumCutoffHz() float64 {
	return float64(Frequency()) * 1.5
}

// FrequencyForTimezone returns the mains frequency for an IANA timezone.
// Exported so tests can pin the timezone.
func FrequencyForTimezone(timezone string) int {
	// UTC and friends have no country association
	if timezone == "UTC" || timezone == "GMT" || strings.HasPrefix(timezone, "Etc/") {
		return 50
	}

	tzMap, err := tz.NewTimezoneCountryMap()
	if err != nil {
		return 50
	}

	country, err := tzMap.GetCountry(timezone)
	if err != nil {
		return 50
	}

	return frequencyForCountry(country)
}

func frequencyForCountry(country string) int {
	// Japan is split 50/60Hz by region; the more populous Tokyo side is 50Hz
	if country == "Japan" {
		return 50
	}

	if hz60Countries[country] {
		return 60
	}
	return 50
}

// hz60Countries lists the countries on 60Hz grids; everywhere else is 50Hz.
// Source: https://en.wikipedia.org/wiki/Mains_electricity_by_country
var hz60Countries = map[string]bool{
	// Americas
	"United States":       true,
	"Canada":              true,
	"Mexico":              true,
	"Belize":              true,
	"Costa Rica":          true,
	"El Salvador":         true,
	"Guatemala":           true,
	"Honduras":            true,
	"Nicaragua":           true,
	"Panama":              true,
	"Bahamas":             true,
	"Barbados":            true,
	"Cayman Islands":      true,
	"Cuba":                true,
	"Dominican Republic":  true,
	"Haiti":               true,
	"Jamaica":             true,
	"Puerto Rico":         true,
	"Trinidad and Tobago": true,
	"U.S. Virgin Islands": true,
	"Brazil":              true, // both grids exist; 60Hz predominant
	"Colombia":            true,
	"Ecuador":             true,
	"Guyana":              true,
	"Peru":                true,
	"Suriname":            true,
	"Venezuela":           true,

	// Asia and Pacific
	"South Korea":      true,
	"Taiwan":           true,
	"Philippines":      true,
	"Saudi Arabia":     true,
	"Guam":             true,
	"American Samoa":   true,
	"Marshall Islands": true,
	"Micronesia":       true,
	"Palau":            true,
}
