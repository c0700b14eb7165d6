// Package lexicon holds the fixed Spanish day/month vocabularies and a
// fuzzy corrector that recovers from the spelling variation found on the
// calendar page.
package lexicon

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Days lists the valid Spanish day names in week order.
var Days = []string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"}

// monthNumbers maps valid Spanish month names to their two-digit codes.
var monthNumbers = map[string]string{
	"enero":      "01",
	"febrero":    "02",
	"marzo":      "03",
	"abril":      "04",
	"mayo":       "05",
	"junio":      "06",
	"julio":      "07",
	"agosto":     "08",
	"septiembre": "09",
	"octubre":    "10",
	"noviembre":  "11",
	"diciembre":  "12",
}

// Months lists the valid month names in calendar order.
var Months = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// closeMatchCutoff is the minimum similarity ratio for a usable match.
// Matches Python difflib.get_close_matches' default cutoff.
const closeMatchCutoff = 0.6

// UnrecognizedTokenError reports a token with no usable vocabulary match.
type UnrecognizedTokenError struct {
	Token string
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unrecognized token %q: no close vocabulary match", e.Token)
}

// CorrectDay returns the closest valid day name for a possibly misspelled
// token, or an UnrecognizedTokenError if nothing is close enough.
func CorrectDay(token string) (string, error) {
	return closestMatch(token, Days)
}

// CorrectMonth returns the closest valid month name for a possibly
// misspelled token, or an UnrecognizedTokenError if nothing is close enough.
func CorrectMonth(token string) (string, error) {
	return closestMatch(token, Months)
}

// MonthNumber returns the two-digit code for a valid month name.
func MonthNumber(month string) (string, bool) {
	n, ok := monthNumbers[strings.ToLower(month)]
	return n, ok
}

// closestMatch returns the single highest-similarity candidate for token.
// Similarity is the longest-matching-subsequence ratio over runes.
func closestMatch(token string, candidates []string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", &UnrecognizedTokenError{Token: token}
	}

	lowered := strings.ToLower(token)
	best := ""
	bestRatio := 0.0

	for _, candidate := range candidates {
		m := difflib.NewMatcher(strings.Split(lowered, ""), strings.Split(candidate, ""))
		if r := m.Ratio(); r > bestRatio {
			bestRatio = r
			best = candidate
		}
	}

	if bestRatio < closeMatchCutoff {
		return "", &UnrecognizedTokenError{Token: token}
	}
	return best, nil
}
