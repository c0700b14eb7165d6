// Package timeframe extracts Spanish date and date-range expressions from
// free text and resolves them to calendar dates.
package timeframe

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Kind tags the shape of an extracted expression.
type Kind int

const (
	// Single is one date, e.g. "lunes 15 de marzo".
	Single Kind = iota
	// SameMonthRange is a range within one month, e.g.
	// "lunes 10 al viernes 15 de marzo".
	SameMonthRange
	// CrossMonthRange is a range spanning months, e.g.
	// "lunes 10 de marzo al martes 28 de abril".
	CrossMonthRange
)

// Match is an extracted date or timeframe expression. Start is always a
// full month-qualified expression; End is empty for Single matches.
type Match struct {
	Kind  Kind
	Start string
	End   string
}

// IsRange reports whether the match carries a start and an end date.
func (m Match) IsRange() bool {
	return m.Kind != Single
}

// ErrNoDateFound indicates that no date or timeframe pattern matched.
var ErrNoDateFound = errors.New("no date or timeframe found")

// The page uses accented Spanish day and month names, so token classes
// must cover Unicode letters rather than \w.
var (
	reSingle     = regexp.MustCompile(`\p{L}+ \d{1,2} de \p{L}+`)
	reSameMonth  = regexp.MustCompile(`(\p{L}+ \d{1,2}) al (\p{L}+ \d{1,2} de \p{L}+)`)
	reCrossMonth = regexp.MustCompile(`(\p{L}+ \d{1,2} de \p{L}+) al (\p{L}+ \d{1,2} de \p{L}+)`)
)

// matchers are tried in fixed priority order; the first success wins.
// Most specific pattern first: a cross-month range contains a valid
// single-date substring, and a same-month range contains one at its end,
// so trying the single pattern earlier would misread every range.
var matchers = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{CrossMonthRange, reCrossMonth},
	{SameMonthRange, reSameMonth},
	{Single, reSingle},
}

// Extract finds the date or timeframe expression in a text fragment.
// Returns ErrNoDateFound (wrapped with the fragment) if no pattern matches.
func Extract(fragment string) (Match, error) {
	for _, m := range matchers {
		groups := m.re.FindStringSubmatch(fragment)
		if groups == nil {
			continue
		}

		switch m.kind {
		case Single:
			return Match{Kind: Single, Start: groups[0]}, nil
		case SameMonthRange:
			// The start half omits the month; borrow the trailing
			// "de <month>" words from the end expression.
			end := groups[2]
			words := strings.Fields(end)
			month := strings.Join(words[len(words)-2:], " ")
			return Match{
				Kind:  SameMonthRange,
				Start: groups[1] + " " + month,
				End:   end,
			}, nil
		case CrossMonthRange:
			return Match{Kind: CrossMonthRange, Start: groups[1], End: groups[2]}, nil
		}
	}

	return Match{}, fmt.Errorf("%w in %q", ErrNoDateFound, fragment)
}
