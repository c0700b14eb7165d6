package timeframe

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/exactas-tools/cal2org/internal/lexicon"
)

// reTriple splits a single-date expression into its three tokens.
var reTriple = regexp.MustCompile(`(\p{L}+) (\d{1,2}) de (\p{L}+)`)

// DateParseError reports a date expression that survived extraction and
// token correction but could not be parsed into a calendar date.
type DateParseError struct {
	Text string
	Err  error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("cannot parse date from %q: %v", e.Text, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// Resolver converts single-date expressions to calendar dates. The year is
// fixed at construction so runs are reproducible in tests.
type Resolver struct {
	year int
	cfg  *dateparser.Configuration
}

// NewResolver returns a Resolver that interprets expressions in Spanish
// with the given year as the implied year.
func NewResolver(year int) *Resolver {
	return &Resolver{
		year: year,
		cfg: &dateparser.Configuration{
			Languages:   []string{"es"},
			CurrentTime: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// Year returns the resolver's implied year.
func (r *Resolver) Year() int {
	return r.year
}

// Resolve parses an expression of the form "day-name day-number de
// month-name" into a calendar date. Day and month tokens are corrected for
// typos before parsing.
func (r *Resolver) Resolve(expr string) (time.Time, error) {
	groups := reTriple.FindStringSubmatch(expr)
	if groups == nil {
		return time.Time{}, fmt.Errorf("%w in %q", ErrNoDateFound, expr)
	}
	dayName, dayNumber, monthName := groups[1], groups[2], groups[3]

	dayName, err := lexicon.CorrectDay(dayName)
	if err != nil {
		return time.Time{}, fmt.Errorf("resolving %q: %w", expr, err)
	}
	monthName, err = lexicon.CorrectMonth(monthName)
	if err != nil {
		return time.Time{}, fmt.Errorf("resolving %q: %w", expr, err)
	}

	phrase := strings.Join([]string{dayName, dayNumber, monthName}, " ")
	dt, err := dateparser.Parse(r.cfg, phrase)
	if err != nil {
		return time.Time{}, &DateParseError{Text: expr, Err: err}
	}

	return dt.Time, nil
}

// ResolveMatch resolves all dates carried by an extracted match. For a
// Single match end equals start.
func (r *Resolver) ResolveMatch(m Match) (start, end time.Time, err error) {
	start, err = r.Resolve(m.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !m.IsRange() {
		return start, start, nil
	}
	end, err = r.Resolve(m.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
