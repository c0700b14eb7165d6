package agenda

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/exactas-tools/cal2org/internal/logger"
	"github.com/exactas-tools/cal2org/internal/timeframe"
)

// SectionSource supplies the flattened body lines of a named calendar
// section. Implemented by the scraper.
type SectionSource interface {
	SectionLines(header string) ([]string, error)
}

// Section pairs a section's full header with the short name used in
// entry titles.
type Section struct {
	Header string
	Short  string
}

// examSuffix is the exam-sequence annotation carried across the lines of
// one section. It is set by sentinel lines and applies to every following
// data line until overwritten or the section ends.
type examSuffix int

const (
	noSuffix examSuffix = iota
	firstDate
	secondDate
	thirdDate
)

func (s examSuffix) String() string {
	switch s {
	case firstDate:
		return " (1ra fecha)"
	case secondDate:
		return " (2da fecha)"
	case thirdDate:
		return " (3ra fecha)"
	}
	return ""
}

var sentinels = []struct {
	marker string
	suffix examSuffix
}{
	{"Primera fecha", firstDate},
	{"Segunda fecha", secondDate},
	{"Tercera fecha", thirdDate},
}

// sentinelSuffix reports whether line is an exam-sequence marker.
func sentinelSuffix(line string) (examSuffix, bool) {
	for _, s := range sentinels {
		if strings.Contains(line, s.marker) {
			return s.suffix, true
		}
	}
	return noSuffix, false
}

// Processor drives event extraction across calendar sections and writes
// the resulting Org-mode outline.
type Processor struct {
	resolver *timeframe.Resolver
}

// NewProcessor creates a Processor resolving dates against the given year.
func NewProcessor(year int) *Processor {
	return &Processor{resolver: timeframe.NewResolver(year)}
}

// Year returns the run year of the generated document.
func (p *Processor) Year() int {
	return p.resolver.Year()
}

// FormatStamp formats a date as an Org-mode timestamp, e.g.
// "<2025-06-15 Sun>".
func FormatStamp(t time.Time) string {
	return t.Format("<2006-01-02 Mon>")
}

// WriteAgenda writes the year heading followed by every configured
// section. A missing section header is fatal for the run.
func (p *Processor) WriteAgenda(w io.Writer, src SectionSource, sections []Section) error {
	fmt.Fprintf(w, "* %d\n", p.Year())
	for _, s := range sections {
		if err := p.WriteSection(w, src, s); err != nil {
			return err
		}
	}
	return nil
}

// WriteSection writes one section heading and its event entries. Line
// level failures are reported on stderr and the line is skipped; they do
// not abort the section.
func (p *Processor) WriteSection(w io.Writer, src SectionSource, s Section) error {
	lines, err := src.SectionLines(s.Header)
	if err != nil {
		return fmt.Errorf("section %q: %w", s.Header, err)
	}

	fmt.Fprintf(w, "** %s\n", s.Header)

	suffix := noSuffix
	for _, line := range lines {
		next, err := p.processLine(w, s.Short, line, suffix)
		if err != nil {
			logger.Warn("skipping line", logger.Fields{
				"section": s.Header,
				"line":    line,
				"reason":  err.Error(),
			})
			continue
		}
		suffix = next
	}
	return nil
}

// processLine handles one section line and returns the updated
// exam-suffix state. Sentinel lines update the state and emit nothing.
func (p *Processor) processLine(w io.Writer, short, line string, suffix examSuffix) (examSuffix, error) {
	if s, ok := sentinelSuffix(line); ok {
		return s, nil
	}

	label, dateText, found := strings.Cut(line, ":")
	if !found {
		return suffix, fmt.Errorf("malformed line: missing colon separator")
	}

	m, err := timeframe.Extract(dateText)
	if err != nil {
		return suffix, err
	}
	start, end, err := p.resolver.ResolveMatch(m)
	if err != nil {
		return suffix, err
	}

	title := NormalizeCasing(StripAffixes(label))
	fmt.Fprintf(w, "*** %s %s%s\n", short, title, suffix)
	if m.IsRange() {
		fmt.Fprintf(w, "%s-%s\n", FormatStamp(start), FormatStamp(end))
	} else {
		fmt.Fprintln(w, FormatStamp(start))
	}
	return suffix, nil
}
