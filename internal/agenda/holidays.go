package agenda

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/exactas-tools/cal2org/internal/lexicon"
	"github.com/exactas-tools/cal2org/internal/logger"
	"github.com/exactas-tools/cal2org/internal/scraper"
)

// invalidDateStamp is emitted for holiday rows whose date cell cannot be
// interpreted. The row is still listed.
const invalidDateStamp = "Fecha inválida"

// WriteHolidays writes the FERIADOS section from the page's holiday table.
func (p *Processor) WriteHolidays(w io.Writer, rows []scraper.HolidayRow) {
	fmt.Fprintln(w, "** FERIADOS")
	for _, row := range rows {
		p.writeHoliday(w, row)
	}
}

func (p *Processor) writeHoliday(w io.Writer, row scraper.HolidayRow) {
	dayName, err := lexicon.CorrectDay(row.DayName)
	if err != nil {
		logger.Warn("uncorrectable day name in holiday row", logger.Fields{
			"holiday": row.Name,
			"token":   row.DayName,
		})
		dayName = row.DayName
	}

	condition := row.Condition
	if condition == "" {
		condition = "No especificada en el sitio web"
	}

	dayNumber, monthName, stamp := "", "", invalidDateStamp

	// Date cells read "23 de abril"; the month may carry typos.
	if before, after, found := strings.Cut(row.DateText, "de"); found {
		dayNumber = strings.TrimSpace(before)
		monthName = strings.TrimSpace(after)
		if corrected, err := lexicon.CorrectMonth(monthName); err == nil {
			monthName = corrected
			if num, ok := lexicon.MonthNumber(corrected); ok && dayNumber != "" {
				stamp = fmt.Sprintf("%d-%s-%s", p.Year(), num, zeroPad(dayNumber))
			}
		}
	}
	if stamp == invalidDateStamp {
		logger.Warn("malformed holiday date cell", logger.Fields{
			"holiday": row.Name,
			"date":    row.DateText,
		})
	}

	fmt.Fprintf(w, "*** Feriado: %s (%s %s de %s)\n", row.Name, dayName, dayNumber, monthName)
	fmt.Fprintf(w, "<%s>\n", stamp)
	fmt.Fprintf(w, "Condición: %s.\n", condition)
}

// zeroPad left-pads a day number to two digits.
func zeroPad(day string) string {
	if len(day) == 1 {
		return "0" + day
	}
	return day
}

// ScienceWeekSource supplies the date blurb following a science-week
// title block. Implemented by the scraper.
type ScienceWeekSource interface {
	ScienceWeekText(name string) (string, error)
}

var reDayNumbers = regexp.MustCompile(`\d+`)

// WriteScienceWeeks writes the SEMANAS DE LAS CIENCIAS section. Weeks
// whose block or date text is missing are reported and skipped.
func (p *Processor) WriteScienceWeeks(w io.Writer, src ScienceWeekSource, names []string) {
	fmt.Fprintln(w, "** SEMANAS DE LAS CIENCIAS")
	for _, name := range names {
		if err := p.writeScienceWeek(w, src, name); err != nil {
			logger.Warn("skipping science week", logger.Fields{
				"week":   name,
				"reason": err.Error(),
			})
		}
	}
}

// writeScienceWeek parses a blurb like "13, 14 y 15 de mayo": the day
// numbers precede the month word; the first and last become the range.
func (p *Processor) writeScienceWeek(w io.Writer, src ScienceWeekSource, name string) error {
	text, err := src.ScienceWeekText(name)
	if err != nil {
		return err
	}

	lowered := strings.ToLower(text)
	for _, month := range lexicon.Months {
		idx := strings.Index(lowered, month)
		if idx < 0 {
			continue
		}

		days := reDayNumbers.FindAllString(text[:idx], -1)
		if len(days) == 0 {
			return fmt.Errorf("no day numbers before month name in %q", text)
		}
		first, err := strconv.Atoi(days[0])
		if err != nil {
			return fmt.Errorf("bad day number %q in %q", days[0], text)
		}
		last, err := strconv.Atoi(days[len(days)-1])
		if err != nil {
			return fmt.Errorf("bad day number %q in %q", days[len(days)-1], text)
		}

		num, _ := lexicon.MonthNumber(month)
		monthNumber, _ := strconv.Atoi(num)
		start := time.Date(p.Year(), time.Month(monthNumber), first, 0, 0, 0, 0, time.UTC)
		end := time.Date(p.Year(), time.Month(monthNumber), last, 0, 0, 0, 0, time.UTC)

		fmt.Fprintf(w, "*** %s\n", name)
		fmt.Fprintf(w, "<%s>-<%s>\n", start.Format("2006-01-02"), end.Format("2006-01-02"))
		return nil
	}
	return fmt.Errorf("no month name found in %q", text)
}
