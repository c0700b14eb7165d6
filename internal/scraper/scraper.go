package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// CalendarURL is the default academic calendar page.
	CalendarURL = "https://exactas.uba.ar/calendario-academico/"
	UserAgent   = "cal2org/1.0 (github.com/exactas-tools/cal2org)"
	Timeout     = 30 * time.Second
)

// ErrSectionNotFound indicates a configured header or block has no
// matching element in the page.
var ErrSectionNotFound = errors.New("section not found in page")

// Scraper fetches and parses the academic calendar page.
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a Scraper for the given URL. An empty URL selects the
// default calendar page.
func New(url string) *Scraper {
	if url == "" {
		url = CalendarURL
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// URL returns the page URL this scraper fetches.
func (s *Scraper) URL() string {
	return s.url
}

// Fetch retrieves the calendar page and parses it. A single attempt is
// made; any network or HTTP failure is terminal for the run.
func (s *Scraper) Fetch() (*Document, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return Parse(resp.Body)
}

// Document is a parsed calendar page.
type Document struct {
	doc *goquery.Document
}

// Parse builds a Document from raw HTML.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &Document{doc: doc}, nil
}

var headerTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// SectionLines returns the body text of the section starting at the first
// header whose text begins with header, flattened to one line per block.
// The section ends at the next header element.
func (d *Document) SectionLines(header string) ([]string, error) {
	var start *goquery.Selection
	d.doc.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.HasPrefix(strings.TrimSpace(sel.Text()), header) {
			start = sel
			return false
		}
		return true
	})
	if start == nil {
		return nil, fmt.Errorf("%w: header %q", ErrSectionNotFound, header)
	}

	var lines []string
	for sel := start.Next(); sel.Length() > 0; sel = sel.Next() {
		if headerTags[goquery.NodeName(sel)] {
			break
		}
		lines = append(lines, blockLines(sel)...)
	}
	return lines, nil
}

// blockLines flattens one sibling element into logical text lines: one per
// contained paragraph or list item, or the element's own text split on
// newlines when it has neither.
func blockLines(sel *goquery.Selection) []string {
	var lines []string
	add := func(text string) {
		if text = strings.TrimSpace(text); text != "" {
			lines = append(lines, text)
		}
	}

	blocks := sel.Find("p, li")
	if blocks.Length() == 0 {
		for _, part := range strings.Split(sel.Text(), "\n") {
			add(part)
		}
		return lines
	}
	blocks.Each(func(_ int, b *goquery.Selection) {
		add(b.Text())
	})
	return lines
}

// HolidayRow is one row of the page's holiday table.
type HolidayRow struct {
	DayName   string // e.g. "miércoles", possibly misspelled
	DateText  string // e.g. "23 de abril"
	Name      string
	Condition string
}

// HolidayRows extracts the holiday rows from the last table on the page.
func (d *Document) HolidayRows() ([]HolidayRow, error) {
	tables := d.doc.Find("table")
	if tables.Length() == 0 {
		return nil, fmt.Errorf("%w: holiday table", ErrSectionNotFound)
	}

	var rows []HolidayRow
	tables.Last().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 4 {
			return // header row or filler
		}
		cell := func(i int) string {
			return strings.TrimSpace(cells.Eq(i).Text())
		}
		rows = append(rows, HolidayRow{
			DayName:   cell(0),
			DateText:  cell(1),
			Name:      cell(2),
			Condition: cell(3),
		})
	})
	return rows, nil
}

// ScienceWeekText returns the free text immediately following the <strong>
// tag whose text equals name. That text carries the week's day numbers and
// month.
func (d *Document) ScienceWeekText(name string) (string, error) {
	var text string
	found := false
	d.doc.Find("strong").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.TrimSpace(sel.Text()) != name {
			return true
		}
		found = true
		for n := sel.Nodes[0].NextSibling; n != nil; n = n.NextSibling {
			if n.Type == html.TextNode {
				if t := strings.TrimSpace(n.Data); t != "" {
					text = t
					break
				}
			}
		}
		return false
	})

	if !found {
		return "", fmt.Errorf("%w: block %q", ErrSectionNotFound, name)
	}
	if text == "" {
		return "", fmt.Errorf("no date text after block %q", name)
	}
	return text, nil
}
