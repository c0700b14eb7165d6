package scraper

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func loadFixture(t *testing.T) *Document {
	t.Helper()

	data, err := os.ReadFile("../../testdata/fixtures/sample_calendar.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	doc, err := Parse(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestDocument_SectionLines(t *testing.T) {
	doc := loadFixture(t)

	lines, err := doc.SectionLines("PRIMER CUATRIMESTRE")
	if err != nil {
		t.Fatalf("SectionLines failed: %v", err)
	}

	want := []string{
		"Inscripción a materias: lunes 10 al viernes 14 de marzo",
		"Inicio de clases: lunes 17 de marzo",
		"Semana de Exámenes de cuatrimestre: lunes 7 al viernes 11 de julio",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDocument_SectionLines_StopsAtNextHeader(t *testing.T) {
	doc := loadFixture(t)

	lines, err := doc.SectionLines("EXÁMENES FINALES")
	if err != nil {
		t.Fatalf("SectionLines failed: %v", err)
	}

	for _, line := range lines {
		if strings.Contains(line, "Semana de la Física") {
			t.Errorf("section leaked past next header: %q", line)
		}
	}
	if len(lines) != 4 {
		t.Errorf("got %d lines, want 4: %v", len(lines), lines)
	}
}

func TestDocument_SectionLines_NotFound(t *testing.T) {
	doc := loadFixture(t)

	_, err := doc.SectionLines("SEGUNDO CUATRIMESTRE")
	if err == nil {
		t.Fatal("expected error for missing header")
	}
	if !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("error = %v, want ErrSectionNotFound", err)
	}
}

func TestDocument_HolidayRows(t *testing.T) {
	doc := loadFixture(t)

	rows, err := doc.HolidayRows()
	if err != nil {
		t.Fatalf("HolidayRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2: %v", len(rows), rows)
	}

	first := rows[0]
	if first.DayName != "miercoles" {
		t.Errorf("DayName = %q, want %q", first.DayName, "miercoles")
	}
	if first.DateText != "23 de abril" {
		t.Errorf("DateText = %q, want %q", first.DateText, "23 de abril")
	}
	if first.Name != "Día del Libro" {
		t.Errorf("Name = %q, want %q", first.Name, "Día del Libro")
	}
	if first.Condition != "Trasladable" {
		t.Errorf("Condition = %q, want %q", first.Condition, "Trasladable")
	}

	if rows[1].Condition != "" {
		t.Errorf("empty condition cell should stay empty, got %q", rows[1].Condition)
	}
}

func TestDocument_ScienceWeekText(t *testing.T) {
	doc := loadFixture(t)

	text, err := doc.ScienceWeekText("Semana de la Física")
	if err != nil {
		t.Fatalf("ScienceWeekText failed: %v", err)
	}
	if text != "13, 14 y 15 de mayo" {
		t.Errorf("text = %q, want %q", text, "13, 14 y 15 de mayo")
	}

	if _, err := doc.ScienceWeekText("Semana de la Química"); !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("missing block error = %v, want ErrSectionNotFound", err)
	}
}

func TestNew_DefaultURL(t *testing.T) {
	if got := New("").URL(); got != CalendarURL {
		t.Errorf("URL() = %q, want default %q", got, CalendarURL)
	}
	if got := New("https://example.com/cal").URL(); got != "https://example.com/cal" {
		t.Errorf("URL() = %q, want override", got)
	}
}
