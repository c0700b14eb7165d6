package lexicon

import (
	"errors"
	"testing"
)

func TestCorrectDay(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{"exact match", "lunes", "lunes", false},
		{"missing accent", "miercoles", "miércoles", false},
		{"missing accent sabado", "sabado", "sábado", false},
		{"doubled letter", "viernnes", "viernes", false},
		{"uppercase input", "LUNES", "lunes", false},
		{"gibberish", "xzqwk", "", true},
		{"empty token", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CorrectDay(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CorrectDay(%q) = %q, expected error", tt.token, got)
				}
				var uerr *UnrecognizedTokenError
				if !errors.As(err, &uerr) {
					t.Errorf("CorrectDay(%q) error = %v, want UnrecognizedTokenError", tt.token, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CorrectDay(%q) unexpected error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("CorrectDay(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestCorrectMonth(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{"exact match", "marzo", "marzo", false},
		{"doubled letter", "marzzo", "marzo", false},
		{"trailing typo", "juniio", "junio", false},
		{"setiembre variant", "setiembre", "septiembre", false},
		{"capitalized", "Abril", "abril", false},
		{"gibberish", "qqqqqq", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CorrectMonth(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CorrectMonth(%q) = %q, expected error", tt.token, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("CorrectMonth(%q) unexpected error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("CorrectMonth(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestMonthNumber(t *testing.T) {
	tests := []struct {
		month string
		want  string
		ok    bool
	}{
		{"enero", "01", true},
		{"septiembre", "09", true},
		{"diciembre", "12", true},
		{"Marzo", "03", true},
		{"unknown", "", false},
	}

	for _, tt := range tests {
		got, ok := MonthNumber(tt.month)
		if ok != tt.ok || got != tt.want {
			t.Errorf("MonthNumber(%q) = (%q, %v), want (%q, %v)", tt.month, got, ok, tt.want, tt.ok)
		}
	}
}
