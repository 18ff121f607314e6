package ingest

import (
	"testing"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name   string
		raw    interface{}
		want   string
		wantOK bool
	}{
		{"serial number", 45306.0, "15/01/2024", true},
		{"serial with time fraction", 45306.5, "15/01/2024", true},
		{"serial as int", 45306, "15/01/2024", true},
		{"ISO string", "2024-01-17", "17/01/2024", true},
		{"BR string passthrough", "17/01/2024", "17/01/2024", true},
		{"arbitrary string passthrough", "17-01-2024", "17-01-2024", true},
		{"padded string", "  15/01/2024  ", "15/01/2024", true},
		{"empty string", "", "", false},
		{"zero serial", 0.0, "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDate(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeDate(%v) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("NormalizeDate(%v) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"Monday stays", "15/01/2024", "15/01/2024"},
		{"Wednesday rolls back", "17/01/2024", "15/01/2024"},
		{"Saturday rolls back", "20/01/2024", "15/01/2024"},
		{"Sunday rolls back six days", "21/01/2024", "15/01/2024"},
		{"next Monday is a new week", "22/01/2024", "22/01/2024"},
		{"week spanning a month boundary", "01/02/2024", "29/01/2024"},
		{"week spanning a year boundary", "01/01/2025", "30/12/2024"},
		{"unparseable passes through", "not-a-date", "not-a-date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.date); got != tt.want {
				t.Errorf("WeekStart(%s) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}
}
