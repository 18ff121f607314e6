// Package ingest - Date normalization and week bucketing
package ingest

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// brDateLayout is the normalized date format used throughout the report
const brDateLayout = "02/01/2006"

// serialEpochOffset is the day count between the spreadsheet serial
// epoch (1899-12-30) and the Unix epoch.
const serialEpochOffset = 25569

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeDate converts a raw date cell to DD/MM/YYYY.
// Accepts a spreadsheet serial number, an ISO YYYY-MM-DD string, or any
// other string which is passed through and assumed already DD/MM/YYYY.
func NormalizeDate(raw interface{}) (string, bool) {
	switch v := raw.(type) {
	case float64:
		if v == 0 {
			return "", false
		}
		return fromSerial(v), true
	case int:
		if v == 0 {
			return "", false
		}
		return fromSerial(float64(v)), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return "", false
		}
		if isoDate.MatchString(s) {
			parts := strings.SplitN(s, "-", 3)
			return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0]), true
		}
		return s, true
	}
	return "", false
}

// fromSerial converts a spreadsheet serial date to DD/MM/YYYY.
// The serial is rounded to whole seconds before conversion.
func fromSerial(serial float64) string {
	secs := math.Round((serial - serialEpochOffset) * 86400)
	return time.Unix(int64(secs), 0).UTC().Format(brDateLayout)
}

// ParseBRDate parses a DD/MM/YYYY string
func ParseBRDate(s string) (time.Time, error) {
	return time.Parse(brDateLayout, s)
}

// WeekStart returns the Monday starting the week containing the date,
// formatted DD/MM/YYYY. Sunday rolls back six days, Monday zero.
// Unparseable dates pass through unchanged and bucket under their
// literal value.
func WeekStart(dateStr string) string {
	t, err := ParseBRDate(dateStr)
	if err != nil {
		return dateStr
	}
	diff := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		diff = 6
	}
	return t.AddDate(0, 0, -diff).Format(brDateLayout)
}
