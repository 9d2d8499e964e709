package repository

import (
	"fmt"
	"strings"
	"time"
)

// The helpers below render dates the way the Postgres to_char patterns used
// by PostgresRepository do, so that both backends produce identical text.

// formatMonthDayYear renders to_char(d, 'MM/DD/YYYY').
func formatMonthDayYear(t time.Time) string {
	return t.Format("01/02/2006")
}

// formatShortMonthYear renders to_char(d, 'Mon YYYY').
func formatShortMonthYear(t time.Time) string {
	return t.Format("Jan 2006")
}

// formatLongMonthYear renders to_char(d, 'Month YYYY'). Postgres blank-pads
// the month name to nine characters.
func formatLongMonthYear(t time.Time) string {
	return fmt.Sprintf("%-9s %04d", t.Month().String(), t.Year())
}

// formatDayShortMonthYear renders to_char(d, 'DD Mon YYYY').
func formatDayShortMonthYear(t time.Time) string {
	return t.Format("02 Jan 2006")
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// parseDate accepts the date inputs Postgres would cast to DATE for this
// service and truncates them to the calendar day.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid input syntax for type date: %q", s)
}
