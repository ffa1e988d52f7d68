package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Kalenderhelfer rund um ISO-Wochen ("2026-W35"). Alle Wochenrechnungen im
// Planner laufen über dieses Format, damit Allokations-Overrides, Heatmap und
// Zeiterfassung denselben Schlüssel verwenden.

var isoWeekRe = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// ISOWeekString formatiert den Zeitpunkt als ISO-Wochen-Schlüssel.
func ISOWeekString(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// IsValidISOWeek prüft das Format "JJJJ-WNN" mit NN in 01..53.
func IsValidISOWeek(s string) bool {
	m := isoWeekRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	week, _ := strconv.Atoi(m[2])
	return week >= 1 && week <= 53
}

// WeekStart liefert den Montag der angegebenen ISO-Woche.
func WeekStart(isoWeek string) (time.Time, error) {
	m := isoWeekRe.FindStringSubmatch(isoWeek)
	if m == nil {
		return time.Time{}, fmt.Errorf("ungültige ISO-Woche: %q", isoWeek)
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	if week < 1 || week > 53 {
		return time.Time{}, fmt.Errorf("ungültige ISO-Woche: %q", isoWeek)
	}

	// Der 4. Januar liegt immer in Woche 1; von dessen Montag aus zählen.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7 // Sonntag
	}
	monday := jan4.AddDate(0, 0, 1-weekday)
	return monday.AddDate(0, 0, (week-1)*7), nil
}

// WeeksFrom liefert n aufeinanderfolgende ISO-Wochen-Schlüssel, beginnend mit
// der Woche von start.
func WeeksFrom(start time.Time, n int) []string {
	weeks := make([]string, 0, n)
	for i := 0; i < n; i++ {
		weeks = append(weeks, ISOWeekString(start.AddDate(0, 0, i*7)))
	}
	return weeks
}

// OverlapsWeek prüft, ob der Zeitraum [start, end] die ISO-Woche schneidet.
// end == nil gilt als offen.
func OverlapsWeek(start time.Time, end *time.Time, isoWeek string) bool {
	weekStart, err := WeekStart(isoWeek)
	if err != nil {
		return false
	}
	weekEnd := weekStart.AddDate(0, 0, 7)

	if !start.Before(weekEnd) {
		return false
	}
	if end != nil && end.Before(weekStart) {
		return false
	}
	return true
}
