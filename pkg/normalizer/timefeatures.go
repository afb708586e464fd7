package normalizer

import (
	"fmt"
	"time"
)

// DefaultTimezone is the fixed local timezone episodes are reported in.
const DefaultTimezone = "America/Sao_Paulo"

// Day-period buckets partition the 24 clock hours with boundaries at
// 6, 12 and 18.
const (
	PeriodDay       = "DAY"        // 06:00–11:59
	PeriodAfternoon = "AFTERNOON"  // 12:00–17:59
	PeriodNight     = "NIGHT"      // 18:00–23:59
	PeriodLateNight = "LATE_NIGHT" // 00:00–05:59
)

// weekdayNames is Monday-first, matching how the report is consumed.
var weekdayNames = [7]string{
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
	"domingo",
}

// ToLocal parses an ISO-8601 UTC timestamp and converts it to the given
// location. The result is the local wall-clock instant; callers render
// it without a zone annotation.
func ToLocal(publishedAt string, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse publish timestamp %q: %w", publishedAt, err)
	}
	return parsed.In(loc), nil
}

// WeekdayName maps a local timestamp to the fixed Monday-first table.
func WeekdayName(t time.Time) string {
	// time.Weekday is Sunday-indexed; the table is Monday-indexed.
	return weekdayNames[(int(t.Weekday())+6)%7]
}

// DayPeriod buckets the local hour-of-day.
func DayPeriod(t time.Time) string {
	hour := t.Hour()
	switch {
	case hour >= 6 && hour < 12:
		return PeriodDay
	case hour >= 12 && hour < 18:
		return PeriodAfternoon
	case hour >= 18:
		return PeriodNight
	default:
		return PeriodLateNight
	}
}

// DaysSince counts whole days elapsed from t to now, truncating toward
// zero.
func DaysSince(now, t time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}
