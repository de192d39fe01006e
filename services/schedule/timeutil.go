package schedule

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// weekdayKeys maps the internal Monday=0 convention onto schedule blob keys.
// time.Weekday counts from Sunday=0, hence the (wd+6)%7 rotation below.
var weekdayKeys = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateKey formats a time as the canonical "YYYY-MM-DD" key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// NormalizeDate validates a caller-supplied date argument. A malformed or
// missing date defaults to today rather than being rejected.
func NormalizeDate(arg string, now time.Time) string {
	arg = strings.TrimSpace(arg)
	if dateRe.MatchString(arg) {
		if _, err := time.Parse("2006-01-02", arg); err == nil {
			return arg
		}
	}
	return DateKey(now)
}

// WeekdayKey returns the schedule blob key (monday..sunday) for a date,
// or "" when the date does not parse.
func WeekdayKey(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return weekdayKeys[(int(t.Weekday())+6)%7]
}

// HourFromHHMM converts "HH:MM" to fractional hours (e.g. "09:30" -> 9.5).
func HourFromHHMM(s string) (float64, bool) {
	h, m, ok := splitHHMM(s)
	if !ok {
		return 0, false
	}
	return float64(h) + float64(m)/60, true
}

// MinuteFromHHMM converts "HH:MM" to minutes from midnight.
func MinuteFromHHMM(s string) (int, bool) {
	h, m, ok := splitHHMM(s)
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

func splitHHMM(s string) (int, int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// FormatMinute renders minutes from midnight as "HH:MM".
func FormatMinute(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// FormatHour renders fractional hours as "HH:MM".
func FormatHour(h float64) string {
	return FormatMinute(int(math.Round(h * 60)))
}
