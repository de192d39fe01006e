package schedule

import (
	"math"

	"github.com/pros100kyiv/HUBbase-sub001/models"
)

// Source values for a resolved day. Diagnostic only: an override that
// disables a day and a missing weekly entry both mean "off", but callers
// can tell them apart.
const (
	SourceOverride = "override"
	SourceWeekly   = "weekly"
	SourceNone     = "none"
)

// DayResolution is the effective availability of one master on one date.
type DayResolution struct {
	Enabled   bool    `json:"enabled"`
	StartHour float64 `json:"startHour"`
	EndHour   float64 `json:"endHour"`
	Source    string  `json:"source"`
}

// Window is a bookable range within a day, in minutes from midnight.
type Window struct {
	StartMin int
	EndMin   int
}

// ResolveDay computes the effective availability window for a master on a
// date. A date override wins over the weekly schedule outright, even when it
// disables the day. Unparsable blobs, missing entries and inverted ranges all
// degrade to "off" rather than erroring.
func ResolveDay(m *models.Master, date string) DayResolution {
	off := DayResolution{Source: SourceNone}
	if m == nil {
		return off
	}

	var entry models.DaySchedule
	source := ""
	if overrides, err := models.ParseDateOverrides(m.ScheduleDateOverrides); err == nil {
		if e, ok := overrides[date]; ok {
			entry = e
			source = SourceOverride
		}
	}
	if source == "" {
		weekly, err := models.ParseWeeklySchedule(m.WorkingHours)
		if err != nil {
			return off
		}
		e, ok := weekly[WeekdayKey(date)]
		if !ok {
			return off
		}
		entry = e
		source = SourceWeekly
	}

	if !entry.Enabled {
		return DayResolution{Source: source}
	}
	start, okStart := HourFromHHMM(entry.Start)
	end, okEnd := HourFromHHMM(entry.End)
	if !okStart || !okEnd || start >= end {
		// Malformed hours are treated the same as a day off.
		return DayResolution{Source: source}
	}
	return DayResolution{Enabled: true, StartHour: start, EndHour: end, Source: source}
}

// ResolveWindows returns the bookable windows for a master on a date. The
// current data model yields zero or one window, but the slice keeps the
// enumerators general.
func ResolveWindows(m *models.Master, date string) []Window {
	day := ResolveDay(m, date)
	if !day.Enabled {
		return nil
	}
	return []Window{{
		StartMin: int(math.Round(day.StartHour * 60)),
		EndMin:   int(math.Round(day.EndHour * 60)),
	}}
}
