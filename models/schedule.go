package models

import (
	"encoding/json"
	"strings"
)

// DaySchedule is one day's availability entry, either from the weekly
// template or a date override.
type DaySchedule struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // "HH:MM"
	End     string `json:"end"`   // "HH:MM"
}

// WeeklySchedule maps a lowercase weekday key (monday..sunday) to that
// day's recurring availability.
type WeeklySchedule map[string]DaySchedule

// DateOverrides maps a calendar date key ("YYYY-MM-DD") to an exception
// entry that takes precedence over the weekly schedule for that date.
type DateOverrides map[string]DaySchedule

// ParseWeeklySchedule decodes the serialized weekly schedule blob stored on a
// master record. An empty blob or malformed JSON yields an error; callers are
// expected to treat that as "no schedule" rather than failing.
func ParseWeeklySchedule(raw string) (WeeklySchedule, error) {
	var ws WeeklySchedule
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// ParseDateOverrides decodes the serialized date-override blob stored on a
// master record, with the same lenient contract as ParseWeeklySchedule.
func ParseDateOverrides(raw string) (DateOverrides, error) {
	var ov DateOverrides
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &ov); err != nil {
		return nil, err
	}
	return ov, nil
}
