package schedule

import "time"

// slotStepMinutes is the fixed scan step for candidate booking starts.
const slotStepMinutes = 30

// Bounds and defaults for caller-supplied numeric arguments.
const (
	minSlotDuration     = 5
	maxSlotDuration     = 360
	defaultSlotDuration = 60

	minResultLimit    = 1
	maxResultLimit    = 80
	defaultSlotLimit  = 20
	defaultGapLimit   = 10
	minGapThreshold   = 10
	maxGapThreshold   = 360
	defaultGapMinutes = 30
)

// FreeSlotsArgs are the inputs to the free-slot enumerator. Zero numeric
// values mean "unset" and fall back to defaults; out-of-range values are
// clamped, never rejected.
type FreeSlotsArgs struct {
	Date            string
	DurationMinutes int
	Limit           int
	MasterID        string
	MasterName      string
}

// FreeSlotsResult is the compact summary consumed by the tool-dispatch layer
// and the calendar UI.
type FreeSlotsResult struct {
	Date            string     `json:"date"`
	DurationMinutes int        `json:"durationMinutes"`
	Master          *MasterRef `json:"master,omitempty"`
	Slots           []string   `json:"slots"`
	TotalBusy       int        `json:"totalBusy"`
	Error           string     `json:"error,omitempty"`
	Hint            string     `json:"hint,omitempty"`
}

// FreeSlots enumerates candidate booking start times of the requested
// duration on one date for one master. An unresolvable master is reported as
// a structured "master_required" condition rather than an error; a day off
// yields an empty slot list.
func (e *Engine) FreeSlots(args FreeSlotsArgs) (*FreeSlotsResult, error) {
	date := NormalizeDate(args.Date, time.Now())
	duration := ClampOrDefault("durationMinutes", args.DurationMinutes, minSlotDuration, maxSlotDuration, defaultSlotDuration)
	limit := ClampOrDefault("limit", args.Limit, minResultLimit, maxResultLimit, defaultSlotLimit)

	res := &FreeSlotsResult{
		Date:            date,
		DurationMinutes: duration,
		Slots:           []string{},
	}

	master, err := e.ResolveMaster(args.MasterID, args.MasterName)
	if err != nil {
		return nil, err
	}
	if master == nil {
		res.Error = "master_required"
		res.Hint = "supply masterId or masterName to pick a master"
		return res, nil
	}
	res.Master = &MasterRef{ID: master.ID, Name: master.Name}

	busy, err := e.busyIntervals(master.ID, date)
	if err != nil {
		return nil, err
	}
	res.TotalBusy = len(busy)

	for _, w := range ResolveWindows(master, date) {
		for t := w.StartMin; t+duration <= w.EndMin; t += slotStepMinutes {
			if overlapsAny(t, t+duration, busy) {
				continue
			}
			res.Slots = append(res.Slots, date+"T"+FormatMinute(t))
			if len(res.Slots) >= limit {
				return res, nil
			}
		}
	}
	return res, nil
}
