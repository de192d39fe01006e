package schedule

import (
	"sort"
	"time"
)

// Gap is a maximal idle interval within the working window.
type Gap struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Minutes int    `json:"minutes"`
}

// GapsArgs are the inputs to the gap summarizer.
type GapsArgs struct {
	Date          string
	MinGapMinutes int
	Limit         int
	MasterID      string
	MasterName    string
}

// GapsResult summarizes idle time between bookings, largest gaps first.
type GapsResult struct {
	Date              string     `json:"date"`
	Master            *MasterRef `json:"master,omitempty"`
	MinGapMinutes     int        `json:"minGapMinutes"`
	Gaps              []Gap      `json:"gaps"`
	TotalGaps         int        `json:"totalGaps"`
	TotalAppointments int        `json:"totalAppointments"`
	Note              string     `json:"note,omitempty"`
	Error             string     `json:"error,omitempty"`
	Hint              string     `json:"hint,omitempty"`
}

// GapsSummary computes the maximal idle intervals within a master's working
// window on one date. The sweep clips bookings to the window and walks them
// in start order, which is equivalent to complementing the merged busy set
// without building it explicitly.
func (e *Engine) GapsSummary(args GapsArgs) (*GapsResult, error) {
	date := NormalizeDate(args.Date, time.Now())
	threshold := ClampOrDefault("minGapMinutes", args.MinGapMinutes, minGapThreshold, maxGapThreshold, defaultGapMinutes)
	limit := ClampOrDefault("limit", args.Limit, minResultLimit, maxResultLimit, defaultGapLimit)

	res := &GapsResult{
		Date:          date,
		MinGapMinutes: threshold,
		Gaps:          []Gap{},
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
	res.TotalAppointments = len(busy)

	windows := ResolveWindows(master, date)
	if len(windows) == 0 {
		res.Note = "no_working_hours"
		return res, nil
	}

	var gaps []Gap
	for _, w := range windows {
		// Clip bookings to the window bounds and sort by start.
		var clipped []interval
		for _, b := range busy {
			start, end := b.start, b.end
			if start < w.StartMin {
				start = w.StartMin
			}
			if end > w.EndMin {
				end = w.EndMin
			}
			if start < end {
				clipped = append(clipped, interval{start: start, end: end})
			}
		}
		sort.Slice(clipped, func(i, j int) bool { return clipped[i].start < clipped[j].start })

		cursor := w.StartMin
		for _, b := range clipped {
			if b.start > cursor && b.start-cursor >= threshold {
				gaps = append(gaps, Gap{Start: FormatMinute(cursor), End: FormatMinute(b.start), Minutes: b.start - cursor})
			}
			if b.end > cursor {
				cursor = b.end
			}
		}
		if w.EndMin > cursor && w.EndMin-cursor >= threshold {
			gaps = append(gaps, Gap{Start: FormatMinute(cursor), End: FormatMinute(w.EndMin), Minutes: w.EndMin - cursor})
		}
	}

	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].Minutes > gaps[j].Minutes })
	res.TotalGaps = len(gaps)
	if len(gaps) > limit {
		gaps = gaps[:limit]
	}
	if len(gaps) > 0 {
		res.Gaps = gaps
	}
	return res, nil
}
