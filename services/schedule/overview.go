package schedule

import "time"

// WorkingMaster is one working master's entry in the who-working summary.
type WorkingMaster struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Source       string `json:"source"`
	Appointments int    `json:"appointments"`
}

// WhoWorkingResult lists which masters work on a date and which are off.
type WhoWorkingResult struct {
	Date    string          `json:"date"`
	Working []WorkingMaster `json:"working"`
	Off     []string        `json:"off"`
}

// WhoWorking resolves every active master's availability on one date.
func (e *Engine) WhoWorking(dateArg string) (*WhoWorkingResult, error) {
	date := NormalizeDate(dateArg, time.Now())
	res := &WhoWorkingResult{Date: date, Working: []WorkingMaster{}, Off: []string{}}

	masters, err := e.Masters.GetAllActive()
	if err != nil {
		return nil, err
	}
	for i := range masters {
		m := &masters[i]
		day := ResolveDay(m, date)
		if !day.Enabled {
			res.Off = append(res.Off, m.Name)
			continue
		}
		busy, err := e.busyIntervals(m.ID, date)
		if err != nil {
			return nil, err
		}
		res.Working = append(res.Working, WorkingMaster{
			ID:           m.ID,
			Name:         m.Name,
			Start:        FormatHour(day.StartHour),
			End:          FormatHour(day.EndHour),
			Source:       day.Source,
			Appointments: len(busy),
		})
	}
	return res, nil
}

// OverviewEntry aggregates one master's schedule over the overview horizon.
type OverviewEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	WorkingDays  int    `json:"workingDays"`
	Appointments int    `json:"appointments"`
	Today        string `json:"today"` // "HH:MM-HH:MM" or "off"
}

// OverviewResult is the compact week-ahead summary per master.
type OverviewResult struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	Masters []OverviewEntry `json:"masters"`
}

const overviewDays = 7

// ScheduleOverview summarizes the coming week for every active master:
// working-day count, booked appointment count, and today's window.
func (e *Engine) ScheduleOverview() (*OverviewResult, error) {
	now := time.Now()
	res := &OverviewResult{
		From:    DateKey(now),
		To:      DateKey(now.AddDate(0, 0, overviewDays-1)),
		Masters: []OverviewEntry{},
	}

	masters, err := e.Masters.GetAllActive()
	if err != nil {
		return nil, err
	}
	for i := range masters {
		m := &masters[i]
		entry := OverviewEntry{ID: m.ID, Name: m.Name, Today: "off"}
		for d := 0; d < overviewDays; d++ {
			date := DateKey(now.AddDate(0, 0, d))
			day := ResolveDay(m, date)
			if !day.Enabled {
				continue
			}
			entry.WorkingDays++
			if d == 0 {
				entry.Today = FormatHour(day.StartHour) + "-" + FormatHour(day.EndHour)
			}
			busy, err := e.busyIntervals(m.ID, date)
			if err != nil {
				return nil, err
			}
			entry.Appointments += len(busy)
		}
		res.Masters = append(res.Masters, entry)
	}
	return res, nil
}
