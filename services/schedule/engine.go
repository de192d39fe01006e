package schedule

import (
	"strings"

	"github.com/pros100kyiv/HUBbase-sub001/models"
)

// MasterSource is the slice of master data access the engine needs.
// Satisfied by masterRepo.MasterRepository and by fixture fakes in tests.
type MasterSource interface {
	GetByID(id string) (*models.Master, error)
	GetAllActive() ([]models.Master, error)
}

// AppointmentSource is the slice of appointment data access the engine needs.
type AppointmentSource interface {
	GetByMasterAndDate(masterID, date string) ([]models.Appointment, error)
}

// Engine computes availability windows, free slots and idle gaps from
// injected repositories. All computation is request-scoped and side-effect
// free: each call reads a fixed snapshot and derives values from it.
type Engine struct {
	Masters      MasterSource
	Appointments AppointmentSource
}

// NewEngine creates a schedule engine over the given sources.
func NewEngine(masters MasterSource, appointments AppointmentSource) *Engine {
	return &Engine{Masters: masters, Appointments: appointments}
}

// MasterRef is the compact master identity echoed in results.
type MasterRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ResolveMaster finds a master by id or, failing that, by case-insensitive
// substring match on name among active masters, earliest-created winning
// ties. Returns nil when neither input resolves; absence of both inputs is a
// caller error surfaced by the caller, not here.
func (e *Engine) ResolveMaster(id, name string) (*models.Master, error) {
	if id = strings.TrimSpace(id); id != "" {
		m, err := e.Masters.GetByID(id)
		if err != nil {
			return nil, err
		}
		if m != nil {
			return m, nil
		}
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, nil
	}
	masters, err := e.Masters.GetAllActive()
	if err != nil {
		return nil, err
	}
	var match *models.Master
	for i := range masters {
		m := &masters[i]
		if !strings.Contains(strings.ToLower(m.Name), name) {
			continue
		}
		if match == nil || m.CreatedAt.Before(match.CreatedAt) {
			match = m
		}
	}
	return match, nil
}

// interval is a half-open busy range [start, end) in minutes from midnight.
type interval struct {
	start int
	end   int
}

// busyIntervals loads the non-cancelled appointments of a master on a date as
// minute-of-day intervals. Rows with unparsable times are skipped.
func (e *Engine) busyIntervals(masterID, date string) ([]interval, error) {
	appts, err := e.Appointments.GetByMasterAndDate(masterID, date)
	if err != nil {
		return nil, err
	}
	var busy []interval
	for _, a := range appts {
		if a.Status == models.StatusCancelled {
			continue
		}
		start, okStart := MinuteFromHHMM(a.StartTime)
		end, okEnd := MinuteFromHHMM(a.EndTime)
		if !okStart || !okEnd || start >= end {
			continue
		}
		busy = append(busy, interval{start: start, end: end})
	}
	return busy, nil
}

// overlapsAny reports whether the half-open range [start, end) overlaps any
// busy interval.
func overlapsAny(start, end int, busy []interval) bool {
	for _, b := range busy {
		if start < b.end && end > b.start {
			return true
		}
	}
	return false
}
