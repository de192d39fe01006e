package appointment

import (
	"fmt"
	"time"

	apptRepo "github.com/pros100kyiv/HUBbase-sub001/database/repository/appointment"
	"github.com/pros100kyiv/HUBbase-sub001/models"
	"github.com/pros100kyiv/HUBbase-sub001/services/schedule"
	"github.com/pros100kyiv/HUBbase-sub001/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSlotTaken is returned when a booking would overlap an existing one.
var ErrSlotTaken = fmt.Errorf("time slot already taken")

// AppointmentService manages bookings on the calendar.
type AppointmentService interface {
	GetAppointmentByID(id string) (*models.Appointment, error)
	ListAppointments(date, masterID string) ([]models.Appointment, error)
	CreateAppointment(a *models.Appointment) (*models.Appointment, error)
	UpdateAppointment(a *models.Appointment) (*models.Appointment, error)
	SetStatus(id, status string) error
	DeleteAppointment(id string) error
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo apptRepo.AppointmentRepository
}

func (s *DefaultAppointmentService) GetAppointmentByID(id string) (*models.Appointment, error) {
	a, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("appointment with id %s not found", id)
	}
	return a, nil
}

// ListAppointments returns the bookings on one date, optionally narrowed to
// one master. A missing or malformed date means today.
func (s *DefaultAppointmentService) ListAppointments(date, masterID string) ([]models.Appointment, error) {
	date = schedule.NormalizeDate(date, time.Now())
	if masterID != "" {
		return s.Repo.GetByMasterAndDate(masterID, date)
	}
	return s.Repo.GetByDate(date)
}

// validate checks the booking fields and rejects overlaps with existing
// non-cancelled bookings of the same master on the same date.
func (s *DefaultAppointmentService) validate(a *models.Appointment, excludeID string) error {
	if a.MasterID == "" {
		return fmt.Errorf("masterId is required")
	}
	start, okStart := schedule.MinuteFromHHMM(a.StartTime)
	end, okEnd := schedule.MinuteFromHHMM(a.EndTime)
	if !okStart || !okEnd || start >= end {
		return fmt.Errorf("invalid time range %s-%s", a.StartTime, a.EndTime)
	}

	existing, err := s.Repo.GetByMasterAndDate(a.MasterID, a.Date)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID == excludeID || other.Status == models.StatusCancelled {
			continue
		}
		os, okS := schedule.MinuteFromHHMM(other.StartTime)
		oe, okE := schedule.MinuteFromHHMM(other.EndTime)
		if !okS || !okE {
			continue
		}
		if start < oe && end > os {
			return ErrSlotTaken
		}
	}
	return nil
}

func (s *DefaultAppointmentService) CreateAppointment(a *models.Appointment) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if a.Status == "" {
		a.Status = models.StatusNew
	}
	if !models.IsValidStatus(a.Status) {
		return nil, fmt.Errorf("unknown status %q", a.Status)
	}
	if err := s.validate(a, ""); err != nil {
		return nil, err
	}
	a.ID = uuid.New().String()
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	logger.Info("appointment created",
		zap.String("id", a.ID),
		zap.String("masterId", a.MasterID),
		zap.String("date", a.Date),
		zap.String("start", a.StartTime))
	return a, nil
}

func (s *DefaultAppointmentService) UpdateAppointment(a *models.Appointment) (*models.Appointment, error) {
	existing, err := s.GetAppointmentByID(a.ID)
	if err != nil {
		return nil, err
	}
	if !models.IsValidStatus(a.Status) {
		return nil, fmt.Errorf("unknown status %q", a.Status)
	}
	if err := s.validate(a, a.ID); err != nil {
		return nil, err
	}
	a.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *DefaultAppointmentService) SetStatus(id, status string) error {
	if !models.IsValidStatus(status) {
		return fmt.Errorf("unknown status %q", status)
	}
	return s.Repo.UpdateStatus(id, status)
}

func (s *DefaultAppointmentService) DeleteAppointment(id string) error {
	return s.Repo.Delete(id)
}
