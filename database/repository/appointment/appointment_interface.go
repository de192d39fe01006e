package apptRepo

import "github.com/pros100kyiv/HUBbase-sub001/models"

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID. Returns nil when not found.
	GetByID(id string) (*models.Appointment, error)
	// GetByMasterAndDate retrieves all appointments of one master on one date,
	// sorted by start time. Includes cancelled ones; callers filter by status.
	GetByMasterAndDate(masterID, date string) ([]models.Appointment, error)
	// GetByDate retrieves all appointments on one date across masters.
	GetByDate(date string) ([]models.Appointment, error)
	// Create inserts a new appointment record.
	Create(appt *models.Appointment) error
	// Update modifies an existing appointment record.
	Update(appt *models.Appointment) error
	// UpdateStatus sets the status of an appointment.
	UpdateStatus(id, status string) error
	// Delete removes an appointment record by its ID.
	Delete(id string) error
	// CompleteBefore marks all non-cancelled appointments that ended on an
	// earlier date or, on the given date, at or before the given "HH:MM" time,
	// as Done. Returns the number of records changed.
	CompleteBefore(date, timeHHMM string) (int64, error)
}
