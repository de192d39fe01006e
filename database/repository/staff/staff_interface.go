package staffRepo

import "github.com/pros100kyiv/HUBbase-sub001/models"

// StaffRepository defines methods for CRM account data access.
type StaffRepository interface {
	// GetByID retrieves a staff account by its unique ID. Returns nil when not found.
	GetByID(id string) (*models.Staff, error)
	// GetByEmail retrieves a staff account by email. Returns nil when not found.
	GetByEmail(email string) (*models.Staff, error)
	// Create inserts a new staff account.
	Create(staff *models.Staff) error
	// Count returns the number of staff accounts.
	Count() (int64, error)
}
