package serviceRepo

import "github.com/pros100kyiv/HUBbase-sub001/models"

// ServiceRepository defines methods for price-list data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID. Returns nil when not found.
	GetByID(id string) (*models.Service, error)
	// GetAll retrieves all services sorted by name.
	GetAll() ([]models.Service, error)
	// GetAllActive retrieves all active services sorted by name.
	GetAllActive() ([]models.Service, error)
	// Create inserts a new service record.
	Create(svc *models.Service) error
	// Update modifies an existing service record.
	Update(svc *models.Service) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}
