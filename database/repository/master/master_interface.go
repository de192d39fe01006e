package masterRepo

import (
	"github.com/pros100kyiv/HUBbase-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
)

// MasterRepository defines methods for master (staff member) data access.
type MasterRepository interface {
	// GetByID retrieves a master by its unique ID. Returns nil when not found.
	GetByID(id string) (*models.Master, error)
	// GetAll retrieves all masters.
	GetAll() ([]models.Master, error)
	// GetAllActive retrieves all active masters sorted by creation time.
	GetAllActive() ([]models.Master, error)
	// Create inserts a new master record.
	Create(master *models.Master) error
	// Update modifies an existing master record.
	Update(master *models.Master) error
	// UpdateSetDocument applies a partial $set update to a master record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a master record by its ID.
	Delete(id string) error
}
