package clientRepo

import "github.com/pros100kyiv/HUBbase-sub001/models"

// ClientRepository defines methods for client roster data access.
type ClientRepository interface {
	// GetByID retrieves a client by its unique ID. Returns nil when not found.
	GetByID(id string) (*models.Client, error)
	// GetAll retrieves all clients sorted by name.
	GetAll() ([]models.Client, error)
	// Search finds clients whose name or phone contains the query, case-insensitively.
	Search(query string) ([]models.Client, error)
	// Create inserts a new client record.
	Create(client *models.Client) error
	// Update modifies an existing client record.
	Update(client *models.Client) error
	// Delete removes a client record by its ID.
	Delete(id string) error
}
