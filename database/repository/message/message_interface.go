package messageRepo

import "github.com/pros100kyiv/HUBbase-sub001/models"

// MessageRepository defines methods for inbox data access.
type MessageRepository interface {
	// GetByID retrieves a message by its unique ID. Returns nil when not found.
	GetByID(id string) (*models.Message, error)
	// GetAll retrieves messages, newest first. When unreadOnly is true, only
	// unread ones are returned.
	GetAll(unreadOnly bool) ([]models.Message, error)
	// Create inserts a new message record.
	Create(msg *models.Message) error
	// MarkRead flags a message as read.
	MarkRead(id string) error
	// SetReply stores the staff reply text on a message and marks it read.
	SetReply(id, reply string) error
	// Delete removes a message record by its ID.
	Delete(id string) error
}
