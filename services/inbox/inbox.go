package inbox

import (
	"fmt"
	"strings"

	messageRepo "github.com/pros100kyiv/HUBbase-sub001/database/repository/message"
	"github.com/pros100kyiv/HUBbase-sub001/models"

	"github.com/google/uuid"
)

// InboxService manages inbound client messages and stored replies.
// Delivery to external channels is out of scope; the reply is recorded
// on the message only.
type InboxService interface {
	ListMessages(unreadOnly bool) ([]models.Message, error)
	ReceiveMessage(msg *models.Message) (*models.Message, error)
	MarkRead(id string) error
	Reply(id, text string) error
	DeleteMessage(id string) error
}

// DefaultInboxService implements InboxService.
type DefaultInboxService struct {
	Repo messageRepo.MessageRepository
}

func (s *DefaultInboxService) ListMessages(unreadOnly bool) ([]models.Message, error) {
	return s.Repo.GetAll(unreadOnly)
}

func (s *DefaultInboxService) ReceiveMessage(msg *models.Message) (*models.Message, error) {
	msg.Text = strings.TrimSpace(msg.Text)
	if msg.Text == "" {
		return nil, fmt.Errorf("message text is required")
	}
	msg.ID = uuid.New().String()
	msg.Read = false
	if err := s.Repo.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *DefaultInboxService) MarkRead(id string) error {
	return s.Repo.MarkRead(id)
}

func (s *DefaultInboxService) Reply(id, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("reply text is required")
	}
	return s.Repo.SetReply(id, text)
}

func (s *DefaultInboxService) DeleteMessage(id string) error {
	return s.Repo.Delete(id)
}
