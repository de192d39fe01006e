package client

import (
	"fmt"
	"strings"

	clientRepo "github.com/pros100kyiv/HUBbase-sub001/database/repository/client"
	"github.com/pros100kyiv/HUBbase-sub001/models"

	"github.com/google/uuid"
)

// ClientService manages the salon's client roster.
type ClientService interface {
	GetClientByID(id string) (*models.Client, error)
	GetAllClients() ([]models.Client, error)
	SearchClients(query string) ([]models.Client, error)
	CreateClient(c *models.Client) (*models.Client, error)
	UpdateClient(c *models.Client) (*models.Client, error)
	DeleteClient(id string) error
}

// DefaultClientService implements ClientService.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}

func (s *DefaultClientService) GetClientByID(id string) (*models.Client, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("client with id %s not found", id)
	}
	return c, nil
}

func (s *DefaultClientService) GetAllClients() ([]models.Client, error) {
	return s.Repo.GetAll()
}

func (s *DefaultClientService) SearchClients(query string) ([]models.Client, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.Repo.GetAll()
	}
	return s.Repo.Search(query)
}

func (s *DefaultClientService) CreateClient(c *models.Client) (*models.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, fmt.Errorf("client name is required")
	}
	c.ID = uuid.New().String()
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultClientService) UpdateClient(c *models.Client) (*models.Client, error) {
	existing, err := s.GetClientByID(c.ID)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultClientService) DeleteClient(id string) error {
	return s.Repo.Delete(id)
}
