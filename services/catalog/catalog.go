package catalog

import (
	"fmt"
	"strings"

	serviceRepo "github.com/pros100kyiv/HUBbase-sub001/database/repository/service"
	"github.com/pros100kyiv/HUBbase-sub001/models"

	"github.com/google/uuid"
)

// CatalogService manages the price list.
type CatalogService interface {
	GetServiceByID(id string) (*models.Service, error)
	GetAllServices(activeOnly bool) ([]models.Service, error)
	CreateService(svc *models.Service) (*models.Service, error)
	UpdateService(svc *models.Service) (*models.Service, error)
	DeleteService(id string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}

func (s *DefaultCatalogService) GetServiceByID(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("service with id %s not found", id)
	}
	return svc, nil
}

func (s *DefaultCatalogService) GetAllServices(activeOnly bool) ([]models.Service, error) {
	if activeOnly {
		return s.Repo.GetAllActive()
	}
	return s.Repo.GetAll()
}

func (s *DefaultCatalogService) CreateService(svc *models.Service) (*models.Service, error) {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if svc.Price < 0 {
		return nil, fmt.Errorf("service price cannot be negative")
	}
	if svc.DurationMinutes <= 0 {
		return nil, fmt.Errorf("service duration must be positive")
	}
	svc.ID = uuid.New().String()
	svc.Active = true
	if err := s.Repo.Create(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) UpdateService(svc *models.Service) (*models.Service, error) {
	existing, err := s.GetServiceByID(svc.ID)
	if err != nil {
		return nil, err
	}
	svc.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) DeleteService(id string) error {
	return s.Repo.Delete(id)
}
