package master

import (
	"fmt"
	"strings"

	masterRepo "github.com/pros100kyiv/HUBbase-sub001/database/repository/master"
	"github.com/pros100kyiv/HUBbase-sub001/models"
	"github.com/pros100kyiv/HUBbase-sub001/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultMasterService implements MasterService.
type DefaultMasterService struct {
	Repo masterRepo.MasterRepository
}

func (s *DefaultMasterService) GetMasterByID(id string) (*models.Master, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("master with id %s not found", id)
	}
	return m, nil
}

func (s *DefaultMasterService) GetAllMasters() ([]models.Master, error) {
	return s.Repo.GetAll()
}

func (s *DefaultMasterService) CreateMaster(m *models.Master) (*models.Master, error) {
	logger := utils.GetLogger()

	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return nil, fmt.Errorf("master name is required")
	}
	if m.WorkingHours != "" {
		if _, err := models.ParseWeeklySchedule(m.WorkingHours); err != nil {
			return nil, fmt.Errorf("invalid working hours: %w", err)
		}
	}
	m.ID = uuid.New().String()
	m.Active = true

	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	logger.Info("master created", zap.String("id", m.ID), zap.String("name", m.Name))
	return m, nil
}

func (s *DefaultMasterService) UpdateMaster(m *models.Master) (*models.Master, error) {
	existing, err := s.GetMasterByID(m.ID)
	if err != nil {
		return nil, err
	}
	// Schedule blobs are managed through their dedicated endpoints.
	m.WorkingHours = existing.WorkingHours
	m.ScheduleDateOverrides = existing.ScheduleDateOverrides
	m.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *DefaultMasterService) DeleteMaster(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultMasterService) UpdateWorkingHours(id, workingHours string) error {
	if workingHours != "" {
		if _, err := models.ParseWeeklySchedule(workingHours); err != nil {
			return fmt.Errorf("invalid working hours: %w", err)
		}
	}
	return s.Repo.UpdateSetDocument(id, bson.M{"workingHours": workingHours})
}

func (s *DefaultMasterService) UpdateOverrides(id, overrides string) error {
	if overrides != "" {
		if _, err := models.ParseDateOverrides(overrides); err != nil {
			return fmt.Errorf("invalid schedule overrides: %w", err)
		}
	}
	return s.Repo.UpdateSetDocument(id, bson.M{"scheduleDateOverrides": overrides})
}

func (s *DefaultMasterService) SetAvatar(id, avatarID string) error {
	return s.Repo.UpdateSetDocument(id, bson.M{"avatarId": avatarID})
}
