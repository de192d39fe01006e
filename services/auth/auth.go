package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/pros100kyiv/HUBbase-sub001/config"
	staffRepo "github.com/pros100kyiv/HUBbase-sub001/database/repository/staff"
	"github.com/pros100kyiv/HUBbase-sub001/models"
	"github.com/pros100kyiv/HUBbase-sub001/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// AuthService authenticates CRM staff accounts.
type AuthService interface {
	SignIn(email, password string) (*models.Staff, string, error)
	SignOut(staffID string) error
	// SeedOwner creates the configured owner account when no staff exist yet.
	SeedOwner() error
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Repo staffRepo.StaffRepository
}

func (s *DefaultAuthService) SignIn(email, password string) (*models.Staff, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	staff, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if staff == nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(staff.ID, staff.Email, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	if err := utils.CacheAuthToken(staff.ID, token, tokenTTL); err != nil {
		return nil, "", fmt.Errorf("failed to cache token: %w", err)
	}
	return staff, token, nil
}

func (s *DefaultAuthService) SignOut(staffID string) error {
	return utils.RevokeAuthToken(staffID)
}

// SeedOwner bootstraps the owner account from configuration on first start.
func (s *DefaultAuthService) SeedOwner() error {
	logger := utils.GetLogger()

	count, err := s.Repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	email := strings.ToLower(strings.TrimSpace(config.AppConfig.OwnerEmail))
	password := config.AppConfig.OwnerPassword
	if email == "" || password == "" {
		logger.Warn("no staff accounts and no OWNER_EMAIL/OWNER_PASSWORD configured; sign-in will be impossible")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash owner password: %w", err)
	}
	owner := &models.Staff{
		ID:           uuid.New().String(),
		Name:         "Owner",
		Email:        email,
		PasswordHash: string(hash),
		Role:         "owner",
	}
	if err := s.Repo.Create(owner); err != nil {
		return err
	}
	logger.Info("seeded owner account", zap.String("email", email))
	return nil
}
