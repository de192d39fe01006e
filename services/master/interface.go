package master

import "github.com/pros100kyiv/HUBbase-sub001/models"

// MasterService manages the salon's staff records and their schedules.
type MasterService interface {
	GetMasterByID(id string) (*models.Master, error)
	GetAllMasters() ([]models.Master, error)
	CreateMaster(m *models.Master) (*models.Master, error)
	UpdateMaster(m *models.Master) (*models.Master, error)
	DeleteMaster(id string) error
	// UpdateWorkingHours replaces the weekly schedule blob. The blob must be
	// valid schedule JSON; reads stay lenient, writes do not.
	UpdateWorkingHours(id, workingHours string) error
	// UpdateOverrides replaces the date-override blob with the same contract.
	UpdateOverrides(id, overrides string) error
	// SetAvatar stores the uploaded avatar's storage ID on the master.
	SetAvatar(id, avatarID string) error
}
