package handlers

import (
	staffRepoPkg "github.com/pros100kyiv/HUBbase-sub001/database/repository/staff"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	StaffRepo staffRepoPkg.StaffRepository

	AuthHandler        *AuthHandler
	MasterHandler      *MasterHandler
	ClientHandler      *ClientHandler
	AppointmentHandler *AppointmentHandler
	CatalogHandler     *CatalogHandler
	InboxHandler       *InboxHandler
	ScheduleHandler    *ScheduleHandler
	AIHandler          *AIHandler
}
