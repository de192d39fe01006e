package models

import "time"

// Appointment statuses.
const (
	StatusNew       = "New"
	StatusConfirmed = "Confirmed"
	StatusDone      = "Done"
	StatusCancelled = "Cancelled"
)

// Appointment represents a booked visit: a half-open time range
// [StartTime, EndTime) on Date, attached to a master.
type Appointment struct {
	ID         string  `bson:"id" json:"id"`
	MasterID   string  `bson:"masterId" json:"masterId"`
	ClientID   string  `bson:"clientId,omitempty" json:"clientId,omitempty"`
	ClientName string  `bson:"clientName,omitempty" json:"clientName,omitempty"`
	ServiceID  string  `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	Date       string  `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime  string  `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime    string  `bson:"endTime" json:"endTime"`     // "HH:MM"
	Status     string  `bson:"status" json:"status"`
	Price      float64 `bson:"price,omitempty" json:"price,omitempty"`
	Comment    string  `bson:"comment,omitempty" json:"comment,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsValidStatus reports whether s is one of the known appointment statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusConfirmed, StatusDone, StatusCancelled:
		return true
	}
	return false
}
