package models

import "time"

// Master represents a staff member (barber, stylist) with their own schedule.
type Master struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Specialty string `bson:"specialty,omitempty" json:"specialty,omitempty"`
	AvatarID  string `bson:"avatarId,omitempty" json:"avatarId,omitempty"`
	Active    bool   `bson:"active" json:"active"`

	// WorkingHours holds the serialized WeeklySchedule JSON blob, e.g.
	// {"monday":{"enabled":true,"start":"09:00","end":"18:00"},...}.
	// Absent or unparsable means the master has no schedule.
	WorkingHours string `bson:"workingHours,omitempty" json:"workingHours,omitempty"`

	// ScheduleDateOverrides holds the serialized per-date exceptions JSON blob, e.g.
	// {"2024-06-11":{"enabled":false,"start":"","end":""}}. An entry for a date takes
	// precedence over the weekly schedule for that exact date.
	ScheduleDateOverrides string `bson:"scheduleDateOverrides,omitempty" json:"scheduleDateOverrides,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
