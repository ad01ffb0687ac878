package models

import "time"

// Appointment statuses. Cancelled is terminal.
const (
	AppointmentActive    = 0
	AppointmentCancelled = 1
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// The partial unique index is the single-active-booking guarantee:
	// at most one status=0 row per (provider, date, slot), enforced by
	// the database. Cancelled rows fall outside it, so the slot frees up.
	ProviderID uint `gorm:"not null;uniqueIndex:idx_appointments_active_slot,where:status = 0" json:"provider_id"`
	CustomerID uint `gorm:"not null;index" json:"customer_id"`

	// Calendar date as YYYY-MM-DD; equality is by date string, no timezone math.
	Date     string `gorm:"size:10;not null;uniqueIndex:idx_appointments_active_slot" json:"date"`
	TimeSlot string `gorm:"size:30;not null;uniqueIndex:idx_appointments_active_slot" json:"time_slot"`

	Status int `gorm:"not null;default:0" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
