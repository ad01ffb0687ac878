package models

import "time"

// UnavailableSlot is a provider's self-declared block on a slot.
// Duplicate rows for the same tuple are tolerated on read: any match
// means blocked.
type UnavailableSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   uint   `gorm:"not null;index:idx_unavailable_slot" json:"user_id"`
	Date     string `gorm:"size:10;not null;index:idx_unavailable_slot" json:"date"`
	TimeSlot string `gorm:"size:30;not null;index:idx_unavailable_slot" json:"time_slot"`

	CreatedAt time.Time `json:"created_at"`
}
