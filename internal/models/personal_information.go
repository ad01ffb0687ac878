package models

import "time"

type PersonalInformation struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	FullName    string `gorm:"size:100" json:"full_name"`
	DateOfBirth string `gorm:"size:10" json:"date_of_birth"`
	Gender      string `gorm:"size:20" json:"gender"`
	Email       string `gorm:"size:100" json:"email"`
	PhoneNo     string `gorm:"size:20" json:"phone_no"`
	State       string `gorm:"size:100" json:"state"`
	District    string `gorm:"size:100" json:"district"`
	Village     string `gorm:"size:100" json:"village"`
	Pincode     string `gorm:"size:10" json:"pincode"`

	// Free-form; "provider" and "customer" by convention, not enforced.
	Role string `gorm:"size:30" json:"role"`

	// Relative path inside the content store.
	ProfileImg string `gorm:"size:255" json:"profile_img"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// "information" does not pluralize; pin the table name so raw joins and
// the schema agree.
func (PersonalInformation) TableName() string {
	return "personal_information"
}
