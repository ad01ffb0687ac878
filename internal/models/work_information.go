package models

import "time"

type WorkInformation struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	WorkName       string `gorm:"size:150" json:"work_name"`
	CompanyName    string `gorm:"size:150" json:"company_name"`
	Position       string `gorm:"size:100" json:"position"`
	Duration       string `gorm:"size:50" json:"duration"`
	CurrentWorking string `gorm:"size:10" json:"current_working"`
	State          string `gorm:"size:100" json:"state"`
	District       string `gorm:"size:100" json:"district"`
	Village        string `gorm:"size:100" json:"village"`
	Pincode        string `gorm:"size:10" json:"pincode"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WorkInformation) TableName() string {
	return "work_information"
}
