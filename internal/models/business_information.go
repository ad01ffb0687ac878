package models

import "time"

type BusinessInformation struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	BusinessName    string `gorm:"size:150" json:"business_name"`
	BusinessType    string `gorm:"size:100" json:"business_type"`
	BusinessAddress string `gorm:"size:255" json:"business_address"`
	City            string `gorm:"size:100" json:"city"`
	State           string `gorm:"size:100" json:"state"`
	District        string `gorm:"size:100" json:"district"`
	Pincode         string `gorm:"size:10" json:"pincode"`

	BusinessLogo string `gorm:"size:255" json:"business_logo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BusinessInformation) TableName() string {
	return "business_information"
}
