package models

import "time"

type EducationalInformation struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	Qualification           string `gorm:"size:150" json:"qualification"`
	InstituteSpecialization string `gorm:"size:150" json:"institute_specialization"`

	FilePath string `gorm:"size:255" json:"file_path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (EducationalInformation) TableName() string {
	return "educational_information"
}
