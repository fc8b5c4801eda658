package Models

import (
	"gorm.io/gorm"
)

type Practitioner struct {
	gorm.Model
	Name           string `json:"name"`
	UserID         uint   `json:"user_id"`
	Phone          string `json:"phone"`
	Specialty      string `json:"specialty"`
	RegistrationNo string `json:"registration_no"`
	PhotoUrl       string `json:"photo_url"`
	ClinicGroupID  uint   `json:"clinic_group_id"`
}
