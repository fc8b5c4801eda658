package Models

import "gorm.io/gorm"

type ClinicGroup struct {
	gorm.Model
	Name      string `json:"name" gorm:"unique"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	VatNumber string `json:"vat_number"`
}
