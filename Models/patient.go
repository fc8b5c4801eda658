package Models

import (
	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Gender         string          `json:"gender"`
	BirthDate      string          `json:"birth_date"`
	FiscalCode     string          `json:"fiscal_code"`
	Anamnesis      string          `json:"anamnesis"`
	Notes          string          `json:"notes"`
	TreatmentPlans []TreatmentPlan `json:"treatment_plans"`
	Quotes         []Quote         `json:"quotes"`
	ToothRecords   []ToothRecord   `json:"tooth_records"`
	Appointments   []Appointment   `json:"appointments"`
	ClinicGroupID  uint            `json:"clinic_group_id"`
}

// ToothRecord is one entry of the per-tooth chart. ToothCode uses FDI
// two-digit notation (11-48, plus 51-85 for deciduous teeth).
type ToothRecord struct {
	gorm.Model
	PatientID uint   `json:"patient_id"`
	ToothCode string `json:"tooth_code"`
	Condition string `json:"condition"`
	Notes     string `json:"notes"`
	Date      string `json:"date"`
}
