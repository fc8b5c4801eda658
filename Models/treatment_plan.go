package Models

import "gorm.io/gorm"

const (
	PlanStatusDraft  = "draft"
	PlanStatusActive = "active"
	PlanStatusClosed = "closed"
)

type TreatmentPlan struct {
	gorm.Model
	PatientID      uint        `json:"patient_id"`
	PractitionerID uint        `json:"practitioner_id"` // diagnosing practitioner
	Diagnosis      string      `json:"diagnosis"`
	Status         string      `json:"status"`
	Treatments     []Treatment `json:"treatments"`
	ClinicGroupID  uint        `json:"clinic_group_id"`
}

// Treatment is one billable line of a plan. Cost is in cents. The primary
// practitioner is required; the secondary one is optional and only earns a
// compensation entry when set with a percentage above zero. The two
// percentages are independent and are not validated to sum to 100.
type Treatment struct {
	gorm.Model
	TreatmentPlanID         uint    `json:"treatment_plan_id"`
	Description             string  `json:"description"`
	ToothCode               string  `json:"tooth_code"`
	Cost                    int64   `json:"cost"`
	PrimaryPractitionerID   uint    `json:"primary_practitioner_id"`
	SecondaryPractitionerID *uint   `json:"secondary_practitioner_id" gorm:"default:null"`
	PrimaryPercentage       float64 `json:"primary_percentage"`
	SecondaryPercentage     float64 `json:"secondary_percentage"`
	IsCompleted             bool    `json:"is_completed"`
	CompletionDate          string  `json:"completion_date"`
}
