package Models

import (
	"gorm.io/gorm"
)

type Appointment struct {
	gorm.Model
	DateTime         string `json:"date_time"`
	PractitionerID   uint   `json:"practitioner_id"`
	PractitionerName string `json:"practitioner_name"`
	PatientID        uint   `json:"patient_id"`
	PatientName      string `json:"patient_name"`
	Notes            string `json:"notes"`
	IsCompleted      bool   `json:"is_completed"`
	ClinicGroupID    uint   `json:"clinic_group_id"`
}
