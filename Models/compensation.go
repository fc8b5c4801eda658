package Models

import (
	"time"

	"gorm.io/gorm"
)

// CompensationEntry attributes part of a paid quote's value to one
// practitioner for one treatment line, tagged with the fiscal month/year of
// the payment's processing date. Rows are written only by the quote payment
// transition; after that only IsPaid/PaidDate change, through reconciliation.
type CompensationEntry struct {
	gorm.Model
	PractitionerID uint    `json:"practitioner_id"`
	QuoteID        uint    `json:"quote_id"`
	TreatmentID    uint    `json:"treatment_id"`
	BaseAmount     int64   `json:"base_amount"`
	Percentage     float64 `json:"percentage"`
	Amount         int64   `json:"amount"`
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	IsPaid         bool    `json:"is_paid"`
	PaidDate       string  `json:"paid_date"`
	ClinicGroupID  uint    `json:"clinic_group_id"`
}

// SplitTreatment computes the compensation drafts for one treatment line.
// The primary practitioner always earns an entry (percentage defaults to 100
// when unset); the secondary one earns a second entry only when set with a
// percentage above zero. The percentages are taken as stored, even when they
// sum past 100. QuoteID and ClinicGroupID are filled by the caller.
func SplitTreatment(treatment Treatment, processedAt time.Time) []CompensationEntry {
	primaryPct := treatment.PrimaryPercentage
	if primaryPct == 0 {
		primaryPct = 100
	}

	entries := []CompensationEntry{{
		PractitionerID: treatment.PrimaryPractitionerID,
		TreatmentID:    treatment.ID,
		BaseAmount:     treatment.Cost,
		Percentage:     primaryPct,
		Amount:         SplitAmount(treatment.Cost, primaryPct),
		Month:          int(processedAt.Month()),
		Year:           processedAt.Year(),
	}}

	if treatment.SecondaryPractitionerID != nil && treatment.SecondaryPercentage > 0 {
		entries = append(entries, CompensationEntry{
			PractitionerID: *treatment.SecondaryPractitionerID,
			TreatmentID:    treatment.ID,
			BaseAmount:     treatment.Cost,
			Percentage:     treatment.SecondaryPercentage,
			Amount:         SplitAmount(treatment.Cost, treatment.SecondaryPercentage),
			Month:          int(processedAt.Month()),
			Year:           processedAt.Year(),
		})
	}

	return entries
}
