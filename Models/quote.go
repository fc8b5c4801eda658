package Models

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	QuoteStatusQuoted   = "quoted"
	QuoteStatusAccepted = "accepted"

	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Quote is the numbered, priced proposal derived from a treatment plan.
// Total is a snapshot of the plan's line costs at creation time, in cents.
type Quote struct {
	gorm.Model
	TreatmentPlanID  uint   `json:"treatment_plan_id"`
	PatientID        uint   `json:"patient_id"`
	Number           string `json:"number" gorm:"unique"`
	Total            int64  `json:"total"`
	Status           string `json:"status"`
	PaymentStatus    string `json:"payment_status"`
	AcceptanceDate   string `json:"acceptance_date"`
	PaymentReference string `json:"payment_reference"`
	ClinicGroupID    uint   `json:"clinic_group_id"`
}

// NextQuoteNumber derives the next number for quotes issued in year, as
// PREV<year>/<sequence padded to 4 digits>. The count-then-format read is not
// atomic: the unique index on number is the arbiter, and callers retry on
// gorm.ErrDuplicatedKey.
func NextQuoteNumber(tx *gorm.DB, year int) (string, error) {
	prefix := fmt.Sprintf("PREV%d/", year)
	var count int64
	if err := tx.Model(&Quote{}).Where("number LIKE ?", prefix+"%").Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}

// LockForUpdate takes a row lock on postgres so concurrent payment
// transitions against the same quote serialize. Sqlite (tests) has no FOR
// UPDATE; its single-writer model covers the same guarantee.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
