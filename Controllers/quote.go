package Controllers

import (
	"DentaDesk/Models"
	"DentaDesk/SSE"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// quoteNumberAttempts bounds the retry loop around the non-atomic quote
// numbering read. The unique index on quotes.number decides the winner when
// two quotes for the same year race.
const quoteNumberAttempts = 3

// CreateQuote materializes a quote from a treatment plan: it sums the plan's
// line costs into a snapshot total, takes the next number for the current
// year and persists the quote as quoted/unpaid.
func CreateQuote(c *gin.Context) {
	var input struct {
		TreatmentPlanID uint `json:"treatment_plan_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	year := time.Now().Year()

	for attempt := 0; attempt < quoteNumberAttempts; attempt++ {
		tx := Models.DB.Begin()

		var plan Models.TreatmentPlan
		if err := tx.Model(&Models.TreatmentPlan{}).Where("id = ?", input.TreatmentPlanID).First(&plan).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Treatment plan not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var treatments []Models.Treatment
		if err := tx.Model(&Models.Treatment{}).Where("treatment_plan_id = ?", plan.ID).Find(&treatments).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// A plan with no lines still quotes, at zero.
		var total int64
		for _, treatment := range treatments {
			total += treatment.Cost
		}

		number, err := Models.NextQuoteNumber(tx, year)
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		quote := Models.Quote{
			TreatmentPlanID: plan.ID,
			PatientID:       plan.PatientID,
			Number:          number,
			Total:           total,
			Status:          Models.QuoteStatusQuoted,
			PaymentStatus:   Models.PaymentStatusUnpaid,
			ClinicGroupID:   plan.ClinicGroupID,
		}

		if err := tx.Create(&quote).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the numbering race, recount and try again
				log.Printf("quote number %s already taken, retrying", number)
				continue
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		SSE.Broadcaster.Broadcast("refresh")
		c.JSON(http.StatusOK, gin.H{
			"quote_id": quote.ID,
			"number":   quote.Number,
			"total":    quote.Total,
		})
		return
	}

	c.JSON(http.StatusConflict, gin.H{"error": "Quote number conflict, please retry"})
}

// UpdateQuotePaymentStatus drives the unpaid/paid state machine. The new
// status is always persisted; compensation fan-out happens only on a genuine
// unpaid-to-paid edge, checked against the previous status inside the same
// transaction, so marking an already paid quote paid again writes nothing new.
func UpdateQuotePaymentStatus(c *gin.Context) {
	var input struct {
		QuoteID       uint   `json:"quote_id"`
		PaymentStatus string `json:"payment_status"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.PaymentStatus != Models.PaymentStatusUnpaid && input.PaymentStatus != Models.PaymentStatusPaid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unrecognized payment status"})
		return
	}

	tx := Models.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var quote Models.Quote
	if err := Models.LockForUpdate(tx).Model(&Models.Quote{}).Where("id = ?", input.QuoteID).First(&quote).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	previousStatus := quote.PaymentStatus
	fanOut := input.PaymentStatus == Models.PaymentStatusPaid && previousStatus != Models.PaymentStatusPaid

	updates := map[string]interface{}{"payment_status": input.PaymentStatus}
	if fanOut {
		updates["payment_reference"] = uuid.NewString()
	}

	if err := tx.Model(&Models.Quote{}).Where("id = ?", quote.ID).Updates(updates).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fanOut {
		var treatments []Models.Treatment
		if err := tx.Model(&Models.Treatment{}).Where("treatment_plan_id = ?", quote.TreatmentPlanID).Find(&treatments).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Fiscal month/year come from the processing date, not the quote's
		processedAt := time.Now()
		for _, treatment := range treatments {
			for _, entry := range Models.SplitTreatment(treatment, processedAt) {
				entry.QuoteID = quote.ID
				entry.ClinicGroupID = quote.ClinicGroupID
				if err := tx.Create(&entry).Error; err != nil {
					tx.Rollback()
					c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to record compensation"})
					return
				}
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Payment Status Updated"})
}

// AcceptQuote moves a quote's lifecycle status to accepted and stamps the
// acceptance date. Payment state is untouched.
func AcceptQuote(c *gin.Context) {
	var input struct {
		QuoteID uint `json:"quote_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var quote Models.Quote
	if err := Models.DB.Model(&Models.Quote{}).Where("id = ?", input.QuoteID).First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"status":          Models.QuoteStatusAccepted,
		"acceptance_date": time.Now().Format("2006-01-02"),
	}
	if err := Models.DB.Model(&Models.Quote{}).Where("id = ?", quote.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Quote Accepted"})
}

func FetchQuotes(c *gin.Context) {
	db := getScopedDB(c)
	var quotes []Models.Quote
	if err := db.Model(&Models.Quote{}).Find(&quotes).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func FetchPatientQuotes(c *gin.Context) {
	var input struct {
		PatientID uint `json:"patient_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var quotes []Models.Quote
	if err := Models.DB.Model(&Models.Quote{}).Where("patient_id = ?", input.PatientID).Find(&quotes).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quotes)
}
