package Controllers

import (
	"DentaDesk/Models"
	"DentaDesk/SSE"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func validateTreatmentInput(treatment Models.Treatment) error {
	if treatment.Cost < 0 {
		return errors.New("treatment cost must not be negative")
	}
	if treatment.PrimaryPractitionerID == 0 {
		return errors.New("primary practitioner is required")
	}
	if treatment.PrimaryPercentage < 0 || treatment.SecondaryPercentage < 0 {
		return errors.New("percentages must not be negative")
	}
	return nil
}

// CreateTreatmentPlan persists a plan with its treatment lines in one
// transaction. Percentages above a combined 100 are accepted as stored;
// over-allocation is practice policy, not an input error.
func CreateTreatmentPlan(c *gin.Context) {
	var input Models.TreatmentPlan

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, treatment := range input.Treatments {
		if err := validateTreatmentInput(treatment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if input.Status == "" {
		input.Status = Models.PlanStatusDraft
	}

	clinicGroupID, exists := c.Get("clinicGroupID")
	if exists {
		input.ClinicGroupID = clinicGroupID.(uint)
	}

	tx := Models.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var patient Models.Patient
	if err := tx.Model(&Models.Patient{}).Where("id = ?", input.PatientID).First(&patient).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient not found"})
		return
	}

	if err := tx.Create(&input).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Treatment Plan Created Successfully", "treatment_plan_id": input.ID})
}

func FetchPatientTreatmentPlans(c *gin.Context) {
	var input struct {
		PatientID uint `json:"patient_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var plans []Models.TreatmentPlan
	if err := Models.DB.Model(&Models.TreatmentPlan{}).Where("patient_id = ?", input.PatientID).Preload("Treatments").Find(&plans).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

func SetTreatmentPlanStatus(c *gin.Context) {
	var input struct {
		TreatmentPlanID uint   `json:"treatment_plan_id"`
		Status          string `json:"status"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Status != Models.PlanStatusDraft && input.Status != Models.PlanStatusActive && input.Status != Models.PlanStatusClosed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unrecognized plan status"})
		return
	}

	var plan Models.TreatmentPlan
	if err := Models.DB.Model(&Models.TreatmentPlan{}).Where("id = ?", input.TreatmentPlanID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Treatment plan not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Models.DB.Model(&Models.TreatmentPlan{}).Where("id = ?", plan.ID).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Status Updated"})
}

// AddTreatment appends a line to a plan that is not closed yet.
func AddTreatment(c *gin.Context) {
	var input Models.Treatment

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateTreatmentInput(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var plan Models.TreatmentPlan
	if err := Models.DB.Model(&Models.TreatmentPlan{}).Where("id = ?", input.TreatmentPlanID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Treatment plan not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if plan.Status == Models.PlanStatusClosed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Treatment plan is closed"})
		return
	}

	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Treatment Added Successfully", "treatment_id": input.ID})
}

func EditTreatment(c *gin.Context) {
	var input Models.Treatment

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateTreatmentInput(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Models.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Treatment Edited Successfully"})
}

func MarkTreatmentAsCompleted(c *gin.Context) {
	var input struct {
		TreatmentID uint `json:"treatment_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"is_completed":    true,
		"completion_date": time.Now().Format("2006-01-02"),
	}
	if err := Models.DB.Model(&Models.Treatment{}).Where("id = ?", input.TreatmentID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Marked Successfully"})
}
