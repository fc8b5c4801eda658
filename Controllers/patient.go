package Controllers

import (
	"DentaDesk/Models"
	"net/http"

	"github.com/gin-gonic/gin"
)

func FetchPatients(c *gin.Context) {
	db := getScopedDB(c)
	var patients []Models.Patient
	if err := db.Model(&Models.Patient{}).Preload("TreatmentPlans").Find(&patients).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func CreatePatient(c *gin.Context) {
	var input Models.Patient
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clinicGroupID, exists := c.Get("clinicGroupID")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: Clinic Group Not Set"})
		return
	}
	input.ClinicGroupID = clinicGroupID.(uint)

	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Patient Created Successfully",
	})
}

func UpdatePatient(c *gin.Context) {
	var input Models.Patient
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Patient Updated Successfully",
	})
}

func DeletePatient(c *gin.Context) {
	var input struct {
		PatientID uint `json:"patient_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.Patient{}, "id = ?", input.PatientID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Patient Deleted Successfully",
	})
}
