package Controllers

import (
	"DentaDesk/Models"
	"DentaDesk/SSE"
	"net/http"

	"github.com/gin-gonic/gin"
)

func CreateAppointment(c *gin.Context) {
	var input Models.Appointment
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var practitioner Models.Practitioner
	if err := Models.DB.Model(&Models.Practitioner{}).Where("id = ?", input.PractitionerID).First(&practitioner).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Practitioner not found"})
		return
	}
	input.PractitionerName = practitioner.Name
	input.ClinicGroupID = practitioner.ClinicGroupID

	var patient Models.Patient
	if err := Models.DB.Model(&Models.Patient{}).Where("id = ?", input.PatientID).First(&patient).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient not found"})
		return
	}
	input.PatientName = patient.Name

	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Appointment Created Successfully"})
}

func FetchAppointmentsByPatientID(c *gin.Context) {
	var input struct {
		PatientID uint `json:"patient_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appointments []Models.Appointment
	if err := Models.DB.Model(&Models.Appointment{}).Where("patient_id = ?", input.PatientID).Find(&appointments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func MarkAppointmentAsCompleted(c *gin.Context) {
	var input struct {
		ID uint `json:"ID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Models.DB.Model(&Models.Appointment{}).Where("id = ?", input.ID).Update("is_completed", true).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Marked Successfully"})
}

func DeleteAppointment(c *gin.Context) {
	var input struct {
		ID uint `json:"ID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.Appointment{}, "id = ?", input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Appointment Deleted Successfully"})
}
