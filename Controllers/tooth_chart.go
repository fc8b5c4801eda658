package Controllers

import (
	"DentaDesk/Models"
	"net/http"

	"github.com/gin-gonic/gin"
)

func FetchToothChart(c *gin.Context) {
	var input struct {
		PatientID uint `json:"patient_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var records []Models.ToothRecord
	if err := Models.DB.Model(&Models.ToothRecord{}).Where("patient_id = ?", input.PatientID).Order("tooth_code").Find(&records).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func AddToothRecord(c *gin.Context) {
	var input Models.ToothRecord
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var patient Models.Patient
	if err := Models.DB.Model(&Models.Patient{}).Where("id = ?", input.PatientID).First(&patient).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient not found"})
		return
	}

	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Tooth Record Created Successfully",
	})
}

func EditToothRecord(c *gin.Context) {
	var input Models.ToothRecord
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Tooth Record Edited Successfully",
	})
}

func DeleteToothRecord(c *gin.Context) {
	var input struct {
		ToothRecordID uint `json:"tooth_record_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.ToothRecord{}, "id = ?", input.ToothRecordID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Tooth Record Deleted Successfully",
	})
}
