package Controllers

import (
	"DentaDesk/Models"
	"net/http"

	"github.com/gin-gonic/gin"
)

func FetchPriceList(c *gin.Context) {
	db := getScopedDB(c)
	var entries []Models.PriceListEntry
	if err := db.Model(&Models.PriceListEntry{}).Order("code").Find(&entries).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func AddPriceListEntry(c *gin.Context) {
	var input Models.PriceListEntry
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.DefaultPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
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
		"message": "Price List Entry Created Successfully",
	})
}

func EditPriceListEntry(c *gin.Context) {
	var input Models.PriceListEntry
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.DefaultPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}
	if err := Models.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Price List Entry Edited Successfully",
	})
}

func DeletePriceListEntry(c *gin.Context) {
	var input struct {
		PriceListEntryID uint `json:"price_list_entry_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.PriceListEntry{}, "id = ?", input.PriceListEntryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Price List Entry Deleted Successfully",
	})
}
