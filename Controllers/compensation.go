package Controllers

import (
	"DentaDesk/Models"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FetchCompensationEntries lists the compensation ledger, filtered by any
// combination of fiscal month, fiscal year and practitioner. The stored
// month/year are matched, regardless of the quote's own dates.
func FetchCompensationEntries(c *gin.Context) {
	var input struct {
		Month          *int  `json:"month"`
		Year           *int  `json:"year"`
		PractitionerID *uint `json:"practitioner_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := getScopedDB(c).Model(&Models.CompensationEntry{})
	if input.Month != nil {
		query = query.Where("month = ?", *input.Month)
	}
	if input.Year != nil {
		query = query.Where("year = ?", *input.Year)
	}
	if input.PractitionerID != nil {
		query = query.Where("practitioner_id = ?", *input.PractitionerID)
	}

	var entries []Models.CompensationEntry
	if err := query.Find(&entries).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// MarkCompensationAsPaid settles one ledger entry. The entry's amounts stay
// frozen; only the paid flag and date change.
func MarkCompensationAsPaid(c *gin.Context) {
	var input struct {
		CompensationEntryID uint `json:"compensation_entry_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var entry Models.CompensationEntry
	if err := Models.DB.Model(&Models.CompensationEntry{}).Where("id = ?", input.CompensationEntryID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Compensation entry not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"is_paid":   true,
		"paid_date": time.Now().Format("2006-01-02"),
	}
	if err := Models.DB.Model(&Models.CompensationEntry{}).Where("id = ?", entry.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Marked Successfully"})
}
