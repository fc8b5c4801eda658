package Controllers

import (
	"DentaDesk/Models"
	"net/http"

	"github.com/gin-gonic/gin"
)

func FetchInventory(c *gin.Context) {
	db := getScopedDB(c)
	var items []Models.InventoryItem
	if err := db.Model(&Models.InventoryItem{}).Order("name").Find(&items).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func AddInventoryItem(c *gin.Context) {
	var input Models.InventoryItem
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
		"message": "Inventory Item Created Successfully",
	})
}

func EditInventoryItem(c *gin.Context) {
	var input Models.InventoryItem
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory Item Edited Successfully",
	})
}

// AdjustInventoryStock applies a signed delta to an item's quantity. Stock
// never goes below zero.
func AdjustInventoryStock(c *gin.Context) {
	var input struct {
		InventoryItemID uint `json:"inventory_item_id"`
		Delta           int  `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx := Models.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var item Models.InventoryItem
	if err := tx.Model(&Models.InventoryItem{}).Where("id = ?", input.InventoryItemID).First(&item).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}

	if item.Quantity+input.Delta < 0 {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
		return
	}

	item.Quantity += input.Delta
	if err := tx.Save(&item).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock Adjusted Successfully"})
}

func DeleteInventoryItem(c *gin.Context) {
	var input struct {
		InventoryItemID uint `json:"inventory_item_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.InventoryItem{}, "id = ?", input.InventoryItemID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory Item Deleted Successfully",
	})
}
