package Models

import "gorm.io/gorm"

type InventoryItem struct {
	gorm.Model
	Name          string `json:"name"`
	Unit          string `json:"unit"`
	Quantity      int    `json:"quantity"`
	ReorderLevel  int    `json:"reorder_level"`
	ClinicGroupID uint   `json:"clinic_group_id"`
}
