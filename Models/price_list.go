package Models

import "gorm.io/gorm"

// PriceListEntry is a standard procedure used to prefill treatment lines.
// DefaultPrice is in cents.
type PriceListEntry struct {
	gorm.Model
	Code          string `json:"code"`
	Description   string `json:"description"`
	DefaultPrice  int64  `json:"default_price"`
	ClinicGroupID uint   `json:"clinic_group_id"`
}
