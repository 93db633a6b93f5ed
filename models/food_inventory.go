package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodInventory is the owning record for an inventory item. FoodCategory
// keeps weak references to these ids only.
type FoodInventory struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ItemName     string         `gorm:"size:255" json:"itemName" validate:"required"`
	CategoryType string         `gorm:"size:150" json:"categoryType"`
	QuantityType string         `gorm:"size:150" json:"quantityType"`
	Price        float64        `json:"price"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
