package models

import "time"

type StockProduct struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	StockCategory string    `gorm:"size:150" json:"stockCategory" validate:"required"`
	Quantity      string    `gorm:"size:100" json:"quantity" validate:"required"`
	ProductName   string    `gorm:"size:255" json:"productName" validate:"required"`
	OpeningStock  *float64  `gorm:"column:opening_stock" json:"openingStock" validate:"required"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
