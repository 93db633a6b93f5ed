package models

import "time"

type TableNo struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber string    `gorm:"column:table_number;size:50;uniqueIndex" json:"tableNumber" validate:"required"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
