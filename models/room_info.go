package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomInfo is the admin-managed room record. Active defaults to true so a
// freshly created room shows up immediately on the dashboard.
type RoomInfo struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	RoomNo    string         `json:"roomNo" gorm:"column:room_no;size:50" validate:"required"`
	RoomType  string         `json:"roomType" gorm:"column:room_type;size:100"`
	Active    *bool          `json:"active" gorm:"column:active;default:true"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
