package models

import (
	"time"
)

// Guest ledger lifecycle. checked-in is the initial state; the only
// transition is checked-in -> checked-out and it is one-way.
const (
	StatusCheckedIn  = "checked-in"
	StatusCheckedOut = "checked-out"
)

// RoomAccount tracks a guest's occupancy and billing status over time.
type RoomAccount struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Weak link to RoomInfo. No FK constraint, no cascade: deleting the room
	// record leaves the ledger history intact.
	RoomInfoID *uint  `gorm:"index;column:room_info_id" json:"roomInfoId,omitempty"`
	RoomNo     string `gorm:"column:room_no;size:50" json:"roomNo"`

	GuestName string `json:"guestName" validate:"required"`

	Status     string     `gorm:"column:status;size:32;index" json:"status"`
	CheckInAt  *time.Time `gorm:"column:check_in_at" json:"checkInAt,omitempty"`
	CheckOutAt *time.Time `gorm:"column:check_out_at" json:"checkOutAt,omitempty"`

	Amount float64 `gorm:"column:amount" json:"amount"`
}
