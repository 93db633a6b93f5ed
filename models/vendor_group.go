package models

import (
	"time"

	"gorm.io/datatypes"
)

// VendorEntry is one vendor inside a group. Name and the primary call number
// are mandatory per entry.
type VendorEntry struct {
	VendorName    string `json:"vendorName" validate:"required"`
	VendorCallNo1 string `json:"vendorCallNo1" validate:"required"`
	VendorCallNo2 string `json:"vendorCallNo2,omitempty"`
	GstNo         string `json:"gstNo,omitempty"`
}

type VendorGroup struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Vendors datatypes.JSONSlice[VendorEntry] `gorm:"column:vendors" json:"vendors" validate:"required,min=1,dive"`
	Order   *int                             `gorm:"column:display_order" json:"order" validate:"required"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
