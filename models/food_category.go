package models

import (
	"time"

	"gorm.io/datatypes"
)

// ImageRef is a stored descriptor for an already-uploaded asset. Upload
// handling itself lives outside this service.
type ImageRef struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type FoodCategory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CategoryName string `gorm:"size:255" json:"categoryName" validate:"required"`
	Slug         string `gorm:"size:255;index" json:"slug"`

	// Ids of FoodInventory records. Weak links: the inventory entity owns the
	// items, deleting one does not cascade here.
	FoodItems datatypes.JSONSlice[uint] `gorm:"column:food_items" json:"foodItems"`

	ProfileImage datatypes.JSONType[ImageRef] `gorm:"column:profile_image" json:"profileImage"`
	BannerImage  datatypes.JSONType[ImageRef] `gorm:"column:banner_image" json:"bannerImage"`

	Order int `gorm:"column:display_order" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
