package services

import (
	"errors"
	"strings"

	"backoffice-backend/models"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type FoodCategoryService struct {
	DB *gorm.DB
}

func NewFoodCategoryService(db *gorm.DB) *FoodCategoryService {
	return &FoodCategoryService{DB: db}
}

func (s *FoodCategoryService) Create(fc *models.FoodCategory) error {
	fc.CategoryName = strings.TrimSpace(fc.CategoryName)
	fc.Slug = strings.TrimSpace(fc.Slug)
	if fc.Slug == "" && fc.CategoryName != "" {
		fc.Slug = slug.Make(fc.CategoryName)
	}
	if err := validateModel(fc); err != nil {
		return err
	}
	return s.DB.Create(fc).Error
}

// GetAll returns categories in display order.
func (s *FoodCategoryService) GetAll() ([]models.FoodCategory, error) {
	var categories []models.FoodCategory
	err := s.DB.Order("display_order ASC, id ASC").Find(&categories).Error
	return categories, err
}

// ResolveItems looks up the inventory records a category points at. The ids
// are weak links, so ids whose item was deleted are silently skipped rather
// than treated as an error.
func (s *FoodCategoryService) ResolveItems(id uint) ([]models.FoodInventory, error) {
	var fc models.FoodCategory
	if err := s.DB.First(&fc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items := []models.FoodInventory{}
	if len(fc.FoodItems) == 0 {
		return items, nil
	}
	if err := s.DB.Where("id IN ?", []uint(fc.FoodItems)).Find(&items).Error; err != nil {
		return nil, err
	}

	// Keep the category's declared ordering, not the query's.
	byID := make(map[uint]models.FoodInventory, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	ordered := make([]models.FoodInventory, 0, len(items))
	for _, itemID := range fc.FoodItems {
		if item, ok := byID[itemID]; ok {
			ordered = append(ordered, item)
		}
	}
	return ordered, nil
}

func (s *FoodCategoryService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")

	return s.DB.Model(&models.FoodCategory{}).Where("id = ?", id).Updates(fields).Error
}

func (s *FoodCategoryService) Delete(id uint) (int64, error) {
	result := s.DB.Delete(&models.FoodCategory{}, id)
	return result.RowsAffected, result.Error
}
