package services

import (
	"strings"

	"backoffice-backend/models"

	"gorm.io/gorm"
)

type FoodInventoryService struct {
	DB *gorm.DB
}

func NewFoodInventoryService(db *gorm.DB) *FoodInventoryService {
	return &FoodInventoryService{DB: db}
}

func (s *FoodInventoryService) Create(item *models.FoodInventory) error {
	item.ItemName = strings.TrimSpace(item.ItemName)
	item.CategoryType = strings.TrimSpace(item.CategoryType)
	item.QuantityType = strings.TrimSpace(item.QuantityType)
	if err := validateModel(item); err != nil {
		return err
	}
	return s.DB.Create(item).Error
}

func (s *FoodInventoryService) GetAll() ([]models.FoodInventory, error) {
	var items []models.FoodInventory
	err := s.DB.Order("id DESC").Find(&items).Error
	return items, err
}

func (s *FoodInventoryService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	return s.DB.Model(&models.FoodInventory{}).Where("id = ?", id).Updates(fields).Error
}

// Delete soft-deletes the item. Category references are weak links and are
// left as-is: no cascade.
func (s *FoodInventoryService) Delete(id uint) (int64, error) {
	result := s.DB.Delete(&models.FoodInventory{}, id)
	return result.RowsAffected, result.Error
}
