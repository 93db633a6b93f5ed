package services

import (
	"strings"

	"backoffice-backend/models"

	"gorm.io/gorm"
)

type QuantityTypeService struct {
	DB *gorm.DB
}

func NewQuantityTypeService(db *gorm.DB) *QuantityTypeService {
	return &QuantityTypeService{DB: db}
}

func (s *QuantityTypeService) Create(qt *models.FoodQuantityType) error {
	qt.Name = strings.TrimSpace(qt.Name)
	if err := validateModel(qt); err != nil {
		return err
	}
	return s.DB.Create(qt).Error
}

func (s *QuantityTypeService) GetAll() ([]models.FoodQuantityType, error) {
	var types []models.FoodQuantityType
	err := s.DB.Order("name ASC").Find(&types).Error
	return types, err
}

func (s *QuantityTypeService) Delete(id uint) (int64, error) {
	result := s.DB.Delete(&models.FoodQuantityType{}, id)
	return result.RowsAffected, result.Error
}
