package services

import (
	"strings"

	"backoffice-backend/models"

	"gorm.io/gorm"
)

type CategoryTypeService struct {
	DB *gorm.DB
}

func NewCategoryTypeService(db *gorm.DB) *CategoryTypeService {
	return &CategoryTypeService{DB: db}
}

// Create trims the name before the unique check so "  Lounge  " and "Lounge"
// collide on the same index entry.
func (s *CategoryTypeService) Create(ct *models.CategoryType) error {
	ct.Name = strings.TrimSpace(ct.Name)
	if err := validateModel(ct); err != nil {
		return err
	}
	return s.DB.Create(ct).Error
}

func (s *CategoryTypeService) GetAll() ([]models.CategoryType, error) {
	var types []models.CategoryType
	err := s.DB.Order("name ASC").Find(&types).Error
	return types, err
}

func (s *CategoryTypeService) Delete(id uint) (int64, error) {
	result := s.DB.Delete(&models.CategoryType{}, id)
	return result.RowsAffected, result.Error
}
