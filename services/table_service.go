package services

import (
	"strings"

	"backoffice-backend/models"

	"gorm.io/gorm"
)

type TableService struct {
	DB *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{DB: db}
}

func (s *TableService) Create(table *models.TableNo) error {
	table.TableNumber = strings.TrimSpace(table.TableNumber)
	if err := validateModel(table); err != nil {
		return err
	}
	return s.DB.Create(table).Error
}

func (s *TableService) GetAll() ([]models.TableNo, error) {
	var tables []models.TableNo
	err := s.DB.Order("table_number ASC").Find(&tables).Error
	return tables, err
}

func (s *TableService) Delete(id uint) (int64, error) {
	result := s.DB.Delete(&models.TableNo{}, id)
	return result.RowsAffected, result.Error
}
