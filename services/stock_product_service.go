package services

import (
	"strings"

	"backoffice-backend/models"

	"gorm.io/gorm"
)

type StockProductService struct {
	DB *gorm.DB
}

func NewStockProductService(db *gorm.DB) *StockProductService {
	return &StockProductService{DB: db}
}

func (s *StockProductService) Create(p *models.StockProduct) error {
	p.StockCategory = strings.TrimSpace(p.StockCategory)
	p.Quantity = strings.TrimSpace(p.Quantity)
	p.ProductName = strings.TrimSpace(p.ProductName)
	if err := validateModel(p); err != nil {
		return err
	}
	return s.DB.Create(p).Error
}

func (s *StockProductService) GetAll() ([]models.StockProduct, error) {
	var products []models.StockProduct
	err := s.DB.Order("id DESC").Find(&products).Error
	return products, err
}

func (s *StockProductService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")

	return s.DB.Model(&models.StockProduct{}).Where("id = ?", id).Updates(fields).Error
}

func (s *StockProductService) Delete(id uint) (int64, error) {
	result := s.DB.Delete(&models.StockProduct{}, id)
	return result.RowsAffected, result.Error
}
