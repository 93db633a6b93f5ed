package services

import (
	"strings"

	"backoffice-backend/models"

	"gorm.io/gorm"
)

type VendorService struct {
	DB *gorm.DB
}

func NewVendorService(db *gorm.DB) *VendorService {
	return &VendorService{DB: db}
}

func (s *VendorService) Create(group *models.VendorGroup) error {
	for i := range group.Vendors {
		group.Vendors[i].VendorName = strings.TrimSpace(group.Vendors[i].VendorName)
		group.Vendors[i].VendorCallNo1 = strings.TrimSpace(group.Vendors[i].VendorCallNo1)
	}
	if err := validateModel(group); err != nil {
		return err
	}
	return s.DB.Create(group).Error
}

// GetAll returns vendor groups in display order.
func (s *VendorService) GetAll() ([]models.VendorGroup, error) {
	var groups []models.VendorGroup
	err := s.DB.Order("display_order ASC, id ASC").Find(&groups).Error
	return groups, err
}

func (s *VendorService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")

	return s.DB.Model(&models.VendorGroup{}).Where("id = ?", id).Updates(fields).Error
}

func (s *VendorService) Delete(id uint) (int64, error) {
	result := s.DB.Delete(&models.VendorGroup{}, id)
	return result.RowsAffected, result.Error
}
