package services

import (
	"strings"

	"backoffice-backend/models"

	"gorm.io/gorm"
)

type RoomInfoService struct {
	DB *gorm.DB
}

func NewRoomInfoService(db *gorm.DB) *RoomInfoService {
	return &RoomInfoService{DB: db}
}

func (s *RoomInfoService) Create(room *models.RoomInfo) error {
	room.RoomNo = strings.TrimSpace(room.RoomNo)
	room.RoomType = strings.TrimSpace(room.RoomType)
	if err := validateModel(room); err != nil {
		return err
	}
	return s.DB.Create(room).Error
}

func (s *RoomInfoService) GetAll() ([]models.RoomInfo, error) {
	var rooms []models.RoomInfo
	err := s.DB.Find(&rooms).Error
	return rooms, err
}

func (s *RoomInfoService) Update(id uint, fields map[string]interface{}) error {
	// Protect server-managed columns.
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	return s.DB.Model(&models.RoomInfo{}).Where("id = ?", id).Updates(fields).Error
}

func (s *RoomInfoService) Delete(id uint) (int64, error) {
	result := s.DB.Delete(&models.RoomInfo{}, id)
	return result.RowsAffected, result.Error
}
