package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"backoffice-backend/models"

	"gorm.io/gorm"
)

type RoomAccountService struct {
	DB *gorm.DB
}

func NewRoomAccountService(db *gorm.DB) *RoomAccountService {
	return &RoomAccountService{DB: db}
}

// Create opens a ledger record in the checked-in state. Status and both
// timestamps are server-controlled, never taken from the caller.
func (s *RoomAccountService) Create(acc *models.RoomAccount) error {
	acc.GuestName = strings.TrimSpace(acc.GuestName)
	acc.RoomNo = strings.TrimSpace(acc.RoomNo)
	if err := validateModel(acc); err != nil {
		return err
	}

	acc.Status = models.StatusCheckedIn
	now := time.Now().UTC()
	acc.CheckInAt = &now
	acc.CheckOutAt = nil

	return s.DB.Create(acc).Error
}

func (s *RoomAccountService) GetAll() ([]models.RoomAccount, error) {
	var accounts []models.RoomAccount
	err := s.DB.Order("id DESC").Find(&accounts).Error
	return accounts, err
}

func (s *RoomAccountService) GetByID(id uint) (*models.RoomAccount, error) {
	var acc models.RoomAccount
	if err := s.DB.First(&acc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}

// ListCheckedOut returns every ledger record that completed checkout, most
// recent checkout first.
func (s *RoomAccountService) ListCheckedOut() ([]models.RoomAccount, error) {
	// Non-nil so an empty result serializes as [] rather than null.
	accounts := []models.RoomAccount{}
	err := s.DB.
		Where("status = ?", models.StatusCheckedOut).
		Order("check_out_at DESC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Checkout moves a checked-in record to checked-out and stamps the checkout
// time. The transition is one-way; any other starting status is rejected.
func (s *RoomAccountService) Checkout(id uint) (*models.RoomAccount, error) {
	var acc models.RoomAccount

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&acc, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if acc.Status != models.StatusCheckedIn {
			return ErrNotCheckedIn
		}

		now := time.Now().UTC()
		if err := tx.Model(&acc).Updates(map[string]interface{}{
			"status":       models.StatusCheckedOut,
			"check_out_at": now,
		}).Error; err != nil {
			return err
		}

		acc.Status = models.StatusCheckedOut
		acc.CheckOutAt = &now
		return nil
	})
	if err != nil {
		log.Printf("RoomAccountService.Checkout id=%d err=%v", id, err)
		return nil, err
	}
	return &acc, nil
}
