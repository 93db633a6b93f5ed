package services

import (
	"errors"
	"testing"

	"backoffice-backend/models"
)

func TestRoomInfoCreate_DefaultsActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomInfoService(db)

	room := models.RoomInfo{RoomNo: "101", RoomType: "Deluxe"}
	if err := svc.Create(&room); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	var got models.RoomInfo
	if err := db.First(&got, room.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got.Active == nil || !*got.Active {
		t.Error("expected active to default to true")
	}
}

func TestRoomInfoCreate_ExplicitInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomInfoService(db)

	inactive := false
	room := models.RoomInfo{RoomNo: "102", Active: &inactive}
	if err := svc.Create(&room); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	var got models.RoomInfo
	if err := db.First(&got, room.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got.Active == nil || *got.Active {
		t.Error("expected active=false to be stored")
	}
}

func TestRoomInfoCreate_RequiresRoomNo(t *testing.T) {
	svc := NewRoomInfoService(newTestDB(t))

	err := svc.Create(&models.RoomInfo{RoomType: "Deluxe"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRoomInfoUpdate_ProtectsServerFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomInfoService(db)

	room := models.RoomInfo{RoomNo: "103"}
	if err := svc.Create(&room); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	fields := map[string]interface{}{
		"room_type": "Suite",
		"id":        999,
	}
	if err := svc.Update(room.ID, fields); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	var got models.RoomInfo
	if err := db.First(&got, room.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got.RoomType != "Suite" {
		t.Errorf("expected room type updated, got %q", got.RoomType)
	}
}
