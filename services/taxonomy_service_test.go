package services

import (
	"errors"
	"testing"

	"backoffice-backend/models"
	"backoffice-backend/utils"
)

func TestCategoryTypeCreate_TrimsBeforeStore(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryTypeService(db)

	ct := models.CategoryType{Name: "  Lounge  "}
	if err := svc.Create(&ct); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	var got models.CategoryType
	if err := db.First(&got, ct.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got.Name != "Lounge" {
		t.Errorf("expected stored name %q, got %q", "Lounge", got.Name)
	}
}

func TestCategoryTypeCreate_DuplicateAfterNormalization(t *testing.T) {
	svc := NewCategoryTypeService(newTestDB(t))

	if err := svc.Create(&models.CategoryType{Name: "  Lounge  "}); err != nil {
		t.Fatalf("first Create() unexpected error: %v", err)
	}

	err := svc.Create(&models.CategoryType{Name: "Lounge"})
	if !utils.IsDuplicateEntry(err) {
		t.Errorf("expected duplicate-entry error, got %v", err)
	}

	// A different value still goes through.
	if err := svc.Create(&models.CategoryType{Name: "Kitchen"}); err != nil {
		t.Errorf("distinct name rejected: %v", err)
	}
}

func TestCategoryTypeCreate_RequiresName(t *testing.T) {
	svc := NewCategoryTypeService(newTestDB(t))

	err := svc.Create(&models.CategoryType{Name: "   "})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestQuantityTypeCreate_UniqueAndTrimmed(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuantityTypeService(db)

	if err := svc.Create(&models.FoodQuantityType{Name: " Litre "}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	err := svc.Create(&models.FoodQuantityType{Name: "Litre"})
	if !utils.IsDuplicateEntry(err) {
		t.Errorf("expected duplicate-entry error, got %v", err)
	}

	var got models.FoodQuantityType
	if err := db.Where("name = ?", "Litre").First(&got).Error; err != nil {
		t.Errorf("trimmed name not stored: %v", err)
	}
}

func TestTableCreate_UniqueNumber(t *testing.T) {
	svc := NewTableService(newTestDB(t))

	if err := svc.Create(&models.TableNo{TableNumber: "T1"}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	err := svc.Create(&models.TableNo{TableNumber: " T1 "})
	if !utils.IsDuplicateEntry(err) {
		t.Errorf("expected duplicate-entry error, got %v", err)
	}

	var verr *ValidationError
	if err := svc.Create(&models.TableNo{TableNumber: ""}); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for empty table number, got %v", err)
	}
}
