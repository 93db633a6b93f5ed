package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice-backend/models"
	"backoffice-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newRoomAccountRouter(db *gorm.DB) *gin.Engine {
	ctrl := NewRoomAccountController(services.NewRoomAccountService(db))

	r := gin.New()
	r.GET("/api/checkedOutGuests", ctrl.GetCheckedOutGuests)
	r.POST("/api/room-accounts", ctrl.CreateRoomAccount)
	r.POST("/api/room-accounts/:id/checkout", ctrl.CheckoutRoomAccount)
	return r
}

func TestGetCheckedOutGuests_SortedDescending(t *testing.T) {
	db := newTestDB(t)
	r := newRoomAccountRouter(db)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	earlier := base.Add(-1 * time.Hour)
	seed := []models.RoomAccount{
		{GuestName: "In House", RoomNo: "201", Status: models.StatusCheckedIn},
		{GuestName: "Gone Early", RoomNo: "202", Status: models.StatusCheckedOut, CheckOutAt: &earlier},
		{GuestName: "Gone Late", RoomNo: "203", Status: models.StatusCheckedOut, CheckOutAt: &base},
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/checkedOutGuests", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var accounts []models.RoomAccount
	if err := json.NewDecoder(w.Body).Decode(&accounts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].GuestName != "Gone Late" || accounts[1].GuestName != "Gone Early" {
		t.Errorf("unexpected order: %q then %q", accounts[0].GuestName, accounts[1].GuestName)
	}
	for _, acc := range accounts {
		if acc.Status != models.StatusCheckedOut {
			t.Errorf("unexpected status %q in result", acc.Status)
		}
	}
}

func TestGetCheckedOutGuests_EmptyIsSuccess(t *testing.T) {
	r := newRoomAccountRouter(newTestDB(t))

	req := httptest.NewRequest(http.MethodGet, "/api/checkedOutGuests", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var accounts []models.RoomAccount
	if err := json.NewDecoder(w.Body).Decode(&accounts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("expected empty array, got %d entries", len(accounts))
	}
}

func TestGetCheckedOutGuests_PersistenceFailure(t *testing.T) {
	db := newTestDB(t)
	r := newRoomAccountRouter(db)

	// Force the query to fail.
	if err := db.Migrator().DropTable(&models.RoomAccount{}); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/checkedOutGuests", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if len(response) != 1 || response["error"] != "Failed to fetch checked-out guests" {
		t.Errorf("unexpected error payload: %v", response)
	}
}

func TestCheckoutEndpoint_OneWay(t *testing.T) {
	db := newTestDB(t)
	r := newRoomAccountRouter(db)

	body := bytes.NewBufferString(`{"guestName":"Carol","roomNo":"305"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/room-accounts", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.RoomAccount
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode created account: %v", err)
	}
	if created.Status != models.StatusCheckedIn {
		t.Errorf("expected initial status %q, got %q", models.StatusCheckedIn, created.Status)
	}

	checkout := httptest.NewRequest(http.MethodPost, "/api/room-accounts/1/checkout", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, checkout)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 on checkout, got %d: %s", w.Code, w.Body.String())
	}

	// Second checkout hits the one-way guard.
	checkout = httptest.NewRequest(http.MethodPost, "/api/room-accounts/1/checkout", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, checkout)
	if w.Code != http.StatusConflict {
		t.Errorf("expected status 409 on repeat checkout, got %d", w.Code)
	}
}

func TestCreateRoomAccount_ValidationFailure(t *testing.T) {
	r := newRoomAccountRouter(newTestDB(t))

	body := bytes.NewBufferString(`{"roomNo":"305"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/room-accounts", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
