package controllers

import (
	"errors"
	"log"
	"net/http"

	"backoffice-backend/models"
	"backoffice-backend/services"

	"github.com/gin-gonic/gin"
)

type RoomAccountController struct {
	Svc *services.RoomAccountService
}

func NewRoomAccountController(svc *services.RoomAccountService) *RoomAccountController {
	return &RoomAccountController{Svc: svc}
}

// ----------------------------------------------------
// GET /api/checkedOutGuests
// ----------------------------------------------------
//
// Fixed error payload: callers only ever see the generic message, the real
// cause goes to the server log.
func (ctrl *RoomAccountController) GetCheckedOutGuests(c *gin.Context) {
	accounts, err := ctrl.Svc.ListCheckedOut()
	if err != nil {
		log.Printf("❌ GetCheckedOutGuests query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch checked-out guests",
		})
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// ----------------------------------------------------
// GET /api/room-accounts
// ----------------------------------------------------
func (ctrl *RoomAccountController) GetRoomAccounts(c *gin.Context) {
	accounts, err := ctrl.Svc.GetAll()
	if err != nil {
		log.Printf("❌ GetRoomAccounts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
		})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// ----------------------------------------------------
// GET /api/room-accounts/:id
// ----------------------------------------------------
func (ctrl *RoomAccountController) GetRoomAccountByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	acc, err := ctrl.Svc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Room account not found",
			})
			return
		}
		log.Printf("❌ GetRoomAccountByID error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
		})
		return
	}
	c.JSON(http.StatusOK, acc)
}

// ----------------------------------------------------
// POST /api/room-accounts
// ----------------------------------------------------
func (ctrl *RoomAccountController) CreateRoomAccount(c *gin.Context) {
	var acc models.RoomAccount
	if err := c.ShouldBindJSON(&acc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ctrl.Svc.Create(&acc); err != nil {
		respondWriteError(c, err, "Room account already exists.")
		return
	}

	c.JSON(http.StatusCreated, acc)
}

// ----------------------------------------------------
// POST /api/room-accounts/:id/checkout
// ----------------------------------------------------
func (ctrl *RoomAccountController) CheckoutRoomAccount(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	acc, err := ctrl.Svc.Checkout(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Room account not found",
			})
		case errors.Is(err, services.ErrNotCheckedIn):
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"code":    "error.notCheckedIn",
				"message": "Cannot check out: guest is not checked in",
			})
		default:
			log.Printf("❌ CheckoutRoomAccount error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Checkout failed",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Checkout completed",
		"account": acc,
	})
}
