package controllers

import (
	"fmt"
	"log"
	"net/http"

	"backoffice-backend/models"
	"backoffice-backend/services"

	"github.com/gin-gonic/gin"
)

type RoomInfoController struct {
	Svc *services.RoomInfoService
}

func NewRoomInfoController(svc *services.RoomInfoService) *RoomInfoController {
	return &RoomInfoController{Svc: svc}
}

// ----------------------------------------------------
// 1. Get Rooms (GET /api/rooms)
// ----------------------------------------------------
func (ctrl *RoomInfoController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.Svc.GetAll()
	if err != nil {
		log.Printf("❌ GetRooms error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
		})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Create Room (POST /api/rooms)
// ----------------------------------------------------
func (ctrl *RoomInfoController) CreateRoom(c *gin.Context) {
	var room models.RoomInfo
	if err := c.ShouldBindJSON(&room); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ctrl.Svc.Create(&room); err != nil {
		respondWriteError(c, err, fmt.Sprintf("Room '%s' already exists.", room.RoomNo))
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// 3. Update Room (PATCH /api/rooms/:id)
// ----------------------------------------------------
func (ctrl *RoomInfoController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ctrl.Svc.Update(id, updateData); err != nil {
		log.Printf("❌ Update Error for Room %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room updated successfully",
	})
}

// ----------------------------------------------------
// 4. Delete Room (DELETE /api/rooms/:id)
// ----------------------------------------------------
func (ctrl *RoomInfoController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rows, err := ctrl.Svc.Delete(id)
	if err != nil {
		log.Printf("❌ DB Error during deletion (ID: %d): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete room.",
		})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Room with ID %d not found.", id),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room deleted successfully",
	})
}
