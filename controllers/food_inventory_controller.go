package controllers

import (
	"log"
	"net/http"

	"backoffice-backend/models"
	"backoffice-backend/services"

	"github.com/gin-gonic/gin"
)

type FoodInventoryController struct {
	Svc *services.FoodInventoryService
}

func NewFoodInventoryController(svc *services.FoodInventoryService) *FoodInventoryController {
	return &FoodInventoryController{Svc: svc}
}

func (ctrl *FoodInventoryController) GetItems(c *gin.Context) {
	items, err := ctrl.Svc.GetAll()
	if err != nil {
		log.Printf("❌ FoodInventory.GetItems error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ctrl *FoodInventoryController) CreateItem(c *gin.Context) {
	var item models.FoodInventory
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ctrl.Svc.Create(&item); err != nil {
		respondWriteError(c, err, "Inventory item already exists.")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (ctrl *FoodInventoryController) UpdateItem(c *gin.Context) {
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
		log.Printf("❌ FoodInventory.UpdateItem %d error: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Inventory item updated successfully",
	})
}

func (ctrl *FoodInventoryController) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rows, err := ctrl.Svc.Delete(id)
	if err != nil {
		log.Printf("❌ FoodInventory.DeleteItem %d error: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete inventory item.",
		})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Inventory item not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Inventory item deleted successfully",
	})
}
