package controllers

import (
	"fmt"
	"log"
	"net/http"

	"backoffice-backend/models"
	"backoffice-backend/services"
	"backoffice-backend/utils"

	"github.com/gin-gonic/gin"
)

type QuantityTypeController struct {
	Svc *services.QuantityTypeService
}

func NewQuantityTypeController(svc *services.QuantityTypeService) *QuantityTypeController {
	return &QuantityTypeController{Svc: svc}
}

func (ctrl *QuantityTypeController) GetQuantityTypes(c *gin.Context) {
	types, err := ctrl.Svc.GetAll()
	if err != nil {
		log.Printf("❌ GetQuantityTypes error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, types)
}

func (ctrl *QuantityTypeController) CreateQuantityType(c *gin.Context) {
	var qt models.FoodQuantityType
	if err := c.ShouldBindJSON(&qt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ctrl.Svc.Create(&qt); err != nil {
		respondWriteError(c, err, fmt.Sprintf("Quantity type '%s' already exists.", qt.Name))
		return
	}

	c.JSON(http.StatusCreated, qt)
}

func (ctrl *QuantityTypeController) DeleteQuantityType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rows, err := ctrl.Svc.Delete(id)
	if err != nil {
		log.Printf("❌ DeleteQuantityType error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete quantity type")
		return
	}
	if rows == 0 {
		utils.JSONError(c, http.StatusNotFound, "Quantity type not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Quantity type deleted"})
}
