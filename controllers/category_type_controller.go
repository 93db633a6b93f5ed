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

type CategoryTypeController struct {
	Svc *services.CategoryTypeService
}

func NewCategoryTypeController(svc *services.CategoryTypeService) *CategoryTypeController {
	return &CategoryTypeController{Svc: svc}
}

func (ctrl *CategoryTypeController) GetCategoryTypes(c *gin.Context) {
	types, err := ctrl.Svc.GetAll()
	if err != nil {
		log.Printf("❌ GetCategoryTypes error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, types)
}

func (ctrl *CategoryTypeController) CreateCategoryType(c *gin.Context) {
	var ct models.CategoryType
	if err := c.ShouldBindJSON(&ct); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ctrl.Svc.Create(&ct); err != nil {
		respondWriteError(c, err, fmt.Sprintf("Category type '%s' already exists.", ct.Name))
		return
	}

	c.JSON(http.StatusCreated, ct)
}

func (ctrl *CategoryTypeController) DeleteCategoryType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rows, err := ctrl.Svc.Delete(id)
	if err != nil {
		log.Printf("❌ DeleteCategoryType error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete category type")
		return
	}
	if rows == 0 {
		utils.JSONError(c, http.StatusNotFound, "Category type not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Category type deleted"})
}
