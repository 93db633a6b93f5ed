package controllers

import (
	"errors"
	"log"
	"net/http"

	"backoffice-backend/models"
	"backoffice-backend/services"

	"github.com/gin-gonic/gin"
)

type FoodCategoryController struct {
	Svc *services.FoodCategoryService
}

func NewFoodCategoryController(svc *services.FoodCategoryService) *FoodCategoryController {
	return &FoodCategoryController{Svc: svc}
}

// GET /api/food-categories — sorted by display order.
func (ctrl *FoodCategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.Svc.GetAll()
	if err != nil {
		log.Printf("❌ FoodCategory.GetCategories error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
		})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (ctrl *FoodCategoryController) CreateCategory(c *gin.Context) {
	var fc models.FoodCategory
	if err := c.ShouldBindJSON(&fc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ctrl.Svc.Create(&fc); err != nil {
		respondWriteError(c, err, "Food category already exists.")
		return
	}

	c.JSON(http.StatusCreated, fc)
}

// GET /api/food-categories/:id/items — resolves the category's weak links
// into the owning inventory records.
func (ctrl *FoodCategoryController) GetCategoryItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	items, err := ctrl.Svc.ResolveItems(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Food category not found",
			})
			return
		}
		log.Printf("❌ FoodCategory.GetCategoryItems %d error: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (ctrl *FoodCategoryController) UpdateCategory(c *gin.Context) {
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
		log.Printf("❌ FoodCategory.UpdateCategory %d error: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food category updated successfully",
	})
}

func (ctrl *FoodCategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rows, err := ctrl.Svc.Delete(id)
	if err != nil {
		log.Printf("❌ FoodCategory.DeleteCategory %d error: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete food category.",
		})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food category not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food category deleted successfully",
	})
}
