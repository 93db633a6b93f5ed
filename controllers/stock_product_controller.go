package controllers

import (
	"log"
	"net/http"

	"backoffice-backend/models"
	"backoffice-backend/services"

	"github.com/gin-gonic/gin"
)

type StockProductController struct {
	Svc *services.StockProductService
}

func NewStockProductController(svc *services.StockProductService) *StockProductController {
	return &StockProductController{Svc: svc}
}

func (ctrl *StockProductController) GetProducts(c *gin.Context) {
	products, err := ctrl.Svc.GetAll()
	if err != nil {
		log.Printf("❌ StockProduct.GetProducts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
		})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (ctrl *StockProductController) CreateProduct(c *gin.Context) {
	var p models.StockProduct
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ctrl.Svc.Create(&p); err != nil {
		respondWriteError(c, err, "Stock product already exists.")
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (ctrl *StockProductController) UpdateProduct(c *gin.Context) {
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
		log.Printf("❌ StockProduct.UpdateProduct %d error: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Stock product updated successfully",
	})
}

func (ctrl *StockProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rows, err := ctrl.Svc.Delete(id)
	if err != nil {
		log.Printf("❌ StockProduct.DeleteProduct %d error: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete stock product.",
		})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Stock product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Stock product deleted successfully",
	})
}
