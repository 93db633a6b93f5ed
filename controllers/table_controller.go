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

type TableController struct {
	Svc *services.TableService
}

func NewTableController(svc *services.TableService) *TableController {
	return &TableController{Svc: svc}
}

func (ctrl *TableController) GetTables(c *gin.Context) {
	tables, err := ctrl.Svc.GetAll()
	if err != nil {
		log.Printf("❌ GetTables error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (ctrl *TableController) CreateTable(c *gin.Context) {
	var table models.TableNo
	if err := c.ShouldBindJSON(&table); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ctrl.Svc.Create(&table); err != nil {
		respondWriteError(c, err, fmt.Sprintf("Table '%s' already exists.", table.TableNumber))
		return
	}

	c.JSON(http.StatusCreated, table)
}

func (ctrl *TableController) DeleteTable(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rows, err := ctrl.Svc.Delete(id)
	if err != nil {
		log.Printf("❌ DeleteTable error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete table")
		return
	}
	if rows == 0 {
		utils.JSONError(c, http.StatusNotFound, "Table not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Table deleted"})
}
