package controllers

import (
	"log"
	"net/http"

	"backoffice-backend/models"
	"backoffice-backend/services"
	"backoffice-backend/utils"

	"github.com/gin-gonic/gin"
)

type VendorController struct {
	Svc *services.VendorService
}

func NewVendorController(svc *services.VendorService) *VendorController {
	return &VendorController{Svc: svc}
}

// GET /api/vendors — sorted by display order.
func (ctrl *VendorController) GetVendors(c *gin.Context) {
	groups, err := ctrl.Svc.GetAll()
	if err != nil {
		log.Printf("❌ Vendor.GetVendors error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (ctrl *VendorController) CreateVendorGroup(c *gin.Context) {
	var group models.VendorGroup
	if err := c.ShouldBindJSON(&group); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ctrl.Svc.Create(&group); err != nil {
		respondWriteError(c, err, "Vendor group already exists.")
		return
	}

	c.JSON(http.StatusCreated, group)
}

func (ctrl *VendorController) UpdateVendorGroup(c *gin.Context) {
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
		log.Printf("❌ Vendor.UpdateVendorGroup %d error: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Vendor group updated successfully",
	})
}

func (ctrl *VendorController) DeleteVendorGroup(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rows, err := ctrl.Svc.Delete(id)
	if err != nil {
		log.Printf("❌ Vendor.DeleteVendorGroup %d error: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete vendor group")
		return
	}
	if rows == 0 {
		utils.JSONError(c, http.StatusNotFound, "Vendor group not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Vendor group deleted"})
}
