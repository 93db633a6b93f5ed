package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"backoffice-backend/services"
	"backoffice-backend/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads the :id route parameter. Returns 0 and false after
// writing a 400 when it is not a positive integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ID supplied",
		})
		return 0, false
	}
	return uint(id), true
}

// respondWriteError maps a service write error onto the response contract:
// validation -> 400 with field details, unique collision -> 409 with
// conflictMsg, anything else -> 500 with the cause logged but not leaked.
func respondWriteError(c *gin.Context, err error, conflictMsg string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": verr.Fields,
		})
	case utils.IsDuplicateEntry(err):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": conflictMsg,
		})
	default:
		log.Printf("❌ DB ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
		})
	}
}
