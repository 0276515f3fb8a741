package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RespondMessage writes the {"message": ...} body every error and
// confirmation response in the API uses.
func RespondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// parseIDParam reads a numeric :id path parameter. A non-numeric id can
// never reference a row, so callers treat ok=false as not found.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
