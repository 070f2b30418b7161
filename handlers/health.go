package handlers

import (
	"net/http"

	"bizschool/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler returns the latest collaborator health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
