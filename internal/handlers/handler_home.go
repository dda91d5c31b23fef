package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// home godoc
// @Summary Service banner
// @Description Returns the service name, for uptime probes and humans.
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "payroll-engine-app"})
}
