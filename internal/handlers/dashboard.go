package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/upstream"
)

// Dashboard serves the sub-admin counter card set.
func Dashboard(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "dashboard")

		counts, err := client.SubDashboardCounts(c.Request.Context())
		if err != nil {
			respondUpstream(c, "dashboard", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": counts})
	}
}

// DashboardAll serves the platform-wide counters.
func DashboardAll(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "dashboard-all")

		counts, err := client.AllDashboardCounts(c.Request.Context())
		if err != nil {
			respondUpstream(c, "dashboard-all", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": counts})
	}
}
