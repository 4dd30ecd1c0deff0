package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/services"
)

// HealthCheck reports the proxy's own liveness plus whether the upstream
// answers. An unreachable upstream degrades the status but the endpoint
// itself stays 200 so load balancers keep routing to the proxy.
func HealthCheck(c *gin.Context) {
	response := gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"upstream":  "ok",
	}

	if _, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/health", "", nil); apiErr != nil {
		response["status"] = "degraded"
		response["upstream"] = "unreachable"
	}

	c.JSON(http.StatusOK, response)
}
