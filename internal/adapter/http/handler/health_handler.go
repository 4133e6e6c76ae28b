package handler

import (
	"net/http"

	"aura-bank-core/internal/core/ports"
	"aura-bank-core/pkg/breaker"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns a deep health handler: it pings every dependency and
// reports circuit breaker states alongside.
func HealthCheck(breakers *breaker.Registry, checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		payload := gin.H{
			"status":       status,
			"dependencies": deps,
		}
		if breakers != nil {
			payload["breakers"] = breakers.Snapshot()
		}

		c.JSON(httpCode, payload)
	}
}
