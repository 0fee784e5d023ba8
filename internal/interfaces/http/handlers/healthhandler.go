package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pact-recycling/pact/internal/shared/utils"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck reports service liveness and database reachability.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := "ok"

	if h.db != nil {
		if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status = "degraded"
		}
	}

	payload := gin.H{
		"status":    status,
		"service":   "pact",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if status != "ok" {
		utils.SuccessResponse(c, http.StatusServiceUnavailable, "Service degraded", payload)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service healthy", payload)
}
