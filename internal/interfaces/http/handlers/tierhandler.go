package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pact-recycling/pact/internal/application/membership/dto"
	"github.com/pact-recycling/pact/internal/shared/logger"
	"github.com/pact-recycling/pact/internal/shared/utils"
)

type listTiersUseCase interface {
	Execute(ctx context.Context) []*dto.TierDTO
}

type TierHandler struct {
	listTiersUC listTiersUseCase
	logger      logger.Interface
}

func NewTierHandler(listTiersUC listTiersUseCase) *TierHandler {
	return &TierHandler{
		listTiersUC: listTiersUC,
		logger:      logger.NewLogger(),
	}
}

func (h *TierHandler) ListTiers(c *gin.Context) {
	result := h.listTiersUC.Execute(c.Request.Context())
	utils.SuccessResponse(c, http.StatusOK, "Tiers retrieved successfully", result)
}
