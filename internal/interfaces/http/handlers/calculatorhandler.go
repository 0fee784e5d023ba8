package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pact-recycling/pact/internal/application/membership/dto"
	"github.com/pact-recycling/pact/internal/application/membership/usecases"
	"github.com/pact-recycling/pact/internal/shared/errors"
	"github.com/pact-recycling/pact/internal/shared/logger"
	"github.com/pact-recycling/pact/internal/shared/utils"
)

type redistributeUseCase interface {
	Execute(ctx context.Context, cmd usecases.RedistributeCommand) (*dto.RedistributeResultDTO, error)
}

// CalculatorHandler exposes the slot redistribution calculator. It is a
// pure computation endpoint; no member state is modified.
type CalculatorHandler struct {
	redistributeUC redistributeUseCase
	logger         logger.Interface
}

func NewCalculatorHandler(redistributeUC redistributeUseCase) *CalculatorHandler {
	return &CalculatorHandler{
		redistributeUC: redistributeUC,
		logger:         logger.NewLogger(),
	}
}

type RedistributeRequest struct {
	Changed  string             `json:"changed" binding:"required,program"`
	NewValue float64            `json:"new_value"`
	Values   map[string]float64 `json:"values" binding:"required"`
	Touched  []string           `json:"touched" binding:"omitempty,dive,program"`
}

func (h *CalculatorHandler) Redistribute(c *gin.Context) {
	memberID, err := parseMemberID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RedistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for redistribute", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.RedistributeCommand{
		MemberID: memberID,
		Changed:  req.Changed,
		NewValue: req.NewValue,
		Values:   req.Values,
		Touched:  req.Touched,
	}

	result, err := h.redistributeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Slots redistributed successfully", result)
}
