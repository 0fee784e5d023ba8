package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pact-recycling/pact/internal/shared/errors"
	"github.com/pact-recycling/pact/internal/shared/logger"
	"github.com/pact-recycling/pact/internal/shared/utils"
)

type getViewModeUseCase interface {
	Execute(ctx context.Context) (string, error)
}

type setViewModeUseCase interface {
	Execute(ctx context.Context, mode string) error
}

type PreferenceHandler struct {
	getViewModeUC getViewModeUseCase
	setViewModeUC setViewModeUseCase
	logger        logger.Interface
}

func NewPreferenceHandler(getViewModeUC getViewModeUseCase, setViewModeUC setViewModeUseCase) *PreferenceHandler {
	return &PreferenceHandler{
		getViewModeUC: getViewModeUC,
		setViewModeUC: setViewModeUC,
		logger:        logger.NewLogger(),
	}
}

type SetViewModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=member admin"`
}

type ViewModeResponse struct {
	Mode string `json:"mode"`
}

func (h *PreferenceHandler) GetViewMode(c *gin.Context) {
	mode, err := h.getViewModeUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "View mode retrieved successfully", ViewModeResponse{Mode: mode})
}

func (h *PreferenceHandler) SetViewMode(c *gin.Context) {
	var req SetViewModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set view mode", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := h.setViewModeUC.Execute(c.Request.Context(), req.Mode); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "View mode updated successfully", ViewModeResponse{Mode: req.Mode})
}
