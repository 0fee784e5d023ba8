package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pact-recycling/pact/internal/shared/logger"
	"github.com/pact-recycling/pact/internal/shared/utils"
)

type exportMembersUseCase interface {
	Execute(ctx context.Context) ([]byte, error)
}

type ExportHandler struct {
	exportUC exportMembersUseCase
	logger   logger.Interface
}

func NewExportHandler(exportUC exportMembersUseCase) *ExportHandler {
	return &ExportHandler{
		exportUC: exportUC,
		logger:   logger.NewLogger(),
	}
}

// ExportMembers streams the full member report as a CSV download.
func (h *ExportHandler) ExportMembers(c *gin.Context) {
	data, err := h.exportUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := fmt.Sprintf("pact-members-%s.csv", time.Now().Format(time.DateOnly))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
