package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pact-recycling/pact/internal/application/membership/usecases"
	"github.com/pact-recycling/pact/internal/shared/errors"
	"github.com/pact-recycling/pact/internal/shared/logger"
	"github.com/pact-recycling/pact/internal/shared/utils"
)

type MemberHandler struct {
	listMembersUC      listMembersUseCase
	getMemberUC        getMemberUseCase
	changeTierUC       changeTierUseCase
	changeEnrollmentUC changeEnrollmentUseCase
	recordQuantityUC   recordQuantityUseCase
	getHistoryUC       getMemberHistoryUseCase
	logger             logger.Interface
}

func NewMemberHandler(
	listMembersUC listMembersUseCase,
	getMemberUC getMemberUseCase,
	changeTierUC changeTierUseCase,
	changeEnrollmentUC changeEnrollmentUseCase,
	recordQuantityUC recordQuantityUseCase,
	getHistoryUC getMemberHistoryUseCase,
) *MemberHandler {
	return &MemberHandler{
		listMembersUC:      listMembersUC,
		getMemberUC:        getMemberUC,
		changeTierUC:       changeTierUC,
		changeEnrollmentUC: changeEnrollmentUC,
		recordQuantityUC:   recordQuantityUC,
		getHistoryUC:       getHistoryUC,
		logger:             logger.NewLogger(),
	}
}

type ChangeTierRequest struct {
	Tier      string `json:"tier" binding:"required"`
	Confirmed bool   `json:"confirmed"`
}

type ChangeEnrollmentRequest struct {
	Programs  []string `json:"programs" binding:"required,min=2,dive,program"`
	Confirmed bool     `json:"confirmed"`
}

type RecordQuantityRequest struct {
	Program string  `json:"program" binding:"required,program"`
	Units   float64 `json:"units" binding:"gte=0"`
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	result, err := h.listMembersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Members retrieved successfully", result)
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	memberID, err := parseMemberID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getMemberUC.Execute(c.Request.Context(), memberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member retrieved successfully", result)
}

func (h *MemberHandler) ChangeTier(c *gin.Context) {
	memberID, err := parseMemberID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change tier", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.ChangeTierCommand{
		MemberID:  memberID,
		Tier:      req.Tier,
		Confirmed: req.Confirmed,
	}

	result, err := h.changeTierUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member tier updated successfully", result)
}

func (h *MemberHandler) ChangeEnrollment(c *gin.Context) {
	memberID, err := parseMemberID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change enrollment", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.ChangeEnrollmentCommand{
		MemberID:  memberID,
		Programs:  req.Programs,
		Confirmed: req.Confirmed,
	}

	result, err := h.changeEnrollmentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member enrollment updated successfully", result)
}

func (h *MemberHandler) RecordQuantity(c *gin.Context) {
	memberID, err := parseMemberID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RecordQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record quantity", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.RecordQuantityCommand{
		MemberID: memberID,
		Program:  req.Program,
		Units:    req.Units,
	}

	result, err := h.recordQuantityUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Processed quantity recorded successfully", result)
}

func (h *MemberHandler) GetHistory(c *gin.Context) {
	memberID, err := parseMemberID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getHistoryUC.Execute(c.Request.Context(), memberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member history retrieved successfully", result)
}

func parseMemberID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid member ID", idStr)
	}
	return uint(id), nil
}
