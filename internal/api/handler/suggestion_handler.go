package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"careflow/backend/internal/dto"
	"careflow/backend/internal/service"
	"careflow/backend/pkg/response"
)

// SuggestionHandler AI 建议模块 HTTP 处理器
type SuggestionHandler struct {
	suggestionSvc service.SuggestionService
}

// NewSuggestionHandler 创建 SuggestionHandler
func NewSuggestionHandler(suggestionSvc service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionSvc: suggestionSvc}
}

// SuggestCaregiver 护理员匹配建议
// POST /api/v1/suggestions/caregiver
func (h *SuggestionHandler) SuggestCaregiver(c *gin.Context) {
	var req dto.CaregiverSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.suggestionSvc.SuggestCaregiver(c.Request.Context(), &req)
	if err != nil {
		h.handleSuggestionError(c, err)
		return
	}

	response.OK(c, result)
}

// OptimizeRoutes 路线优化建议
// POST /api/v1/suggestions/routes
func (h *SuggestionHandler) OptimizeRoutes(c *gin.Context) {
	var req dto.RouteOptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.suggestionSvc.OptimizeRoutes(c.Request.Context(), &req)
	if err != nil {
		h.handleSuggestionError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *SuggestionHandler) handleSuggestionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClientNotFound):
		response.NotFound(c, 11001, "客户不存在")
	case errors.Is(err, service.ErrNoCandidates):
		response.BadRequest(c, 19001, "无可用护理员候选人")
	case errors.Is(err, service.ErrAIUnavailable):
		response.BadGateway(c, 19002, "AI 服务不可用，请稍后重试")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/suggestion_handler.go
