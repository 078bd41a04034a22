package dto

import "careflow/backend/internal/model"

// ── 接送模块 DTO ──

// CreateTripRequest 创建行程请求
type CreateTripRequest struct {
	ClientID    int    `json:"client_id"    binding:"required,min=1"`
	DriverID    int    `json:"driver_id"    binding:"required,min=1"`
	Date        string `json:"date"         binding:"required,datetime=2006-01-02"`
	PickupTime  string `json:"pickup_time"  binding:"omitempty,datetime=15:04"`
	DropoffTime string `json:"dropoff_time" binding:"omitempty,datetime=15:04"`
	Route       string `json:"route"        binding:"omitempty,max=200"`
	Status      string `json:"status"       binding:"omitempty,oneof=Scheduled 'In Progress' Completed Canceled"`
}

// UpdateTripRequest 更新行程请求
type UpdateTripRequest struct {
	ClientID    *int    `json:"client_id"    binding:"omitempty,min=1"`
	DriverID    *int    `json:"driver_id"    binding:"omitempty,min=1"`
	Date        *string `json:"date"         binding:"omitempty,datetime=2006-01-02"`
	PickupTime  *string `json:"pickup_time"  binding:"omitempty,datetime=15:04"`
	DropoffTime *string `json:"dropoff_time" binding:"omitempty,datetime=15:04"`
	Route       *string `json:"route"        binding:"omitempty,max=200"`
	Status      *string `json:"status"       binding:"omitempty,oneof=Scheduled 'In Progress' Completed Canceled"`
}

// TripResponse 行程联表视图
type TripResponse struct {
	model.Transportation
	ClientName string `json:"client_name"`
	Driver     string `json:"driver"`
}
