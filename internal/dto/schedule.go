package dto

import "careflow/backend/internal/model"

// ── 排班模块 DTO ──

// CreateScheduleRequest 创建排班请求（used_units 由服务端置 0）
type CreateScheduleRequest struct {
	ClientID      int      `json:"client_id"       binding:"required,min=1"`
	StaffID       int      `json:"staff_id"        binding:"required,min=1"`
	ServicePlanID int      `json:"service_plan_id" binding:"omitempty,min=1"`
	ServiceType   string   `json:"service_type"    binding:"required,max=100"`
	BillingCode   string   `json:"billing_code"    binding:"omitempty,max=20"`
	Frequency     string   `json:"frequency"       binding:"omitempty,max=30"`
	TotalUnits    float64  `json:"total_units"     binding:"omitempty,min=0"`
	HoursPerDay   float64  `json:"hours_per_day"   binding:"omitempty,min=0,max=24"`
	StartDate     string   `json:"start_date"      binding:"required,datetime=2006-01-02"`
	EndDate       string   `json:"end_date"        binding:"required,datetime=2006-01-02"`
	DaysOfWeek    []string `json:"days_of_week"    binding:"omitempty,dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	Status        string   `json:"status"          binding:"omitempty,oneof=active expired pending"`
}

// UpdateScheduleRequest 更新排班请求（浅合并）
type UpdateScheduleRequest struct {
	ClientID      *int      `json:"client_id"       binding:"omitempty,min=1"`
	StaffID       *int      `json:"staff_id"        binding:"omitempty,min=1"`
	ServicePlanID *int      `json:"service_plan_id" binding:"omitempty,min=1"`
	ServiceType   *string   `json:"service_type"    binding:"omitempty,max=100"`
	BillingCode   *string   `json:"billing_code"    binding:"omitempty,max=20"`
	Frequency     *string   `json:"frequency"       binding:"omitempty,max=30"`
	TotalUnits    *float64  `json:"total_units"     binding:"omitempty,min=0"`
	UsedUnits     *float64  `json:"used_units"      binding:"omitempty,min=0"`
	HoursPerDay   *float64  `json:"hours_per_day"   binding:"omitempty,min=0,max=24"`
	StartDate     *string   `json:"start_date"      binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string   `json:"end_date"        binding:"omitempty,datetime=2006-01-02"`
	DaysOfWeek    *[]string `json:"days_of_week"    binding:"omitempty,dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	Status        *string   `json:"status"          binding:"omitempty,oneof=active expired pending"`
}

// ScheduleResponse 排班联表视图 — 外键解析为展示名，悬空引用降级为占位名
type ScheduleResponse struct {
	model.Schedule
	ClientName string `json:"client_name"`
	StaffName  string `json:"staff_name"`
	PlanName   string `json:"plan_name,omitempty"`
}
