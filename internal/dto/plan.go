package dto

import "careflow/backend/internal/model"

// ── 服务计划 DTO ──

// CreateServicePlanRequest 创建服务计划请求
type CreateServicePlanRequest struct {
	ClientID    int    `json:"client_id"    binding:"required,min=1"`
	PlanName    string `json:"plan_name"    binding:"required,max=100"`
	ServiceType string `json:"service_type" binding:"required,max=100"`
	BillingCode string `json:"billing_code" binding:"omitempty,max=20"`
	StartDate   string `json:"start_date"   binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date"     binding:"required,datetime=2006-01-02"`
	Status      string `json:"status"       binding:"omitempty,oneof=active expired pending"`
}

// UpdateServicePlanRequest 更新服务计划请求
type UpdateServicePlanRequest struct {
	PlanName    *string `json:"plan_name"    binding:"omitempty,max=100"`
	ServiceType *string `json:"service_type" binding:"omitempty,max=100"`
	BillingCode *string `json:"billing_code" binding:"omitempty,max=20"`
	StartDate   *string `json:"start_date"   binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date"     binding:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status"       binding:"omitempty,oneof=active expired pending"`
}

// ServicePlanResponse 服务计划联表视图
type ServicePlanResponse struct {
	model.ServicePlan
	ClientName string `json:"client_name"`
}

// ── 照护计划 DTO ──

// CreateCarePlanRequest 创建照护计划请求
type CreateCarePlanRequest struct {
	ClientID        int      `json:"client_id"         binding:"required,min=1"`
	AssignedStaffID int      `json:"assigned_staff_id" binding:"required,min=1"`
	Goals           []string `json:"goals"             binding:"omitempty,dive,max=200"`
	StartDate       string   `json:"start_date"        binding:"required,datetime=2006-01-02"`
	EndDate         string   `json:"end_date"          binding:"required,datetime=2006-01-02"`
	Status          string   `json:"status"            binding:"omitempty,oneof=active expired pending"`
}

// UpdateCarePlanRequest 更新照护计划请求
type UpdateCarePlanRequest struct {
	AssignedStaffID *int      `json:"assigned_staff_id" binding:"omitempty,min=1"`
	Goals           *[]string `json:"goals"             binding:"omitempty,dive,max=200"`
	StartDate       *string   `json:"start_date"        binding:"omitempty,datetime=2006-01-02"`
	EndDate         *string   `json:"end_date"          binding:"omitempty,datetime=2006-01-02"`
	Status          *string   `json:"status"            binding:"omitempty,oneof=active expired pending"`
}

// CarePlanResponse 照护计划联表视图
type CarePlanResponse struct {
	model.CarePlan
	ClientName string `json:"client_name"`
	StaffName  string `json:"staff_name"`
}

// ── 服务授权 DTO ──

// CreateAuthorizationRequest 创建授权请求（used_hours 由服务端置 0）
type CreateAuthorizationRequest struct {
	ClientID        int     `json:"client_id"        binding:"required,min=1"`
	ServicePlanID   int     `json:"service_plan_id"  binding:"required,min=1"`
	AuthorizedHours float64 `json:"authorized_hours" binding:"required,min=0"`
	StartDate       string  `json:"start_date"       binding:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date"         binding:"required,datetime=2006-01-02"`
	Status          string  `json:"status"           binding:"omitempty,oneof=active expired pending"`
}

// UpdateAuthorizationRequest 更新授权请求
type UpdateAuthorizationRequest struct {
	AuthorizedHours *float64 `json:"authorized_hours" binding:"omitempty,min=0"`
	UsedHours       *float64 `json:"used_hours"       binding:"omitempty,min=0"`
	StartDate       *string  `json:"start_date"       binding:"omitempty,datetime=2006-01-02"`
	EndDate         *string  `json:"end_date"         binding:"omitempty,datetime=2006-01-02"`
	Status          *string  `json:"status"           binding:"omitempty,oneof=active expired pending"`
}

// AuthorizationResponse 授权联表视图
type AuthorizationResponse struct {
	model.Authorization
	ClientName string `json:"client_name"`
}
