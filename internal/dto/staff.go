package dto

import "careflow/backend/internal/model"

// ── 员工模块 DTO ──

// CreateStaffRequest 创建员工请求
type CreateStaffRequest struct {
	Name       string   `json:"name"       binding:"required,min=2,max=100"`
	Role       string   `json:"role"       binding:"required,max=50"`
	Department string   `json:"department" binding:"omitempty,max=100"`
	Phone      string   `json:"phone"      binding:"omitempty,max=30"`
	Email      string   `json:"email"      binding:"omitempty,email"`
	Skills     []string `json:"skills"     binding:"omitempty,dive,max=50"`
	HireDate   string   `json:"hire_date"  binding:"omitempty,datetime=2006-01-02"`
	Status     string   `json:"status"     binding:"omitempty,oneof=Active Inactive"`
}

// UpdateStaffRequest 更新员工请求
type UpdateStaffRequest struct {
	Name       *string   `json:"name"       binding:"omitempty,min=2,max=100"`
	Role       *string   `json:"role"       binding:"omitempty,max=50"`
	Department *string   `json:"department" binding:"omitempty,max=100"`
	Phone      *string   `json:"phone"      binding:"omitempty,max=30"`
	Email      *string   `json:"email"      binding:"omitempty,email"`
	Skills     *[]string `json:"skills"     binding:"omitempty,dive,max=50"`
	HireDate   *string   `json:"hire_date"  binding:"omitempty,datetime=2006-01-02"`
	Status     *string   `json:"status"     binding:"omitempty,oneof=Active Inactive"`
}

// ── 员工资质 DTO ──

// CreateCredentialRequest 创建员工资质请求
type CreateCredentialRequest struct {
	StaffID    int    `json:"staff_id"    binding:"required,min=1"`
	Name       string `json:"name"        binding:"required,max=100"`
	IssueDate  string `json:"issue_date"  binding:"omitempty,datetime=2006-01-02"`
	ExpiryDate string `json:"expiry_date" binding:"required,datetime=2006-01-02"`
	IsCritical bool   `json:"is_critical"`
}

// UpdateCredentialRequest 更新员工资质请求
type UpdateCredentialRequest struct {
	Name       *string `json:"name"        binding:"omitempty,max=100"`
	IssueDate  *string `json:"issue_date"  binding:"omitempty,datetime=2006-01-02"`
	ExpiryDate *string `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	IsCritical *bool   `json:"is_critical"`
}

// CredentialResponse 资质响应 — 员工名与状态均为读取时派生
type CredentialResponse struct {
	model.StaffCredential
	StaffName string `json:"staff_name"`
	DaysLeft  int    `json:"days_left"`
	Status    string `json:"status"` // Current | Expiring Soon | Expired
}
