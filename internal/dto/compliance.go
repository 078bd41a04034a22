package dto

import "careflow/backend/internal/model"

// ── 合规模块 DTO ──

// CreateComplianceRequest 创建合规项请求
type CreateComplianceRequest struct {
	ClientID int    `json:"client_id" binding:"required,min=1"`
	Type     string `json:"type"      binding:"required,max=50"`
	Item     string `json:"item"      binding:"required,max=150"`
	DueDate  string `json:"due_date"  binding:"required,datetime=2006-01-02"`
}

// UpdateComplianceRequest 更新合规项请求
type UpdateComplianceRequest struct {
	Type    *string `json:"type"     binding:"omitempty,max=50"`
	Item    *string `json:"item"     binding:"omitempty,max=150"`
	DueDate *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

// ComplianceResponse 合规项联表视图 — days_left 与 status 读取时派生
type ComplianceResponse struct {
	model.Compliance
	ClientName string `json:"client_name"`
	DaysLeft   int    `json:"days_left"`
}
