package dto

import "careflow/backend/internal/model"

// ── 账单模块 DTO ──

// CreateBillingRequest 创建账单请求（amount 由服务端按 units*rate 计算）
type CreateBillingRequest struct {
	ClientID    int     `json:"client_id"    binding:"required,min=1"`
	ScheduleID  int     `json:"schedule_id"  binding:"omitempty,min=1"`
	InvoiceNo   string  `json:"invoice_no"   binding:"omitempty,max=30"`
	ServiceDate string  `json:"service_date" binding:"required,datetime=2006-01-02"`
	Units       float64 `json:"units"        binding:"required,min=0"`
	Rate        float64 `json:"rate"         binding:"required,min=0"`
	Status      string  `json:"status"       binding:"omitempty,oneof=Pending Submitted Paid Denied"`
}

// UpdateBillingRequest 更新账单请求。
// units/rate 任一提交即重算 amount，未提交方回退编辑前的值。
type UpdateBillingRequest struct {
	ClientID    *int     `json:"client_id"    binding:"omitempty,min=1"`
	ScheduleID  *int     `json:"schedule_id"  binding:"omitempty,min=1"`
	InvoiceNo   *string  `json:"invoice_no"   binding:"omitempty,max=30"`
	ServiceDate *string  `json:"service_date" binding:"omitempty,datetime=2006-01-02"`
	Units       *float64 `json:"units"        binding:"omitempty,min=0"`
	Rate        *float64 `json:"rate"         binding:"omitempty,min=0"`
	Status      *string  `json:"status"       binding:"omitempty,oneof=Pending Submitted Paid Denied"`
}

// BillingResponse 账单联表视图
type BillingResponse struct {
	model.Billing
	ClientName string `json:"client_name"`
}

// GenerateInvoicesResult 由已完成行程生成发票的结果。
// Created 为 0 是一种独立的成功结果（无可生成项），不是错误。
type GenerateInvoicesResult struct {
	Created  int               `json:"created"`
	Invoices []BillingResponse `json:"invoices,omitempty"`
}
