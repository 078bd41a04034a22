package dto

import "encoding/json"

// ── AI 建议模块 DTO ──
//
// 路线优化的三个输入与 optimized_schedules 输出均为不透明 JSON 块：
// 本服务只转发，不解析、不校验（展示层自行渲染）。

// CaregiverSuggestionRequest 护理员匹配请求。
// availability 为调用方编码的可用时段负载，原样转发给模型。
type CaregiverSuggestionRequest struct {
	ClientID       int             `json:"client_id"       binding:"required,min=1"`
	RequiredSkills []string        `json:"required_skills" binding:"omitempty,dive,max=50"`
	Availability   json.RawMessage `json:"availability"    binding:"omitempty"`
}

// CaregiverSuggestionResponse 护理员匹配响应
type CaregiverSuggestionResponse struct {
	CaregiverID   int    `json:"caregiver_id"`
	CaregiverName string `json:"caregiver_name,omitempty"` // 本地解析，悬空 id 时省略
	Reason        string `json:"reason"`
}

// RouteOptimizationRequest 路线优化请求
type RouteOptimizationRequest struct {
	CaregiverSchedules json.RawMessage `json:"caregiver_schedules" binding:"required"`
	ClientPreferences  json.RawMessage `json:"client_preferences"  binding:"omitempty"`
	TravelTimeMatrix   json.RawMessage `json:"travel_time_matrix"  binding:"omitempty"`
}

// RouteOptimizationResponse 路线优化响应
type RouteOptimizationResponse struct {
	OptimizedSchedules json.RawMessage `json:"optimized_schedules"`
	Summary            string          `json:"summary"`
}
