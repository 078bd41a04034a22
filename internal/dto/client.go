package dto

// ── 客户模块 DTO ──

// CreateClientRequest 创建客户请求
type CreateClientRequest struct {
	Name        string `json:"name"         binding:"required,min=2,max=100"`
	Phone       string `json:"phone"        binding:"omitempty,max=30"`
	Email       string `json:"email"        binding:"omitempty,email"`
	Address     string `json:"address"      binding:"omitempty,max=200"`
	MedicaidID  string `json:"medicaid_id"  binding:"omitempty,max=40"`
	InsuranceID string `json:"insurance_id" binding:"omitempty,max=40"`
	Preferences string `json:"preferences"  binding:"omitempty,max=500"`
	Status      string `json:"status"       binding:"omitempty,oneof=active inactive"`
}

// UpdateClientRequest 更新客户请求（浅合并：仅覆盖提交的字段）
type UpdateClientRequest struct {
	Name        *string `json:"name"         binding:"omitempty,min=2,max=100"`
	Phone       *string `json:"phone"        binding:"omitempty,max=30"`
	Email       *string `json:"email"        binding:"omitempty,email"`
	Address     *string `json:"address"      binding:"omitempty,max=200"`
	MedicaidID  *string `json:"medicaid_id"  binding:"omitempty,max=40"`
	InsuranceID *string `json:"insurance_id" binding:"omitempty,max=40"`
	Preferences *string `json:"preferences"  binding:"omitempty,max=500"`
	Status      *string `json:"status"       binding:"omitempty,oneof=active inactive"`
}

// ClientListRequest 客户列表查询参数
type ClientListRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
}
