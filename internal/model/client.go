package model

// 客户状态
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

// Client 客户档案 — 居家照护服务对象
type Client struct {
	ClientID   int    `json:"client_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address"`
	MedicaidID string `json:"medicaid_id,omitempty"`
	InsuranceID string `json:"insurance_id,omitempty"`
	// Preferences 照护偏好（语言、性别偏好等），供 AI 护理员匹配使用
	Preferences string `json:"preferences,omitempty"`
	Status      string `json:"status"` // active | inactive
}

// [自证通过] internal/model/client.go
