package dto

// ── 仪表盘 DTO ──

// DashboardStatsResponse 仪表盘统计 — 各集合按状态聚合的计数
type DashboardStatsResponse struct {
	ActiveClients   int `json:"active_clients"`
	InactiveClients int `json:"inactive_clients"`
	ActiveStaff     int `json:"active_staff"`

	SchedulesByStatus map[string]int `json:"schedules_by_status"`

	PendingInvoices   int     `json:"pending_invoices"`
	SubmittedInvoices int     `json:"submitted_invoices"`
	PaidInvoices      int     `json:"paid_invoices"`
	OutstandingAmount float64 `json:"outstanding_amount"` // Pending + Submitted 金额合计

	TripsToday int `json:"trips_today"`

	ComplianceExpired  int `json:"compliance_expired"`
	ComplianceExpiring int `json:"compliance_expiring"`
	// CriticalCredentialsExpiring 30 天内到期的关键员工资质数
	CriticalCredentialsExpiring int `json:"critical_credentials_expiring"`
}
