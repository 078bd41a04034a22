package dto

import "careflow/backend/internal/model"

// ── 考勤模块 DTO ──

// CreateAttendanceRequest 创建考勤请求（total_hours 由服务端计算）
type CreateAttendanceRequest struct {
	ClientID   int    `json:"client_id"    binding:"required,min=1"`
	StaffID    int    `json:"staff_id"     binding:"required,min=1"`
	Date       string `json:"date"         binding:"required,datetime=2006-01-02"`
	CheckInAM  string `json:"check_in_am"  binding:"omitempty,datetime=15:04"`
	CheckOutAM string `json:"check_out_am" binding:"omitempty,datetime=15:04"`
	CheckInPM  string `json:"check_in_pm"  binding:"omitempty,datetime=15:04"`
	CheckOutPM string `json:"check_out_pm" binding:"omitempty,datetime=15:04"`
	Status     string `json:"status"       binding:"required,max=30"`
	Notes      string `json:"notes"        binding:"omitempty,max=500"`
}

// UpdateAttendanceRequest 更新考勤请求。
// 四个打卡时间是派生值 total_hours 的全部输入：编辑即整体覆盖
// （未提交的打卡字段按清空处理，不回退旧值），其余字段浅合并。
type UpdateAttendanceRequest struct {
	ClientID   *int    `json:"client_id" binding:"omitempty,min=1"`
	StaffID    *int    `json:"staff_id"  binding:"omitempty,min=1"`
	Date       *string `json:"date"      binding:"omitempty,datetime=2006-01-02"`
	CheckInAM  string  `json:"check_in_am"  binding:"omitempty,datetime=15:04"`
	CheckOutAM string  `json:"check_out_am" binding:"omitempty,datetime=15:04"`
	CheckInPM  string  `json:"check_in_pm"  binding:"omitempty,datetime=15:04"`
	CheckOutPM string  `json:"check_out_pm" binding:"omitempty,datetime=15:04"`
	Status     *string `json:"status"    binding:"omitempty,max=30"`
	Notes      *string `json:"notes"     binding:"omitempty,max=500"`
}

// AttendanceListRequest 考勤列表查询参数
type AttendanceListRequest struct {
	ClientID int    `form:"client_id" binding:"omitempty,min=1"`
	Month    string `form:"month"     binding:"omitempty,datetime=2006-01"`
}

// AttendanceResponse 考勤联表视图
type AttendanceResponse struct {
	model.Attendance
	ClientName string `json:"client_name"`
	StaffName  string `json:"staff_name"`
}

// ── 批量导入 ──

// BulkAttendanceEntry 批量导入的单日条目。
// 不在绑定层强校验：不合规条目由业务层按跳过规则静默丢弃，不整批拒绝。
type BulkAttendanceEntry struct {
	Date       string `json:"date"         binding:"omitempty,datetime=2006-01-02"`
	Status     string `json:"status"       binding:"omitempty,max=30"`
	CheckInAM  string `json:"check_in_am"  binding:"omitempty,datetime=15:04"`
	CheckOutAM string `json:"check_out_am" binding:"omitempty,datetime=15:04"`
	CheckInPM  string `json:"check_in_pm"  binding:"omitempty,datetime=15:04"`
	CheckOutPM string `json:"check_out_pm" binding:"omitempty,datetime=15:04"`
	Notes      string `json:"notes"        binding:"omitempty,max=500"`
}

// BulkAttendanceRequest 批量考勤导入请求
type BulkAttendanceRequest struct {
	ClientID    int                   `json:"client_id"    binding:"required,min=1"`
	StaffID     int                   `json:"staff_id"     binding:"required,min=1"`
	ServiceType string                `json:"service_type" binding:"omitempty,max=100"`
	BillingCode string                `json:"billing_code" binding:"omitempty,max=20"`
	Entries     []BulkAttendanceEntry `json:"entries"      binding:"required,min=1,dive"`
}

// BulkAttendanceResult 批量导入结果（创建/更新条数，供前端提示）
type BulkAttendanceResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}
