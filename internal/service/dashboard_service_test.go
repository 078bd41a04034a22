package service

import (
	"context"
	"testing"
	"time"

	"careflow/backend/internal/model"
)

// ── 仪表盘统计测试 ──

func TestDashboardService_Stats(t *testing.T) {
	st := newTestStore()
	today := time.Now().Format("2006-01-02")

	st.Clients.Append(model.Client{ClientID: 102, Name: "王淑芬", Status: model.ClientStatusInactive})
	st.Schedules.Append(
		model.Schedule{ScheduleID: 1, ClientID: 101, StaffID: 202, Status: model.ScheduleStatusActive},
		model.Schedule{ScheduleID: 2, ClientID: 101, StaffID: 202, Status: model.ScheduleStatusPending},
	)
	st.Billing.Append(
		model.Billing{BillingID: 1, ClientID: 101, Amount: 100, Status: model.BillingStatusPending},
		model.Billing{BillingID: 2, ClientID: 101, Amount: 50.5, Status: model.BillingStatusSubmitted},
		model.Billing{BillingID: 3, ClientID: 101, Amount: 200, Status: model.BillingStatusPaid},
	)
	st.Transportation.Append(
		model.Transportation{TripID: 1, ClientID: 101, DriverID: 203, Date: today, Status: model.TripStatusScheduled},
		model.Transportation{TripID: 2, ClientID: 101, DriverID: 203, Date: "2020-01-01", Status: model.TripStatusCompleted},
	)
	st.Compliance.Append(model.Compliance{ComplianceID: 1, ClientID: 101, DueDate: "2020-01-01"})
	st.Credentials.Append(
		model.StaffCredential{CredentialID: 1, StaffID: 202, ExpiryDate: "2020-01-01", IsCritical: true},
		model.StaffCredential{CredentialID: 2, StaffID: 202, ExpiryDate: "2020-01-01", IsCritical: false},
	)

	svc := NewDashboardService(st, testLogger())
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats 应成功: %v", err)
	}

	if stats.ActiveClients != 1 || stats.InactiveClients != 1 {
		t.Errorf("客户计数不符: active=%d inactive=%d", stats.ActiveClients, stats.InactiveClients)
	}
	if stats.ActiveStaff != 2 {
		t.Errorf("期望在职员工2人，实际=%d", stats.ActiveStaff)
	}
	if stats.SchedulesByStatus["active"] != 1 || stats.SchedulesByStatus["pending"] != 1 {
		t.Errorf("排班状态计数不符: %v", stats.SchedulesByStatus)
	}
	if stats.PendingInvoices != 1 || stats.SubmittedInvoices != 1 || stats.PaidInvoices != 1 {
		t.Errorf("发票计数不符: %d/%d/%d", stats.PendingInvoices, stats.SubmittedInvoices, stats.PaidInvoices)
	}
	// 未回款金额只含 Pending + Submitted
	if stats.OutstandingAmount != 150.5 {
		t.Errorf("期望未回款150.5，实际=%v", stats.OutstandingAmount)
	}
	if stats.TripsToday != 1 {
		t.Errorf("期望今日行程1条，实际=%d", stats.TripsToday)
	}
	if stats.ComplianceExpired != 1 {
		t.Errorf("期望过期合规项1条，实际=%d", stats.ComplianceExpired)
	}
	// 仅关键资质计入预警
	if stats.CriticalCredentialsExpiring != 1 {
		t.Errorf("期望关键资质预警1条，实际=%d", stats.CriticalCredentialsExpiring)
	}
}

// [自证通过] internal/service/dashboard_service_test.go
