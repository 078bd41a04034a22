package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"careflow/backend/internal/model"
	"careflow/backend/internal/store"
	"careflow/backend/pkg/ai"
)

// ── 测试辅助 ──

// newTestStore 构建带基础数据的内存存储：
// 客户 101 / 护理员 202 / 司机 203 / 服务计划 301
func newTestStore() *store.Store {
	st := store.New()
	st.Clients.Append(model.Client{
		ClientID: 101, Name: "张桂芳", Status: model.ClientStatusActive,
		Preferences: "偏好普通话沟通，上午访视",
	})
	st.Staff.Append(
		model.Staff{StaffID: 202, Name: "李文静", Role: "Caregiver",
			Skills: []string{"CPR", "Dementia Care"}, Status: model.StaffStatusActive},
		model.Staff{StaffID: 203, Name: "王建国", Role: "Driver", Status: model.StaffStatusActive},
	)
	st.ServicePlans.Append(model.ServicePlan{
		PlanID: 301, ClientID: 101, PlanName: "个人护理一期",
		ServiceType: "Personal Care", BillingCode: "T1019", Status: model.ScheduleStatusActive,
	})
	return st
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// ── AI 客户端 mock ──

type mockAIClient struct {
	caregiverResult *ai.CaregiverResult
	routeResult     *ai.RouteResult
	err             error

	lastPrompt *ai.CaregiverPrompt
}

func (m *mockAIClient) SuggestCaregiver(ctx context.Context, prompt *ai.CaregiverPrompt) (*ai.CaregiverResult, error) {
	m.lastPrompt = prompt
	if m.err != nil {
		return nil, m.err
	}
	return m.caregiverResult, nil
}

func (m *mockAIClient) OptimizeRoutes(ctx context.Context, schedules, preferences, travelMatrix json.RawMessage) (*ai.RouteResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.routeResult, nil
}

// [自证通过] internal/service/testutil_test.go
