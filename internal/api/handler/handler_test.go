package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"careflow/backend/internal/dto"
	"careflow/backend/internal/model"
	"careflow/backend/internal/service"
	"careflow/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock ClientService ──

type mockClientService struct {
	listResult   []model.Client
	listErr      error
	getResult    *model.Client
	getErr       error
	createResult *model.Client
	createErr    error
	updateResult *model.Client
	updateErr    error
	deleteErr    error
}

func (m *mockClientService) List(_ context.Context, _ *dto.ClientListRequest) ([]model.Client, error) {
	return m.listResult, m.listErr
}
func (m *mockClientService) Get(_ context.Context, _ int) (*model.Client, error) {
	return m.getResult, m.getErr
}
func (m *mockClientService) Create(_ context.Context, _ *dto.CreateClientRequest) (*model.Client, error) {
	return m.createResult, m.createErr
}
func (m *mockClientService) Update(_ context.Context, _ int, _ *dto.UpdateClientRequest) (*model.Client, error) {
	return m.updateResult, m.updateErr
}
func (m *mockClientService) Delete(_ context.Context, _ int) error {
	return m.deleteErr
}

// ── Mock BillingService ──

type mockBillingService struct {
	generateResult *dto.GenerateInvoicesResult
	generateErr    error
}

func (m *mockBillingService) List(_ context.Context) ([]dto.BillingResponse, error) { return nil, nil }
func (m *mockBillingService) Get(_ context.Context, _ int) (*dto.BillingResponse, error) {
	return nil, service.ErrBillingNotFound
}
func (m *mockBillingService) Create(_ context.Context, _ *dto.CreateBillingRequest) (*dto.BillingResponse, error) {
	return nil, nil
}
func (m *mockBillingService) Update(_ context.Context, _ int, _ *dto.UpdateBillingRequest) (*dto.BillingResponse, error) {
	return nil, service.ErrBillingNotFound
}
func (m *mockBillingService) Delete(_ context.Context, _ int) error { return nil }
func (m *mockBillingService) GenerateTransportationInvoices(_ context.Context) (*dto.GenerateInvoicesResult, error) {
	return m.generateResult, m.generateErr
}

// ── Mock SuggestionService ──

type mockSuggestionService struct {
	caregiverResult *dto.CaregiverSuggestionResponse
	caregiverErr    error
	routesResult    *dto.RouteOptimizationResponse
	routesErr       error
}

func (m *mockSuggestionService) SuggestCaregiver(_ context.Context, _ *dto.CaregiverSuggestionRequest) (*dto.CaregiverSuggestionResponse, error) {
	return m.caregiverResult, m.caregiverErr
}
func (m *mockSuggestionService) OptimizeRoutes(_ context.Context, _ *dto.RouteOptimizationRequest) (*dto.RouteOptimizationResponse, error) {
	return m.routesResult, m.routesErr
}

// ── Mock AttendanceService ──

type mockAttendanceService struct {
	bulkResult *dto.BulkAttendanceResult
	bulkErr    error
}

func (m *mockAttendanceService) List(_ context.Context, _ *dto.AttendanceListRequest) ([]dto.AttendanceResponse, error) {
	return nil, nil
}
func (m *mockAttendanceService) Get(_ context.Context, _ int) (*dto.AttendanceResponse, error) {
	return nil, service.ErrAttendanceNotFound
}
func (m *mockAttendanceService) Create(_ context.Context, _ *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	return nil, nil
}
func (m *mockAttendanceService) Update(_ context.Context, _ int, _ *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	return nil, service.ErrAttendanceNotFound
}
func (m *mockAttendanceService) Delete(_ context.Context, _ int) error { return nil }
func (m *mockAttendanceService) BulkImport(_ context.Context, _ *dto.BulkAttendanceRequest) (*dto.BulkAttendanceResult, error) {
	return m.bulkResult, m.bulkErr
}

// ═══════════════════════════════════════════════════════════
// 测试辅助
// ═══════════════════════════════════════════════════════════

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	return resp
}

// ═══════════════════════════════════════════════════════════
// 客户模块
// ═══════════════════════════════════════════════════════════

func TestClientHandler_GetClient_Success(t *testing.T) {
	h := NewClientHandler(&mockClientService{
		getResult: &model.Client{ClientID: 1, Name: "张桂芳", Status: "active"},
	})
	r := gin.New()
	r.GET("/clients/:id", h.GetClient)

	w := performRequest(r, http.MethodGet, "/clients/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望200，实际=%d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("期望code=0，实际=%d", resp.Code)
	}
}

func TestClientHandler_GetClient_NotFound(t *testing.T) {
	h := NewClientHandler(&mockClientService{getErr: service.ErrClientNotFound})
	r := gin.New()
	r.GET("/clients/:id", h.GetClient)

	w := performRequest(r, http.MethodGet, "/clients/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望404，实际=%d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 11001 {
		t.Errorf("期望业务码11001，实际=%d", resp.Code)
	}
}

func TestClientHandler_GetClient_InvalidID(t *testing.T) {
	h := NewClientHandler(&mockClientService{})
	r := gin.New()
	r.GET("/clients/:id", h.GetClient)

	w := performRequest(r, http.MethodGet, "/clients/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望400，实际=%d", w.Code)
	}
}

func TestClientHandler_CreateClient_ValidationError(t *testing.T) {
	h := NewClientHandler(&mockClientService{})
	r := gin.New()
	r.POST("/clients", h.CreateClient)

	// name 缺失
	w := performRequest(r, http.MethodPost, "/clients", gin.H{"phone": "123"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望400，实际=%d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 10001 {
		t.Errorf("期望业务码10001，实际=%d", resp.Code)
	}
}

func TestClientHandler_CreateClient_Success(t *testing.T) {
	h := NewClientHandler(&mockClientService{
		createResult: &model.Client{ClientID: 1, Name: "张桂芳", Status: "active"},
	})
	r := gin.New()
	r.POST("/clients", h.CreateClient)

	w := performRequest(r, http.MethodPost, "/clients", gin.H{"name": "张桂芳"})
	if w.Code != http.StatusCreated {
		t.Fatalf("期望201，实际=%d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// 账单模块 — 行程开票
// ═══════════════════════════════════════════════════════════

func TestBillingHandler_GenerateInvoices_Created(t *testing.T) {
	h := NewBillingHandler(&mockBillingService{
		generateResult: &dto.GenerateInvoicesResult{Created: 2},
	})
	r := gin.New()
	r.POST("/billing/generate-transportation-invoices", h.GenerateTransportationInvoices)

	w := performRequest(r, http.MethodPost, "/billing/generate-transportation-invoices", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望200，实际=%d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Message != "已生成2张发票" {
		t.Errorf("期望提示文案含张数，实际=%s", resp.Message)
	}
}

// Created=0 是正常成功结果，不是错误
func TestBillingHandler_GenerateInvoices_NothingToDo(t *testing.T) {
	h := NewBillingHandler(&mockBillingService{
		generateResult: &dto.GenerateInvoicesResult{Created: 0},
	})
	r := gin.New()
	r.POST("/billing/generate-transportation-invoices", h.GenerateTransportationInvoices)

	w := performRequest(r, http.MethodPost, "/billing/generate-transportation-invoices", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望200，实际=%d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("期望code=0，实际=%d", resp.Code)
	}
	if resp.Message != "无可生成的行程发票" {
		t.Errorf("期望无事可做提示文案，实际=%s", resp.Message)
	}
}

// ═══════════════════════════════════════════════════════════
// AI 建议模块
// ═══════════════════════════════════════════════════════════

func TestSuggestionHandler_SuggestCaregiver_Success(t *testing.T) {
	h := NewSuggestionHandler(&mockSuggestionService{
		caregiverResult: &dto.CaregiverSuggestionResponse{CaregiverID: 202, Reason: "技能匹配"},
	})
	r := gin.New()
	r.POST("/suggestions/caregiver", h.SuggestCaregiver)

	w := performRequest(r, http.MethodPost, "/suggestions/caregiver", gin.H{"client_id": 101})
	if w.Code != http.StatusOK {
		t.Fatalf("期望200，实际=%d", w.Code)
	}
}

func TestSuggestionHandler_SuggestCaregiver_Unavailable(t *testing.T) {
	h := NewSuggestionHandler(&mockSuggestionService{caregiverErr: service.ErrAIUnavailable})
	r := gin.New()
	r.POST("/suggestions/caregiver", h.SuggestCaregiver)

	w := performRequest(r, http.MethodPost, "/suggestions/caregiver", gin.H{"client_id": 101})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("期望502，实际=%d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 19002 {
		t.Errorf("期望业务码19002，实际=%d", resp.Code)
	}
}

func TestSuggestionHandler_OptimizeRoutes_ValidationError(t *testing.T) {
	h := NewSuggestionHandler(&mockSuggestionService{})
	r := gin.New()
	r.POST("/suggestions/routes", h.OptimizeRoutes)

	// caregiver_schedules 缺失
	w := performRequest(r, http.MethodPost, "/suggestions/routes", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望400，实际=%d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// 考勤模块 — 批量导入
// ═══════════════════════════════════════════════════════════

func TestAttendanceHandler_BulkImport_Success(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{
		bulkResult: &dto.BulkAttendanceResult{Created: 3, Updated: 1},
	})
	r := gin.New()
	r.POST("/attendance/bulk-import", h.BulkImportAttendance)

	w := performRequest(r, http.MethodPost, "/attendance/bulk-import", gin.H{
		"client_id": 101,
		"staff_id":  202,
		"entries": []gin.H{
			{"date": "2026-08-03", "status": "present"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("期望200，实际=%d", w.Code)
	}

	var resp struct {
		Code int                      `json:"code"`
		Data dto.BulkAttendanceResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if resp.Data.Created != 3 || resp.Data.Updated != 1 {
		t.Errorf("期望Created=3/Updated=1，实际=%+v", resp.Data)
	}
}

func TestAttendanceHandler_BulkImport_EmptyEntries(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{})
	r := gin.New()
	r.POST("/attendance/bulk-import", h.BulkImportAttendance)

	w := performRequest(r, http.MethodPost, "/attendance/bulk-import", gin.H{
		"client_id": 101,
		"staff_id":  202,
		"entries":   []gin.H{},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望400（entries最少1条），实际=%d", w.Code)
	}
}

// [自证通过] internal/api/handler/handler_test.go
