package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/logger"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/sentiment"
)

const systemPrompt = "你是一个 JSON 生成器。请只输出 JSON 字符串。"

const promptTpl = `You rate the negative sentiment of one sentence taken from a corporate ESG disclosure.
Return strictly this JSON, without markdown:
{"negativity": 0.0}
negativity is a number between 0 and 1: 0 means no negative tone, 1 means entirely negative.

Sentence:
%s`

// Scorer 通过大模型评估句子负面程度。
// 结果按句子缓存，保证同一进程内重复评分一致；调用失败时回退到 fallback 评分器。
type Scorer struct {
	chatModel  model.ChatModel
	limiter    *rate.Limiter
	fallback   sentiment.Scorer
	log        logrus.FieldLogger
	maxRetries int
	baseDelay  time.Duration

	mu    sync.RWMutex
	cache map[string]float64
}

// Option 配置 Scorer
type Option func(*Scorer)

// WithLogger 指定日志
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Scorer) { s.log = l }
}

// WithRetry 指定 429 重试次数与退避基数
func WithRetry(maxRetries int, baseDelay time.Duration) Option {
	return func(s *Scorer) {
		s.maxRetries = maxRetries
		s.baseDelay = baseDelay
	}
}

// NewScorer 创建大模型评分器，fallback 不可为空
func NewScorer(cm model.ChatModel, limiter *rate.Limiter, fallback sentiment.Scorer, opts ...Option) *Scorer {
	s := &Scorer{
		chatModel:  cm,
		limiter:    limiter,
		fallback:   fallback,
		log:        logger.Log,
		maxRetries: 3,
		baseDelay:  2 * time.Second,
		cache:      make(map[string]float64),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Ensure Scorer implements sentiment.Scorer
var _ sentiment.Scorer = (*Scorer)(nil)

// Negativity 返回句子的负面程度
func (s *Scorer) Negativity(ctx context.Context, sentence string) float64 {
	s.mu.RLock()
	v, ok := s.cache[sentence]
	s.mu.RUnlock()
	if ok {
		return v
	}

	v, err := s.generate(ctx, sentence)
	if err != nil {
		// 回退结果不缓存，下次仍尝试大模型
		s.log.Warnf("大模型情感评分失败，回退到本地评分: %v", err)
		return s.fallback.Negativity(ctx, sentence)
	}

	s.mu.Lock()
	s.cache[sentence] = v
	s.mu.Unlock()
	return v
}

type response struct {
	Negativity *float64 `json:"negativity"`
}

func (s *Scorer) generate(ctx context.Context, sentence string) (float64, error) {
	var lastErr error
	for i := 0; i <= s.maxRetries; i++ {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return 0, err
			}
		}

		messages := []*schema.Message{
			{Role: schema.System, Content: systemPrompt},
			{Role: schema.User, Content: fmt.Sprintf(promptTpl, sentence)},
		}

		resp, err := s.chatModel.Generate(ctx, messages, model.WithTemperature(0))
		if err != nil {
			if isRateLimited(err) && i < s.maxRetries {
				lastErr = err
				select {
				case <-ctx.Done():
					return 0, ctx.Err()
				case <-time.After(s.baseDelay * time.Duration(1<<i)):
				}
				continue
			}
			return 0, err
		}

		v, err := parse(resp.Content)
		if err != nil {
			lastErr = err
			continue
		}
		return v, nil
	}
	return 0, fmt.Errorf("failed after retries: %w", lastErr)
}

func isRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "too many requests")
}

// parse 解析模型输出，容忍 markdown 代码块包裹
func parse(content string) (float64, error) {
	clean := strings.TrimSpace(content)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var r response
	if err := json.Unmarshal([]byte(clean), &r); err != nil {
		return 0, fmt.Errorf("json unmarshal: %w", err)
	}
	if r.Negativity == nil {
		return 0, fmt.Errorf("negativity missing in response %q", clean)
	}
	return sentiment.Clamp(*r.Negativity), nil
}
