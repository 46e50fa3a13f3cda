package factory

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/config"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/sentiment"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/sentiment/llm"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/sentiment/vader"
)

// NewScorer 根据配置创建情感评分器
func NewScorer(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (sentiment.Scorer, error) {
	switch cfg.Sentiment.Provider {
	case "", config.ProviderVader:
		return vader.NewScorer(), nil

	case config.ProviderLLM:
		if cfg.Sentiment.LLM.Model == "" {
			return nil, fmt.Errorf("llm model is missing")
		}
		chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: cfg.Sentiment.LLM.BaseURL,
			APIKey:  cfg.Sentiment.LLM.APIKey,
			Model:   cfg.Sentiment.LLM.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("LLM 初始化失败: %w", err)
		}

		limit := rate.Limit(float64(cfg.Concurrency.RPM) / 60.0)
		burst := cfg.Concurrency.QPS
		limiter := rate.NewLimiter(limit, burst)
		log.Infof("限流器已配置: Limit=%.2f req/s, Burst=%d", limit, burst)

		return llm.NewScorer(chatModel, limiter, vader.NewScorer(), llm.WithLogger(log)), nil

	default:
		return nil, fmt.Errorf("unknown sentiment provider: %s", cfg.Sentiment.Provider)
	}
}
