package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/esg_radar/app/dashboard/internal/conf"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/config"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/engine"
	esgLogger "github.com/iWorld-y/esg_radar/app/esg_radar/pkg/logger"
)

// NewEngine 初始化 esg_radar 引擎
func NewEngine(d *conf.Data, a *conf.Analysis, logger log.Logger) (*engine.Engine, error) {
	cfg := toEngineConfig(d, a)

	// 初始化日志
	if err := esgLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.NewHelper(logger).Errorf("Failed to init esg_radar logger: %v", err)
		_ = esgLogger.InitLogger("info", "") // 降级处理
	}

	eng, err := engine.NewEngine(context.Background(), cfg, esgLogger.Log)
	if err != nil {
		log.NewHelper(logger).Errorf("Failed to init engine: %v", err)
		return nil, err
	}
	return eng, nil
}

// toEngineConfig 将 internal/conf 转换为 pkg/config.Config，缺省项由 ApplyDefaults 填充
func toEngineConfig(d *conf.Data, a *conf.Analysis) *config.Config {
	cfg := &config.Config{}
	if d != nil {
		cfg.SourceDir = d.ReportDir
		cfg.Extensions = d.Extensions
	}
	if a != nil {
		cfg.Lexicon.File = a.Lexicon
		cfg.Analysis.DocumentTimeout = a.DocumentTimeout
		if a.Sentiment != nil {
			cfg.Sentiment.Provider = a.Sentiment.Provider
			if a.Sentiment.Llm != nil {
				cfg.Sentiment.LLM = config.LLMConfig{
					BaseURL: a.Sentiment.Llm.BaseUrl,
					APIKey:  a.Sentiment.Llm.ApiKey,
					Model:   a.Sentiment.Llm.Model,
				}
			}
		}
		if a.Concurrency != nil {
			cfg.Concurrency.QPS = int(a.Concurrency.Qps)
			cfg.Concurrency.RPM = int(a.Concurrency.Rpm)
		}
		if a.Log != nil {
			cfg.Log = config.LogConfig{Level: a.Log.Level, File: a.Log.File}
		}
	}
	cfg.ApplyDefaults()
	// 服务不做批量导出
	cfg.Output = config.OutputConfig{}
	return cfg
}
