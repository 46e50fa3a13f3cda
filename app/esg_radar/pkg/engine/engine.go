package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/analyzer"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/config"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/corpus"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/detector"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/export"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/extract"
	extractfactory "github.com/iWorld-y/esg_radar/app/esg_radar/pkg/extract/factory"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/lexicon"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/metrics"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/segment"
	sentimentfactory "github.com/iWorld-y/esg_radar/app/esg_radar/pkg/sentiment/factory"
)

// Engine 核心处理引擎，持有只读的词表与评分组件，可被并发使用
type Engine struct {
	cfg        *config.Config
	log        logrus.FieldLogger
	lexicon    *lexicon.Lexicon
	router     *extract.Router
	source     *corpus.DirSource
	analyzer   *analyzer.Analyzer
	summarizer *corpus.Summarizer
	metrics    *metrics.Metrics
	sinks      []export.Sink
	closers    []func() error
}

// Option 配置 Engine
type Option func(*engineOptions)

type engineOptions struct {
	sinks        []export.Sink
	skipDefaults bool
}

// WithSinks 替换配置中的导出目标
func WithSinks(sinks ...export.Sink) Option {
	return func(o *engineOptions) {
		o.sinks = sinks
		o.skipDefaults = true
	}
}

// NewEngine 根据配置创建引擎实例
func NewEngine(ctx context.Context, cfg *config.Config, log logrus.FieldLogger, opts ...Option) (*Engine, error) {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}

	lex, err := loadLexicon(cfg)
	if err != nil {
		return nil, fmt.Errorf("词表加载失败: %w", err)
	}

	scorer, err := sentimentfactory.NewScorer(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("情感评分初始化失败: %w", err)
	}

	segmenter, err := segment.NewPunkt()
	if err != nil {
		return nil, fmt.Errorf("分句模型初始化失败: %w", err)
	}

	timeout, err := cfg.DocumentTimeout()
	if err != nil {
		return nil, err
	}

	router := extractfactory.NewRouterFor(cfg.Extensions)
	m := metrics.New()
	a := analyzer.New(router, segmenter, detector.New(lex, scorer),
		analyzer.WithTimeout(timeout),
		analyzer.WithMetrics(m),
		analyzer.WithLogger(log),
	)
	source := corpus.NewDirSource(cfg.SourceDir, router.Extensions())

	e := &Engine{
		cfg:      cfg,
		log:      log,
		lexicon:  lex,
		router:   router,
		source:   source,
		analyzer: a,
		metrics:  m,
	}
	e.summarizer = corpus.NewSummarizer(source, a, corpus.NewLabeler(cfg.Companies),
		corpus.WithWorkers(cfg.Concurrency.Workers),
		corpus.WithLogger(log),
	)

	if o.skipDefaults {
		e.sinks = o.sinks
	} else if err := e.initSinks(ctx); err != nil {
		return nil, err
	}
	log.Infof("引擎已初始化: 评分=%s, 扩展名=%v, 并发=%d, 单文档超时=%s",
		cfg.Sentiment.Provider, router.Extensions(), cfg.Concurrency.Workers, timeout)
	return e, nil
}

func loadLexicon(cfg *config.Config) (*lexicon.Lexicon, error) {
	if cfg.Lexicon.File == "" {
		return lexicon.Default()
	}
	return lexicon.LoadFile(cfg.Lexicon.File)
}

func (e *Engine) initSinks(ctx context.Context) error {
	if e.cfg.Output.CSVFile != "" {
		e.sinks = append(e.sinks, export.NewCSVSink(e.cfg.Output.CSVFile))
	}

	// 如果配置了数据库信息，则尝试连接
	if e.cfg.Output.Postgres.Host == "" {
		e.log.Info("未配置数据库信息，跳过数据库导出")
		return nil
	}
	pg, err := export.NewPostgresSink(ctx, e.cfg.Output.Postgres)
	if err != nil {
		e.log.Errorf("无法连接数据库: %v. 将仅导出 CSV 文件。", err)
		return nil
	}
	e.sinks = append(e.sinks, pg)
	e.closers = append(e.closers, pg.Close)
	e.log.Info("已成功连接到数据库")
	return nil
}

// Close 释放导出目标持有的连接
func (e *Engine) Close() error {
	var first error
	for _, c := range e.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Analyzer 返回单文档分析器
func (e *Engine) Analyzer() *analyzer.Analyzer {
	return e.analyzer
}

// Source 返回文档目录
func (e *Engine) Source() *corpus.DirSource {
	return e.source
}

// Metrics 返回流水线指标
func (e *Engine) Metrics() *metrics.Metrics {
	return e.metrics
}

// Lexicon 返回当前使用的词表
func (e *Engine) Lexicon() *lexicon.Lexicon {
	return e.lexicon
}

// ExportResult 一次批量导出的结果
type ExportResult struct {
	RunID string
	Rows  []model.SummaryRow
}

// Export 分析目录下的全部文档，并将汇总写入所有导出目标。
// 没有任何风险时不写出文件。
func (e *Engine) Export(ctx context.Context) (*ExportResult, error) {
	runID := uuid.NewString()
	log := e.log.WithField("run_id", runID)
	log.Infof("开始批量导出，文档目录: %s", e.source.Dir())

	rows, err := e.summarizer.Run(ctx)
	if err != nil {
		return nil, err
	}
	result := &ExportResult{RunID: runID, Rows: rows}
	if len(rows) == 0 {
		log.Warn("未找到任何风险，跳过导出")
		return result, nil
	}

	for _, s := range e.sinks {
		if err := s.Write(ctx, runID, rows); err != nil {
			return nil, fmt.Errorf("导出失败: %w", err)
		}
	}
	log.Infof("批量导出完成，共 %d 行汇总", len(rows))
	return result, nil
}
