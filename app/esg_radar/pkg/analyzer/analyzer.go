package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/detector"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/extract"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/logger"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/metrics"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/scorer"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/segment"
	"github.com/sirupsen/logrus"
)

// Analyzer 单文档分析入口：提取 -> 分句 -> 检测 -> 评分
type Analyzer struct {
	extractor extract.Extractor
	segmenter segment.Segmenter
	detector  *detector.Detector
	timeout   time.Duration
	metrics   *metrics.Metrics
	log       logrus.FieldLogger
}

// Option 配置 Analyzer
type Option func(*Analyzer)

// WithTimeout 限制单文档分析时长，0 表示不限时
func WithTimeout(d time.Duration) Option {
	return func(a *Analyzer) { a.timeout = d }
}

// WithMetrics 记录分析指标
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// WithLogger 替换默认的全局日志
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *Analyzer) { a.log = l }
}

// New 创建分析器
func New(ex extract.Extractor, seg segment.Segmenter, det *detector.Detector, opts ...Option) *Analyzer {
	a := &Analyzer{extractor: ex, segmenter: seg, detector: det, log: logger.Log}
	for _, o := range opts {
		o(a)
	}
	return a
}

// AnalyzeFile 分析指定路径的文档。
// 提取失败时返回包装 extract.ErrExtractionFailed 的错误，不返回部分结果。
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*model.AnalysisResult, error) {
	start := time.Now()
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	text, err := a.extractor.Extract(ctx, path)
	if err != nil {
		a.metrics.ObserveDocument(statusOf(err), time.Since(start))
		return nil, err
	}

	result, err := a.AnalyzeText(ctx, text)
	if err != nil {
		a.metrics.ObserveDocument(statusOf(err), time.Since(start))
		return nil, fmt.Errorf("analyze %s: %w", path, err)
	}

	took := time.Since(start)
	a.metrics.ObserveDocument(metrics.StatusOK, took)
	a.metrics.ObserveResult(result)
	a.log.WithFields(logrus.Fields{
		"path":      path,
		"sentences": result.ReportLengthSentences,
		"risks":     result.TotalRisksFound,
		"score":     result.OverallRiskScore,
		"took":      took.Round(time.Millisecond),
	}).Debug("文档分析完成")
	return result, nil
}

// AnalyzeText 分析已提取的文本，空文本视为零个句子
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) (*model.AnalysisResult, error) {
	sentences := a.segmenter.Segment(text)

	findings, err := a.detector.Detect(ctx, sentences)
	if err != nil {
		return nil, err
	}

	score := scorer.Calculate(findings, len(sentences))
	return &model.AnalysisResult{
		OverallRiskScore:      score.Score,
		AverageSeverity:       score.Severity,
		NormalizedFrequency:   score.Frequency,
		TotalRisksFound:       len(findings),
		ReportLengthSentences: len(sentences),
		Findings:              findings,
	}, nil
}

func statusOf(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return metrics.StatusTimeout
	case errors.Is(err, context.Canceled):
		return metrics.StatusCanceled
	default:
		return metrics.StatusExtractionFailed
	}
}
