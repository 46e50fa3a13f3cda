package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
)

const namespace = "esg_radar"

// 文档分析状态标签
const (
	StatusOK               = "ok"
	StatusExtractionFailed = "extraction_failed"
	StatusTimeout          = "timeout"
	StatusCanceled         = "canceled"
)

// Metrics 分析流水线指标。nil 接收者上的方法均为空操作，不需要指标的调用方可直接传 nil。
type Metrics struct {
	registry *prometheus.Registry

	// DocumentsTotal 按状态统计已分析文档数
	DocumentsTotal *prometheus.CounterVec
	// FindingsTotal 按类别统计风险数
	FindingsTotal *prometheus.CounterVec
	// AnalysisDuration 单文档分析耗时
	AnalysisDuration prometheus.Histogram
	// RiskScore 文档综合风险评分分布
	RiskScore prometheus.Histogram
}

// New 在独立的 registry 上注册全部指标
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		DocumentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "documents_analyzed_total",
				Help:      "Total number of documents analyzed by status",
			},
			[]string{"status"},
		),
		FindingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "findings_total",
				Help:      "Total number of ESG risk findings by category",
			},
			[]string{"category"},
		),
		AnalysisDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "analysis_duration_seconds",
				Help:      "Duration of single document analysis in seconds",
				Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),
		RiskScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "overall_risk_score",
				Help:      "Distribution of overall document risk scores",
				Buckets:   prometheus.LinearBuckets(0, 1, 11),
			},
		),
	}
}

// ObserveDocument 记录一次文档分析
func (m *Metrics) ObserveDocument(status string, took time.Duration) {
	if m == nil {
		return
	}
	m.DocumentsTotal.WithLabelValues(status).Inc()
	m.AnalysisDuration.Observe(took.Seconds())
}

// ObserveResult 记录分析结果中的风险与评分
func (m *Metrics) ObserveResult(result *model.AnalysisResult) {
	if m == nil || result == nil {
		return
	}
	for _, f := range result.Findings {
		m.FindingsTotal.WithLabelValues(string(f.Category)).Inc()
	}
	m.RiskScore.Observe(result.OverallRiskScore)
}

// Handler 返回 /metrics 的 HTTP 处理器
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
