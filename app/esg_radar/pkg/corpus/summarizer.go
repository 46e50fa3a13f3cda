package corpus

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/logger"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
)

// DocumentAnalyzer 分析单个文档
type DocumentAnalyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*model.AnalysisResult, error)
}

// Summarizer 批量分析文档并按 (公司, 类别) 汇总
type Summarizer struct {
	source   Source
	analyzer DocumentAnalyzer
	labeler  *Labeler
	workers  int
	log      logrus.FieldLogger
}

// SummarizerOption 配置 Summarizer
type SummarizerOption func(*Summarizer)

// WithWorkers 并发分析的文档数
func WithWorkers(n int) SummarizerOption {
	return func(s *Summarizer) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithLogger 替换默认的全局日志
func WithLogger(l logrus.FieldLogger) SummarizerOption {
	return func(s *Summarizer) { s.log = l }
}

// NewSummarizer 创建批量汇总器
func NewSummarizer(src Source, analyzer DocumentAnalyzer, labeler *Labeler, opts ...SummarizerOption) *Summarizer {
	s := &Summarizer{
		source:   src,
		analyzer: analyzer,
		labeler:  labeler,
		workers:  1,
		log:      logger.Log,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Collect 分析全部文档，返回附带公司名称的 Finding。
// 单个文档失败只记录告警并跳过；结果按文档名顺序拼接。
func (s *Summarizer) Collect(ctx context.Context) ([]model.Finding, error) {
	docs, err := s.source.Documents(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Infof("开始批量分析 %d 个文档，并发数 %d", len(docs), s.workers)

	perDoc := make([][]model.Finding, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.analyzer.AnalyzeFile(gctx, doc.Path)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.log.WithError(err).Warnf("跳过文档 [%s]", doc.Name)
				return nil
			}

			company := s.labeler.Label(doc.Name)
			findings := make([]model.Finding, len(result.Findings))
			for j, f := range result.Findings {
				f.Company = company
				findings[j] = f
			}
			perDoc[i] = findings
			s.log.Infof("文档 [%s] 分析完成: 公司 %s，风险 %d 条，评分 %.1f",
				doc.Name, company, result.TotalRisksFound, result.OverallRiskScore)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []model.Finding
	for _, fs := range perDoc {
		all = append(all, fs...)
	}
	return all, nil
}

// Run 分析全部文档并返回汇总行
func (s *Summarizer) Run(ctx context.Context) ([]model.SummaryRow, error) {
	findings, err := s.Collect(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(findings), nil
}

type groupKey struct {
	company  string
	category model.Category
}

// Summarize 按 (公司, 类别) 分组统计风险数与平均负面程度，结果按公司、类别名排序
func Summarize(findings []model.Finding) []model.SummaryRow {
	type acc struct {
		count int
		sum   float64
	}
	groups := make(map[groupKey]*acc)
	for _, f := range findings {
		k := groupKey{company: f.Company, category: f.Category}
		a, ok := groups[k]
		if !ok {
			a = &acc{}
			groups[k] = a
		}
		a.count++
		a.sum += f.Negativity
	}

	rows := make([]model.SummaryRow, 0, len(groups))
	for k, a := range groups {
		rows = append(rows, model.SummaryRow{
			Company:       k.company,
			Category:      k.category,
			RiskCount:     a.count,
			AvgNegativity: a.sum / float64(a.count),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Company != rows[j].Company {
			return rows[i].Company < rows[j].Company
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}
