package corpus

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/config"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/extract"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
)

// staticSource 返回固定文档列表
type staticSource []Document

func (s staticSource) Documents(context.Context) ([]Document, error) {
	return s, nil
}

// mockAnalyzer 按路径返回预设结果，未预设的路径视为提取失败
type mockAnalyzer struct {
	mu      sync.Mutex
	calls   int
	results map[string]*model.AnalysisResult
}

func (m *mockAnalyzer) AnalyzeFile(_ context.Context, path string) (*model.AnalysisResult, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	r, ok := m.results[path]
	if !ok {
		return nil, extract.Failed(path, errors.New("corrupt xref table"))
	}
	return r, nil
}

func resultOf(findings ...model.Finding) *model.AnalysisResult {
	return &model.AnalysisResult{TotalRisksFound: len(findings), Findings: findings}
}

func docs(names ...string) staticSource {
	out := make(staticSource, 0, len(names))
	for _, n := range names {
		out = append(out, Document{Name: n, Path: filepath.Join("data", n)})
	}
	return out
}

func TestSummarizer_SameCompanyTwoDocuments(t *testing.T) {
	analyzer := &mockAnalyzer{results: map[string]*model.AnalysisResult{
		filepath.Join("data", "microsoft_2022.pdf"): resultOf(
			model.Finding{Category: model.Environmental, Keyword: "spill", Negativity: 0.5},
			model.Finding{Category: model.Social, Keyword: "strike", Negativity: 0.25},
		),
		filepath.Join("data", "microsoft_2023.pdf"): resultOf(
			model.Finding{Category: model.Environmental, Keyword: "waste", Negativity: 0.25},
			model.Finding{Category: model.Social, Keyword: "layoff", Negativity: 0.75},
		),
	}}
	s := NewSummarizer(docs("microsoft_2022.pdf", "microsoft_2023.pdf"), analyzer,
		NewLabeler(config.DefaultCompanies()), WithWorkers(2))

	got, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []model.SummaryRow{
		{Company: "Microsoft", Category: model.Environmental, RiskCount: 2, AvgNegativity: 0.375},
		{Company: "Microsoft", Category: model.Social, RiskCount: 2, AvgNegativity: 0.5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizer_SkipsFailedDocument(t *testing.T) {
	log, hook := test.NewNullLogger()
	analyzer := &mockAnalyzer{results: map[string]*model.AnalysisResult{
		filepath.Join("data", "apple.pdf"): resultOf(
			model.Finding{Category: model.Governance, Keyword: "lawsuit", Negativity: 0.4},
		),
	}}
	s := NewSummarizer(docs("apple.pdf", "broken.pdf"), analyzer,
		NewLabeler(config.DefaultCompanies()), WithWorkers(4), WithLogger(log))

	got, err := s.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	want := []model.Finding{
		{Category: model.Governance, Keyword: "lawsuit", Negativity: 0.4, Company: "Apple"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect() mismatch (-want +got):\n%s", diff)
	}
	if analyzer.calls != 2 {
		t.Errorf("analyzer called %d times, want 2", analyzer.calls)
	}

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
		}
	}
	if !warned {
		t.Error("expected a warning for the skipped document")
	}
}

func TestSummarizer_DoesNotMutateResults(t *testing.T) {
	original := resultOf(model.Finding{Category: model.Social, Keyword: "strike", Negativity: 0.6})
	analyzer := &mockAnalyzer{results: map[string]*model.AnalysisResult{
		filepath.Join("data", "nvidia.pdf"): original,
	}}
	s := NewSummarizer(docs("nvidia.pdf"), analyzer, NewLabeler(config.DefaultCompanies()))

	if _, err := s.Collect(context.Background()); err != nil {
		t.Fatal(err)
	}
	if original.Findings[0].Company != "" {
		t.Errorf("analysis result mutated: company = %q", original.Findings[0].Company)
	}
}

func TestSummarizer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewSummarizer(docs("a.pdf"), &mockAnalyzer{}, NewLabeler(nil))
	if _, err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestSummarize(t *testing.T) {
	findings := []model.Finding{
		{Company: "Tesla", Category: model.Social, Negativity: 0.2},
		{Company: "Apple", Category: model.Social, Negativity: 0.5},
		{Company: "Apple", Category: model.Environmental, Negativity: 0.5},
		{Company: "Apple", Category: model.Environmental, Negativity: 1},
	}
	want := []model.SummaryRow{
		{Company: "Apple", Category: model.Environmental, RiskCount: 2, AvgNegativity: 0.75},
		{Company: "Apple", Category: model.Social, RiskCount: 1, AvgNegativity: 0.5},
		{Company: "Tesla", Category: model.Social, RiskCount: 1, AvgNegativity: 0.2},
	}
	if diff := cmp.Diff(want, Summarize(findings)); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if got := Summarize(nil); len(got) != 0 {
		t.Errorf("Summarize(nil) = %v, want empty", got)
	}
}
