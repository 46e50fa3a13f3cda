package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/esg_radar/app/dashboard/internal/domain"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/extract"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
)

// mockReportRepo 模拟报告仓库
type mockReportRepo struct {
	reports    []*domain.Report
	analyzeErr error
	analyzed   []string
}

func (m *mockReportRepo) ListReports(ctx context.Context) ([]*domain.Report, error) {
	return m.reports, nil
}

func (m *mockReportRepo) GetReport(ctx context.Context, name string) (*domain.Report, error) {
	for _, r := range m.reports {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, errors.NotFound("REPORT_NOT_FOUND", fmt.Sprintf("Report '%s' not found", name))
}

func (m *mockReportRepo) AnalyzeReport(ctx context.Context, report *domain.Report) (*model.AnalysisResult, error) {
	m.analyzed = append(m.analyzed, report.Name)
	if m.analyzeErr != nil {
		return nil, m.analyzeErr
	}
	return &model.AnalysisResult{OverallRiskScore: 4.2, TotalRisksFound: 1, Findings: []model.Finding{{}}}, nil
}

func newRepo() *mockReportRepo {
	return &mockReportRepo{reports: []*domain.Report{
		{Name: "apple.pdf", Path: "data/apple.pdf"},
		{Name: "nvidia.pdf", Path: "data/nvidia.pdf"},
	}}
}

func TestReportUseCase_List(t *testing.T) {
	uc := NewReportUseCase(newRepo(), log.DefaultLogger)

	names, err := uc.List(context.Background())
	if err != nil {
		t.Errorf("List() error = %v", err)
		return
	}
	if len(names) != 2 || names[0] != "apple.pdf" || names[1] != "nvidia.pdf" {
		t.Errorf("List() names = %v", names)
	}
}

func TestReportUseCase_ListEmpty(t *testing.T) {
	uc := NewReportUseCase(&mockReportRepo{}, log.DefaultLogger)

	names, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if names == nil || len(names) != 0 {
		t.Errorf("List() = %#v, want empty non-nil slice", names)
	}
}

func TestReportUseCase_Analyze(t *testing.T) {
	repo := newRepo()
	uc := NewReportUseCase(repo, log.DefaultLogger)

	result, err := uc.Analyze(context.Background(), "nvidia.pdf")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.OverallRiskScore != 4.2 {
		t.Errorf("Analyze() score = %v, want 4.2", result.OverallRiskScore)
	}
	if len(repo.analyzed) != 1 || repo.analyzed[0] != "nvidia.pdf" {
		t.Errorf("analyzed = %v", repo.analyzed)
	}
}

func TestReportUseCase_AnalyzeErrors(t *testing.T) {
	tests := []struct {
		name       string
		report     string
		analyzeErr error
		code       int32
		reason     string
	}{
		{"missing name", "", nil, 400, "REPORT_REQUIRED"},
		{"unknown report", "tesla.pdf", nil, 404, "REPORT_NOT_FOUND"},
		{"extraction failed", "apple.pdf", extract.Failed("data/apple.pdf", fmt.Errorf("bad xref")), 500, "EXTRACTION_FAILED"},
		{"timeout", "apple.pdf", fmt.Errorf("analyze: %w", context.DeadlineExceeded), 500, "ANALYSIS_TIMEOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo()
			repo.analyzeErr = tt.analyzeErr
			uc := NewReportUseCase(repo, log.DefaultLogger)

			_, err := uc.Analyze(context.Background(), tt.report)
			se := errors.FromError(err)
			if se.Code != tt.code || se.Reason != tt.reason {
				t.Errorf("Analyze() error = %v, want %d %s", err, tt.code, tt.reason)
			}
		})
	}
}
