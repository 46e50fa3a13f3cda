package usecase

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/esg_radar/app/dashboard/internal/repo"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/extract"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
)

// ReportUseCase 报告分析业务逻辑
type ReportUseCase struct {
	repo repo.ReportRepo
	log  *log.Helper
}

// NewReportUseCase 创建报告分析业务逻辑实例
func NewReportUseCase(repo repo.ReportRepo, logger log.Logger) *ReportUseCase {
	return &ReportUseCase{repo: repo, log: log.NewHelper(logger)}
}

// List 列出全部报告文件名，目录为空时返回空列表
func (uc *ReportUseCase) List(ctx context.Context) ([]string, error) {
	reports, err := uc.repo.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(reports))
	for _, r := range reports {
		names = append(names, r.Name)
	}
	return names, nil
}

// Analyze 分析指定报告
func (uc *ReportUseCase) Analyze(ctx context.Context, name string) (*model.AnalysisResult, error) {
	if name == "" {
		return nil, errors.BadRequest("REPORT_REQUIRED", "Report name is required")
	}
	report, err := uc.repo.GetReport(ctx, name)
	if err != nil {
		return nil, err
	}

	uc.log.WithContext(ctx).Infof("-> Received request to analyze: %s", name)
	result, err := uc.repo.AnalyzeReport(ctx, report)
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded):
		uc.log.WithContext(ctx).Errorf("analyze %s timed out: %v", name, err)
		return nil, errors.InternalServer("ANALYSIS_TIMEOUT", "Analysis timed out")
	case errors.Is(err, extract.ErrExtractionFailed):
		uc.log.WithContext(ctx).Errorf("analyze %s: %v", name, err)
		return nil, errors.InternalServer("EXTRACTION_FAILED", "Failed to extract text from document")
	default:
		return nil, err
	}

	uc.log.WithContext(ctx).Infof("-> Analysis complete. Score: %v. Found %d risks.",
		result.OverallRiskScore, result.TotalRisksFound)
	return result, nil
}
