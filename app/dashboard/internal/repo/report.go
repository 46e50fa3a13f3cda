package repo

import (
	"context"

	"github.com/iWorld-y/esg_radar/app/dashboard/internal/domain"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
)

// ReportRepo 报告仓库接口
type ReportRepo interface {
	// ListReports 按文件名排序列出可分析的报告
	ListReports(ctx context.Context) ([]*domain.Report, error)
	// GetReport 根据文件名获取报告，不存在时返回 REPORT_NOT_FOUND
	GetReport(ctx context.Context, name string) (*domain.Report, error)
	// AnalyzeReport 对报告执行完整的风险分析
	AnalyzeReport(ctx context.Context, report *domain.Report) (*model.AnalysisResult, error)
}
