package data

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/esg_radar/app/dashboard/internal/domain"
	"github.com/iWorld-y/esg_radar/app/dashboard/internal/repo"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/corpus"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
)

type reportRepo struct {
	data *Data
	log  *log.Helper
}

func NewReportRepo(data *Data, logger log.Logger) repo.ReportRepo {
	return &reportRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *reportRepo) ListReports(ctx context.Context) ([]*domain.Report, error) {
	docs, err := r.data.engine.Source().Documents(ctx)
	if err != nil {
		if errors.Is(err, corpus.ErrSourceNotFound) {
			return nil, errors.NotFound("DATA_DIR_NOT_FOUND", "Data directory not found")
		}
		return nil, err
	}

	reports := make([]*domain.Report, 0, len(docs))
	for _, d := range docs {
		reports = append(reports, &domain.Report{Name: d.Name, Path: d.Path})
	}
	return reports, nil
}

func (r *reportRepo) GetReport(ctx context.Context, name string) (*domain.Report, error) {
	notFound := errors.NotFound("REPORT_NOT_FOUND", fmt.Sprintf("Report '%s' not found", name))
	// 只允许数据目录下的文件名
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return nil, notFound
	}

	path := filepath.Join(r.data.engine.Source().Dir(), name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, notFound
	}
	return &domain.Report{Name: name, Path: path}, nil
}

func (r *reportRepo) AnalyzeReport(ctx context.Context, report *domain.Report) (*model.AnalysisResult, error) {
	return r.data.engine.Analyzer().AnalyzeFile(ctx, report.Path)
}
