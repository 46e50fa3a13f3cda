package service

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/esg_radar/app/dashboard/internal/usecase"
)

// AnalysisService 报告分析 HTTP 接口
type AnalysisService struct {
	uc  *usecase.ReportUseCase
	log *log.Helper
}

func NewAnalysisService(uc *usecase.ReportUseCase, logger log.Logger) *AnalysisService {
	return &AnalysisService{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}

// RegisterHTTP 在指定前缀下注册 /reports 与 /analyze
func (s *AnalysisService) RegisterHTTP(r *http.Router) {
	r.GET("/reports", s.ListReports)
	r.GET("/analyze", s.AnalyzeReport)
}

// ListReports GET /reports
func (s *AnalysisService) ListReports(ctx http.Context) error {
	h := ctx.Middleware(func(ctx context.Context, _ interface{}) (interface{}, error) {
		return s.uc.List(ctx)
	})
	out, err := h(ctx, nil)
	if err != nil {
		return err
	}
	return ctx.Result(200, out)
}

// AnalyzeReport GET /analyze?report=<name>
func (s *AnalysisService) AnalyzeReport(ctx http.Context) error {
	name := ctx.Query().Get("report")
	h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
		return s.uc.Analyze(ctx, req.(string))
	})
	out, err := h(ctx, name)
	if err != nil {
		return err
	}
	return ctx.Result(200, out)
}
