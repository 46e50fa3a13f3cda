package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/esg_radar/app/dashboard/internal/data"
	"github.com/iWorld-y/esg_radar/app/dashboard/internal/service"
	"github.com/iWorld-y/esg_radar/app/dashboard/internal/usecase"
)

// ProviderSet 是 ESG 看板服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,
	NewEngine,

	// Data providers
	data.NewData,
	data.NewReportRepo,

	// UseCase providers
	usecase.NewReportUseCase,

	// Service providers
	service.NewAnalysisService,
)
