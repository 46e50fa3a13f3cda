package export

import (
	"context"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
)

// Sink 批量导出目标，每次批量运行调用一次 Write
type Sink interface {
	Write(ctx context.Context, runID string, rows []model.SummaryRow) error
}

// Header 导出表格的列名，下游 BI 报表按此列名取数
var Header = []string{"company", "category", "Risk_Count", "Avg_Negativity"}
