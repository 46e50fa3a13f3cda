package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
)

// CSVSink 将汇总行写入 CSV 文件，已存在的文件会被覆盖
type CSVSink struct {
	path string
}

// Ensure CSVSink implements Sink
var _ Sink = (*CSVSink)(nil)

// NewCSVSink 创建 CSV 导出
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

// Path 返回输出文件路径
func (s *CSVSink) Path() string {
	return s.path
}

// Write 写入表头与全部汇总行
func (s *CSVSink) Write(ctx context.Context, _ string, rows []model.SummaryRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Company,
			string(r.Category),
			strconv.Itoa(r.RiskCount),
			strconv.FormatFloat(r.AvgNegativity, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv file: %w", err)
	}
	return f.Close()
}
