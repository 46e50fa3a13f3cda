package main

import (
	"github.com/spf13/cobra"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/engine"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "批量分析文档目录并导出公司 x 类别汇总",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	logger.Log.Info("启动 ESG 风险批量导出...")

	ctx := cmd.Context()
	e, err := engine.NewEngine(ctx, cfg, logger.Log)
	if err != nil {
		return err
	}
	defer e.Close()

	result, err := e.Export(ctx)
	if err != nil {
		return err
	}
	if len(result.Rows) > 0 {
		logger.Log.Infof("✅ 导出完毕: %s (%d 行)", cfg.Output.CSVFile, len(result.Rows))
	}
	return nil
}
