package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/engine"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/logger"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "分析单个文档并以 JSON 输出结果",
	Long: `分析单个文档，输出综合风险评分与全部风险句子。

Usage:
  esg_radar analyze data/microsoft_2023.pdf
  esg_radar analyze --conf configs/config.yaml report.html`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	e, err := engine.NewEngine(ctx, cfg, logger.Log)
	if err != nil {
		return err
	}
	defer e.Close()

	result, err := e.Analyzer().AnalyzeFile(ctx, args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
