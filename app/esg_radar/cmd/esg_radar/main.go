package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/config"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/logger"
)

var confPath string

var rootCmd = &cobra.Command{
	Use:   "esg_radar",
	Short: "ESG 风险检测与评分",
	Long:  "esg_radar 扫描企业披露文档，识别 ESG 风险句子并给出 0-10 的综合风险评分。",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&confPath, "conf", "configs/config.yaml", "配置文件路径")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// setup 加载配置并初始化日志
func setup() (*config.Config, error) {
	cfg, err := config.LoadConfig(confPath)
	if err != nil {
		return nil, fmt.Errorf("无法加载配置文件: %w", err)
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return nil, fmt.Errorf("无法初始化日志: %w", err)
	}
	return cfg, nil
}

func main() {
	// 收到中断信号时取消正在进行的分析
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
