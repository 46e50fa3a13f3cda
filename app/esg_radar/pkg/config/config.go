package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// 情感评分提供方
const (
	ProviderVader = "vader"
	ProviderLLM   = "llm"
)

// Config 项目配置结构体
type Config struct {
	SourceDir   string            `yaml:"source_dir"`
	Extensions  []string          `yaml:"extensions"`
	Lexicon     LexiconConfig     `yaml:"lexicon"`
	Sentiment   SentimentConfig   `yaml:"sentiment"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Companies   []CompanyAlias    `yaml:"companies"`
	Output      OutputConfig      `yaml:"output"`
	Log         LogConfig         `yaml:"log"`
}

// LexiconConfig 关键词表配置，File 为空时使用内嵌词表
type LexiconConfig struct {
	File string `yaml:"file"`
}

// SentimentConfig 情感评分配置
type SentimentConfig struct {
	Provider string    `yaml:"provider"` // vader 或 llm
	LLM      LLMConfig `yaml:"llm"`
}

// LLMConfig LLM 相关配置
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

// AnalysisConfig 单文档分析配置
type AnalysisConfig struct {
	DocumentTimeout string `yaml:"document_timeout"` // 例如 "60s"，为空则不限时
}

// ConcurrencyConfig 并发控制配置
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"` // 批量分析的并发文档数
	QPS     int `yaml:"qps"`
	RPM     int `yaml:"rpm"`
}

// CompanyAlias 文件名关键字到公司名称的映射
type CompanyAlias struct {
	Match []string `yaml:"match"`
	Name  string   `yaml:"name"`
}

// OutputConfig 导出配置
type OutputConfig struct {
	CSVFile  string   `yaml:"csv_file"`
	Postgres DBConfig `yaml:"postgres"`
}

// DBConfig 数据库相关配置，Host 为空表示不导出到数据库
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// DSN 生成 lib/pq 连接串
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultCompanies 默认公司别名表
func DefaultCompanies() []CompanyAlias {
	return []CompanyAlias{
		{Match: []string{"microsoft"}, Name: "Microsoft"},
		{Match: []string{"google", "alphabet"}, Name: "Alphabet (Google)"},
		{Match: []string{"apple"}, Name: "Apple"},
		{Match: []string{"amazon"}, Name: "Amazon"},
		{Match: []string{"nvidia"}, Name: "NVIDIA"},
	}
}

// ApplyDefaults 为未设置的字段填充默认值
func (c *Config) ApplyDefaults() {
	if c.SourceDir == "" {
		c.SourceDir = "data"
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".pdf"}
	}
	if c.Sentiment.Provider == "" {
		c.Sentiment.Provider = ProviderVader
	}
	if c.Analysis.DocumentTimeout == "" {
		c.Analysis.DocumentTimeout = "60s"
	}
	if c.Concurrency.Workers <= 0 {
		c.Concurrency.Workers = 4
	}
	if c.Concurrency.QPS <= 0 {
		c.Concurrency.QPS = 1
	}
	if c.Concurrency.RPM <= 0 {
		c.Concurrency.RPM = 60
	}
	if c.Companies == nil {
		c.Companies = DefaultCompanies()
	}
	if c.Output.CSVFile == "" {
		c.Output.CSVFile = "tableau_export_data.csv"
	}
	if c.Output.Postgres.Host != "" && c.Output.Postgres.Port == 0 {
		c.Output.Postgres.Port = 5432
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// DocumentTimeout 解析单文档超时，0 表示不限时
func (c *Config) DocumentTimeout() (time.Duration, error) {
	if c.Analysis.DocumentTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Analysis.DocumentTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid document_timeout %q: %w", c.Analysis.DocumentTimeout, err)
	}
	return d, nil
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}
