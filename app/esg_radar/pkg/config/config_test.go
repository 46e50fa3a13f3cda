package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `source_dir: reports
sentiment:
  provider: llm
  llm:
    model: mimo-v2-flash
analysis:
  document_timeout: 90s
output:
  postgres:
    host: localhost
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.SourceDir != "reports" {
		t.Errorf("SourceDir = %q, want reports", cfg.SourceDir)
	}
	if cfg.Sentiment.Provider != ProviderLLM || cfg.Sentiment.LLM.Model != "mimo-v2-flash" {
		t.Errorf("Sentiment = %+v", cfg.Sentiment)
	}
	if cfg.Output.CSVFile != "tableau_export_data.csv" {
		t.Errorf("CSVFile default = %q", cfg.Output.CSVFile)
	}
	if cfg.Output.Postgres.Port != 5432 {
		t.Errorf("Postgres.Port default = %d, want 5432", cfg.Output.Postgres.Port)
	}
	if len(cfg.Companies) != len(DefaultCompanies()) {
		t.Errorf("Companies default = %v", cfg.Companies)
	}

	d, err := cfg.DocumentTimeout()
	if err != nil || d != 90*time.Second {
		t.Errorf("DocumentTimeout() = %v, %v; want 90s", d, err)
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.SourceDir != "data" {
		t.Errorf("SourceDir = %q, want data", cfg.SourceDir)
	}
	if cfg.Sentiment.Provider != ProviderVader {
		t.Errorf("Provider = %q, want vader", cfg.Sentiment.Provider)
	}
	if cfg.Concurrency.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Concurrency.Workers)
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".pdf" {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
	if cfg.Output.Postgres.Port != 0 {
		t.Errorf("Postgres.Port should stay unset without host, got %d", cfg.Output.Postgres.Port)
	}
}

func TestDocumentTimeout_Invalid(t *testing.T) {
	cfg := Config{Analysis: AnalysisConfig{DocumentTimeout: "soon"}}
	if _, err := cfg.DocumentTimeout(); err == nil {
		t.Error("DocumentTimeout() expected error")
	}
}
