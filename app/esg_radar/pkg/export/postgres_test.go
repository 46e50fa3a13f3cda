package export

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
)

// 需要本地 Postgres：ESG_RADAR_TEST_DSN="host=localhost port=5432 user=postgres password=postgres dbname=esg sslmode=disable"
func TestPostgresSink_Write(t *testing.T) {
	dsn := os.Getenv("ESG_RADAR_TEST_DSN")
	if dsn == "" {
		t.Skip("ESG_RADAR_TEST_DSN not set")
	}
	ctx := context.Background()

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		t.Fatal(err)
	}
	s := &PostgresSink{db: db}

	runID := uuid.NewString()
	rows := []model.SummaryRow{
		{Company: "Apple", Category: model.Governance, RiskCount: 1, AvgNegativity: 0.4},
		{Company: "Apple", Category: model.Social, RiskCount: 2, AvgNegativity: 0.25},
	}
	if err := s.Write(ctx, runID, rows); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM esg_risk_summary WHERE run_id = $1`, runID).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != len(rows) {
		t.Errorf("stored %d rows, want %d", count, len(rows))
	}
}
