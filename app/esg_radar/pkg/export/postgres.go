package export

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/config"
	"github.com/iWorld-y/esg_radar/app/esg_radar/pkg/model"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS esg_risk_summary (
	id             BIGSERIAL PRIMARY KEY,
	run_id         UUID             NOT NULL,
	company        TEXT             NOT NULL,
	category       TEXT             NOT NULL,
	risk_count     INTEGER          NOT NULL,
	avg_negativity DOUBLE PRECISION NOT NULL,
	created_at     TIMESTAMPTZ      NOT NULL DEFAULT now()
)`

const insertRowSQL = `INSERT INTO esg_risk_summary (run_id, company, category, risk_count, avg_negativity)
VALUES ($1, $2, $3, $4, $5)`

// PostgresSink 将汇总行写入 esg_risk_summary 表，同一批次的行共享 run_id
type PostgresSink struct {
	db *sql.DB
}

// Ensure PostgresSink implements Sink
var _ Sink = (*PostgresSink)(nil)

// NewPostgresSink 连接数据库并确保表存在
func NewPostgresSink(ctx context.Context, cfg config.DBConfig) (*PostgresSink, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &PostgresSink{db: db}, nil
}

// Close 关闭数据库连接
func (s *PostgresSink) Close() error {
	return s.db.Close()
}

// Write 在一个事务内写入全部汇总行
func (s *PostgresSink) Write(ctx context.Context, runID string, rows []model.SummaryRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, insertRowSQL)
	if err != nil {
		return rollback(tx, err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, runID, r.Company, string(r.Category), r.RiskCount, r.AvgNegativity); err != nil {
			return rollback(tx, fmt.Errorf("insert summary row [%s/%s]: %w", r.Company, r.Category, err))
		}
	}
	return tx.Commit()
}

func rollback(tx *sql.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}
