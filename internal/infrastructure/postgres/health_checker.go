package postgres

import (
	"context"
	"fmt"
)

// Pinger は接続プールの疎通確認に必要な操作。
type Pinger interface {
	Ping(ctx context.Context) error
}

// PostgresHealthChecker は権限ストアとして使うPostgreSQLの疎通確認を行う。
type PostgresHealthChecker struct {
	pool Pinger
}

func NewPostgresHealthChecker(pool Pinger) *PostgresHealthChecker {
	return &PostgresHealthChecker{pool: pool}
}

func (c *PostgresHealthChecker) Name() string {
	return "postgres"
}

func (c *PostgresHealthChecker) Check(ctx context.Context) error {
	if err := c.pool.Ping(ctx); err != nil {
		return fmt.Errorf("PostgreSQLへの疎通確認に失敗しました: %w", err)
	}
	return nil
}
