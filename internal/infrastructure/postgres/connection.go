package postgres

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultPoolSize   = 25
	connectTimeout    = 10 * time.Second
	maxConnLifetime   = time.Hour
	maxConnIdleTime   = 30 * time.Minute
	healthCheckPeriod = time.Minute
)

// PostgresConfig は権限ストア用PostgreSQLへの接続設定。
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	PoolSize int
	SSLMode  string
	CAFile   string
}

// NewPostgresConnection は接続プールを作成し、疎通確認まで行って返す。
func NewPostgresConnection(cfg PostgresConfig) (*pgxpool.Pool, error) {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("無効なポート番号です: %d", cfg.Port)
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = defaultPoolSize
	}

	poolCfg, err := pgxpool.ParseConfig("")
	if err != nil {
		return nil, fmt.Errorf("接続設定の作成に失敗しました: %w", err)
	}

	poolCfg.ConnConfig.Host = cfg.Host
	poolCfg.ConnConfig.Port = uint16(cfg.Port)
	poolCfg.ConnConfig.User = cfg.User
	poolCfg.ConnConfig.Password = cfg.Password
	poolCfg.ConnConfig.Database = cfg.Database
	poolCfg.MaxConns = int32(cfg.PoolSize)
	poolCfg.MaxConnLifetime = maxConnLifetime
	poolCfg.MaxConnIdleTime = maxConnIdleTime
	poolCfg.HealthCheckPeriod = healthCheckPeriod

	tlsCfg, err := tlsConfigFor(cfg)
	if err != nil {
		return nil, err
	}
	poolCfg.ConnConfig.TLSConfig = tlsCfg

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("接続プールの作成に失敗しました: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("データベースへの疎通確認に失敗しました: %w", err)
	}
	return pool, nil
}

// tlsConfigFor はSSLModeに応じたTLS設定を返す。未指定時はrequire扱い。
func tlsConfigFor(cfg PostgresConfig) (*tls.Config, error) {
	mode := cfg.SSLMode
	if mode == "" {
		mode = "require"
	}

	switch mode {
	case "disable":
		return nil, nil
	case "require":
		return &tls.Config{InsecureSkipVerify: true}, nil
	case "verify-ca":
		return tlsConfigWithCA(cfg.CAFile, "")
	case "verify-full":
		return tlsConfigWithCA(cfg.CAFile, cfg.Host)
	default:
		return nil, fmt.Errorf("未対応のsslModeです: %s", mode)
	}
}

func tlsConfigWithCA(caFile, serverName string) (*tls.Config, error) {
	caPEM, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("CA証明書ファイルの読み込みに失敗しました: %w", err)
	}

	certPool := x509.NewCertPool()
	if !certPool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("CA証明書の解析に失敗しました")
	}

	return &tls.Config{
		RootCAs:    certPool,
		ServerName: serverName,
	}, nil
}
