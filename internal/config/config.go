package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// StorageBackend は権限設定の永続化先の種別
type StorageBackend string

const (
	StorageBackendPostgres StorageBackend = "postgres"
	StorageBackendS3       StorageBackend = "s3"
	StorageBackendMemory   StorageBackend = "memory"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	S3       S3Config
	Auth     AuthConfig
}

type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

type StorageConfig struct {
	Backend StorageBackend
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
}

type AuthConfig struct {
	// SessionKeyPath はセッションクッキー復号用のRSA秘密鍵のパス。
	// 空の場合はセッション認証を無効化し、すべてのクッキーを匿名として扱う。
	SessionKeyPath string
	// BearerEnabled はAuthorizationヘッダーによるトークン認証の有効化フラグ
	BearerEnabled bool
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("MGMT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.shutdowntimeout", 30*time.Second)
	viper.SetDefault("storage.backend", string(StorageBackendPostgres))
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.sslmode", "require")
	viper.SetDefault("redis.enabled", true)
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("auth.bearerenabled", true)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定の展開に失敗しました: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case StorageBackendPostgres:
		if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
			return fmt.Errorf("postgresバックエンドにはdatabase.host, database.user, database.dbnameが必要です")
		}
	case StorageBackendS3:
		if c.S3.BucketName == "" || c.S3.Region == "" {
			return fmt.Errorf("s3バックエンドにはs3.bucketname, s3.regionが必要です")
		}
	case StorageBackendMemory:
	default:
		return fmt.Errorf("未知のストレージバックエンドです: %s", c.Storage.Backend)
	}
	return nil
}

func (c DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Host: %s, Port: %d, User: %s, Password: ***, DBName: %s, SSLMode: %s}",
		c.Host, c.Port, c.User, c.DBName, c.SSLMode)
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Enabled: %t, Host: %s, Port: %d, Password: ***, DB: %d}",
		c.Enabled, c.Host, c.Port, c.DB)
}

func (c S3Config) String() string {
	return fmt.Sprintf("S3Config{Endpoint: %s, AccessKeyID: %s, SecretAccessKey: ***, BucketName: %s, Region: %s}",
		c.Endpoint, c.AccessKeyID, c.BucketName, c.Region)
}
