package s3

import (
	"context"
	"fmt"
)

// S3HealthChecker はリポジトリ設定を保存するバケットへの疎通確認を行う。
type S3HealthChecker struct {
	client *S3Client
}

func NewS3HealthChecker(client *S3Client) *S3HealthChecker {
	return &S3HealthChecker{client: client}
}

func (c *S3HealthChecker) Name() string {
	return "s3"
}

func (c *S3HealthChecker) Check(ctx context.Context) error {
	if err := c.client.HeadBucket(ctx); err != nil {
		return fmt.Errorf("バケットへの疎通確認に失敗しました: %w", err)
	}
	return nil
}
