//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_health_checker.go -package=usecase
package usecase

import (
	"context"
)

// HealthChecker は権限ストアやキャッシュなど外部依存への疎通確認を行う。
// NameはReadinessレスポンス内のコンポーネント名として使われる。
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
