package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotReady は依存コンポーネントのいずれかが利用不能であることを示す。
var ErrNotReady = errors.New("not ready")

// ComponentStatus は権限ストアやキャッシュなど、依存コンポーネント1つの疎通結果。
type ComponentStatus struct {
	Name  string
	Ready bool
	Err   error
}

// ReadinessUseCase は登録された全コンポーネントの疎通確認をまとめて実行する。
type ReadinessUseCase struct {
	checkers []HealthChecker
}

func NewReadinessUseCase(checkers ...HealthChecker) *ReadinessUseCase {
	return &ReadinessUseCase{
		checkers: checkers,
	}
}

// Execute は全チェッカーを順に実行し、コンポーネントごとの状態を返す。
// 1つでも失敗した場合は失敗したコンポーネント名を含むErrNotReadyを返す。
// チェッカーが1つも登録されていない場合は常にreadyとみなす。
func (uc *ReadinessUseCase) Execute(ctx context.Context) ([]ComponentStatus, error) {
	statuses := make([]ComponentStatus, 0, len(uc.checkers))
	var failed []string

	for _, checker := range uc.checkers {
		err := checker.Check(ctx)
		statuses = append(statuses, ComponentStatus{
			Name:  checker.Name(),
			Ready: err == nil,
			Err:   err,
		})
		if err != nil {
			failed = append(failed, checker.Name())
		}
	}

	if len(failed) > 0 {
		return statuses, fmt.Errorf("%w: %s", ErrNotReady, strings.Join(failed, ", "))
	}
	return statuses, nil
}
