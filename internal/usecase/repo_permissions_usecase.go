package usecase

import (
	"context"
	"fmt"

	"github.com/olenagerasimova/management-api/internal/domain"
)

// RepoPermissionsUseCase は管理APIからのリポジトリ権限の読み書きを担う。
// Update前にパターン式の文法を検証する。
type RepoPermissionsUseCase struct {
	store domain.RepoPermissions
}

func NewRepoPermissionsUseCase(store domain.RepoPermissions) *RepoPermissionsUseCase {
	return &RepoPermissionsUseCase{
		store: store,
	}
}

func (uc *RepoPermissionsUseCase) Repositories(ctx context.Context) ([]string, error) {
	repos, err := uc.store.Repositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("リポジトリ一覧の取得に失敗しました: %w", err)
	}
	return repos, nil
}

func (uc *RepoPermissionsUseCase) Permissions(ctx context.Context, repo string) ([]domain.PermissionItem, error) {
	items, err := uc.store.Permissions(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("権限設定の取得に失敗しました: %w", err)
	}
	return items, nil
}

func (uc *RepoPermissionsUseCase) Patterns(ctx context.Context, repo string) ([]domain.PathPattern, error) {
	patterns, err := uc.store.Patterns(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("パスパターンの取得に失敗しました: %w", err)
	}
	return patterns, nil
}

// Update はリポジトリの権限セットとパターンセットを丸ごと置き換える。
// 文法上不正なパターンが含まれる場合は ErrInvalidPattern を返し、
// ストアには触れない。
func (uc *RepoPermissionsUseCase) Update(ctx context.Context, repo string, permissions []domain.PermissionItem, patterns []domain.PathPattern) error {
	for _, pattern := range patterns {
		if !pattern.Valid(repo) {
			return fmt.Errorf("%w: %s", domain.ErrInvalidPattern, pattern.String())
		}
	}
	if err := uc.store.Update(ctx, repo, permissions, patterns); err != nil {
		return fmt.Errorf("権限設定の更新に失敗しました: %w", err)
	}
	return nil
}

func (uc *RepoPermissionsUseCase) Remove(ctx context.Context, repo string) error {
	if err := uc.store.Remove(ctx, repo); err != nil {
		return fmt.Errorf("権限設定の削除に失敗しました: %w", err)
	}
	return nil
}
