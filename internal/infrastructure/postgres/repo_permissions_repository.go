package postgres

import (
	"context"
	"fmt"

	"github.com/newmo-oss/ctxtime"
	"github.com/olenagerasimova/management-api/internal/domain"
)

var _ domain.RepoPermissions = (*RepoPermissionsRepositoryImpl)(nil)

// RepoPermissionsRepositoryImpl はPostgreSQLを使ったRepoPermissionsの実装。
// Updateは権限・パターン両テーブルをトランザクション内で
// 削除して挿入し直すため、読み手は更新前か更新後の状態のみを観測する。
type RepoPermissionsRepositoryImpl struct {
	dao *RepoPermissionsDAO
	tm  *TransactionManager
}

func NewRepoPermissionsRepository(pool TxPoolInterface) *RepoPermissionsRepositoryImpl {
	return &RepoPermissionsRepositoryImpl{
		dao: NewRepoPermissionsDAO(pool),
		tm:  NewTransactionManager(pool),
	}
}

func (r *RepoPermissionsRepositoryImpl) Repositories(ctx context.Context) ([]string, error) {
	repos, err := r.dao.ListRepositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("リポジトリ一覧の取得に失敗しました: %w", err)
	}
	return repos, nil
}

func (r *RepoPermissionsRepositoryImpl) Remove(ctx context.Context, repo string) error {
	err := r.tm.WithTransaction(ctx, DefaultTxOptions(), func(ctx context.Context, tx PoolInterface) error {
		return NewRepoPermissionsDAO(tx).DeleteByRepo(ctx, repo)
	})
	if err != nil {
		return fmt.Errorf("権限設定の削除に失敗しました: %w", err)
	}
	return nil
}

func (r *RepoPermissionsRepositoryImpl) Update(ctx context.Context, repo string, permissions []domain.PermissionItem, patterns []domain.PathPattern) error {
	now := ctxtime.Now(ctx)

	err := r.tm.WithTransaction(ctx, DefaultTxOptions(), func(ctx context.Context, tx PoolInterface) error {
		dao := NewRepoPermissionsDAO(tx)

		if err := dao.DeleteByRepo(ctx, repo); err != nil {
			return err
		}
		for _, item := range permissions {
			row := &PermissionItemRow{
				Repo:        repo,
				Username:    item.Username(),
				Permissions: item.Permissions(),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := dao.InsertPermissionItem(ctx, row); err != nil {
				return err
			}
		}
		for _, pattern := range patterns {
			row := &PathPatternRow{
				Repo: repo,
				Expr: pattern.String(),
			}
			if err := dao.InsertPathPattern(ctx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("権限設定の更新に失敗しました: %w", err)
	}
	return nil
}

func (r *RepoPermissionsRepositoryImpl) Permissions(ctx context.Context, repo string) ([]domain.PermissionItem, error) {
	rows, err := r.dao.FindPermissionsByRepo(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("権限設定の取得に失敗しました: %w", err)
	}

	items := make([]domain.PermissionItem, 0, len(rows))
	for _, row := range rows {
		item, err := domain.NewPermissionItem(row.Username, row.Permissions)
		if err != nil {
			return nil, fmt.Errorf("権限レコードの復元に失敗しました: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *RepoPermissionsRepositoryImpl) Patterns(ctx context.Context, repo string) ([]domain.PathPattern, error) {
	rows, err := r.dao.FindPatternsByRepo(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("パスパターンの取得に失敗しました: %w", err)
	}

	patterns := make([]domain.PathPattern, 0, len(rows))
	for _, row := range rows {
		patterns = append(patterns, domain.NewPathPattern(row.Expr))
	}
	return patterns, nil
}
