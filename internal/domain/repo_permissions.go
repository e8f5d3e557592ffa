//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_repo_permissions.go -package=domain
package domain

import "context"

// RepoPermissions はリポジトリごとの権限設定を管理するストアの契約です。
// Update は権限・パターン両セットの完全な置き換えであり、読み手は
// 置き換え前か置き換え後のどちらかの状態のみを観測します。
type RepoPermissions interface {
	Repositories(ctx context.Context) ([]string, error)
	Remove(ctx context.Context, repo string) error
	Update(ctx context.Context, repo string, permissions []PermissionItem, patterns []PathPattern) error
	Permissions(ctx context.Context, repo string) ([]PermissionItem, error)
	Patterns(ctx context.Context, repo string) ([]PathPattern, error)
}
