package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/olenagerasimova/management-api/internal/domain"
	"github.com/olenagerasimova/management-api/internal/infrastructure/redis"
)

// PermissionsCacheClient は権限キャッシュに必要なRedis操作を抽象化するインターフェース
type PermissionsCacheClient interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

var _ domain.RepoPermissions = (*CachingRepoPermissions)(nil)

// cachedPermission はキャッシュに保存する権限レコードの形
type cachedPermission struct {
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
}

// CachingRepoPermissions は永続ストアの前段にRedisキャッシュを挟むRepoPermissionsの実装。
// 書き込みはストアを正とし、成功後に関連キーを無効化する。
type CachingRepoPermissions struct {
	store       domain.RepoPermissions
	cacheClient PermissionsCacheClient
	cacheTTL    time.Duration
}

func NewCachingRepoPermissions(
	store domain.RepoPermissions,
	cacheClient PermissionsCacheClient,
) *CachingRepoPermissions {
	return &CachingRepoPermissions{
		store:       store,
		cacheClient: cacheClient,
		cacheTTL:    redis.PermissionsTTL,
	}
}

func NewCachingRepoPermissionsWithTTL(
	store domain.RepoPermissions,
	cacheClient PermissionsCacheClient,
	ttl time.Duration,
) *CachingRepoPermissions {
	return &CachingRepoPermissions{
		store:       store,
		cacheClient: cacheClient,
		cacheTTL:    ttl,
	}
}

func (r *CachingRepoPermissions) Repositories(ctx context.Context) ([]string, error) {
	var cached []string
	if err := r.cacheClient.GetJSON(ctx, redis.RepositoriesKey, &cached); err == nil {
		return cached, nil
	}

	repos, err := r.store.Repositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("リポジトリ一覧の取得に失敗しました: %w", err)
	}

	_ = r.cacheClient.SetJSON(ctx, redis.RepositoriesKey, repos, redis.RepositoriesTTL)
	return repos, nil
}

func (r *CachingRepoPermissions) Remove(ctx context.Context, repo string) error {
	if err := r.store.Remove(ctx, repo); err != nil {
		return fmt.Errorf("権限設定の削除に失敗しました: %w", err)
	}
	r.invalidate(ctx, repo)
	return nil
}

func (r *CachingRepoPermissions) Update(ctx context.Context, repo string, permissions []domain.PermissionItem, patterns []domain.PathPattern) error {
	if err := r.store.Update(ctx, repo, permissions, patterns); err != nil {
		return fmt.Errorf("権限設定の更新に失敗しました: %w", err)
	}
	r.invalidate(ctx, repo)
	return nil
}

func (r *CachingRepoPermissions) Permissions(ctx context.Context, repo string) ([]domain.PermissionItem, error) {
	cacheKey := redis.PermissionsKey(repo)

	var cached []cachedPermission
	if err := r.cacheClient.GetJSON(ctx, cacheKey, &cached); err == nil {
		items := make([]domain.PermissionItem, 0, len(cached))
		for _, record := range cached {
			item, err := domain.NewPermissionItem(record.Username, record.Permissions)
			if err != nil {
				return nil, fmt.Errorf("キャッシュされた権限レコードの復元に失敗しました: %w", err)
			}
			items = append(items, item)
		}
		return items, nil
	}

	items, err := r.store.Permissions(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("権限一覧の取得に失敗しました: %w", err)
	}

	records := make([]cachedPermission, 0, len(items))
	for _, item := range items {
		records = append(records, cachedPermission{
			Username:    item.Username(),
			Permissions: item.Permissions(),
		})
	}
	_ = r.cacheClient.SetJSON(ctx, cacheKey, records, r.cacheTTL)

	return items, nil
}

func (r *CachingRepoPermissions) Patterns(ctx context.Context, repo string) ([]domain.PathPattern, error) {
	cacheKey := redis.PatternsKey(repo)

	var cached []string
	if err := r.cacheClient.GetJSON(ctx, cacheKey, &cached); err == nil {
		patterns := make([]domain.PathPattern, 0, len(cached))
		for _, expr := range cached {
			patterns = append(patterns, domain.NewPathPattern(expr))
		}
		return patterns, nil
	}

	patterns, err := r.store.Patterns(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("パターン一覧の取得に失敗しました: %w", err)
	}

	exprs := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		exprs = append(exprs, pattern.String())
	}
	_ = r.cacheClient.SetJSON(ctx, cacheKey, exprs, r.cacheTTL)

	return patterns, nil
}

func (r *CachingRepoPermissions) invalidate(ctx context.Context, repo string) {
	_ = r.cacheClient.Delete(ctx, redis.PermissionsKey(repo), redis.PatternsKey(repo), redis.RepositoriesKey)
}
