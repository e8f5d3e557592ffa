package s3

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/olenagerasimova/management-api/internal/domain"
	"gopkg.in/yaml.v3"
)

var _ domain.RepoPermissions = (*RepoPermissionsRepositoryImpl)(nil)

const settingsSuffix = ".yaml"

// settingsDoc はリポジトリごとの設定ドキュメントの形。
// 権限と許可パスパターンを1つのYAMLに保持する。
type settingsDoc struct {
	Repo repoSettings `yaml:"repo"`
}

type repoSettings struct {
	Permissions     map[string][]string `yaml:"permissions,omitempty"`
	IncludePatterns []string            `yaml:"permissions_include_patterns,omitempty"`
}

// RepoPermissionsRepositoryImpl はS3上の `<repo>.yaml` 設定ドキュメントを
// 使ったRepoPermissionsの実装。ドキュメント全体を置き換えるため、
// 個々のUpdateはオブジェクト単位で原子的に観測される。
type RepoPermissionsRepositoryImpl struct {
	client *S3Client
}

func NewRepoPermissionsRepository(client *S3Client) *RepoPermissionsRepositoryImpl {
	return &RepoPermissionsRepositoryImpl{
		client: client,
	}
}

func (r *RepoPermissionsRepositoryImpl) Repositories(ctx context.Context) ([]string, error) {
	keys, err := r.client.ListKeys(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("リポジトリ一覧の取得に失敗しました: %w", err)
	}

	var repos []string
	for _, key := range keys {
		if strings.HasSuffix(key, settingsSuffix) {
			repos = append(repos, strings.TrimSuffix(key, settingsSuffix))
		}
	}
	sort.Strings(repos)
	return repos, nil
}

func (r *RepoPermissionsRepositoryImpl) Remove(ctx context.Context, repo string) error {
	if err := r.client.DeleteObject(ctx, repo+settingsSuffix); err != nil {
		return fmt.Errorf("権限設定の削除に失敗しました: %w", err)
	}
	return nil
}

func (r *RepoPermissionsRepositoryImpl) Update(ctx context.Context, repo string, permissions []domain.PermissionItem, patterns []domain.PathPattern) error {
	var doc settingsDoc
	if len(permissions) > 0 {
		doc.Repo.Permissions = make(map[string][]string, len(permissions))
		for _, item := range permissions {
			doc.Repo.Permissions[item.Username()] = item.Permissions()
		}
	}
	for _, pattern := range patterns {
		doc.Repo.IncludePatterns = append(doc.Repo.IncludePatterns, pattern.String())
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("設定ドキュメントのシリアライズに失敗しました: %w", err)
	}

	if err := r.client.PutObject(ctx, repo+settingsSuffix, data); err != nil {
		return fmt.Errorf("権限設定の更新に失敗しました: %w", err)
	}
	return nil
}

func (r *RepoPermissionsRepositoryImpl) Permissions(ctx context.Context, repo string) ([]domain.PermissionItem, error) {
	doc, found, err := r.settings(ctx, repo)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	usernames := make([]string, 0, len(doc.Repo.Permissions))
	for username := range doc.Repo.Permissions {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	items := make([]domain.PermissionItem, 0, len(usernames))
	for _, username := range usernames {
		item, err := domain.NewPermissionItem(username, doc.Repo.Permissions[username])
		if err != nil {
			return nil, fmt.Errorf("権限レコードの復元に失敗しました: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *RepoPermissionsRepositoryImpl) Patterns(ctx context.Context, repo string) ([]domain.PathPattern, error) {
	doc, found, err := r.settings(ctx, repo)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	patterns := make([]domain.PathPattern, 0, len(doc.Repo.IncludePatterns))
	for _, expr := range doc.Repo.IncludePatterns {
		patterns = append(patterns, domain.NewPathPattern(expr))
	}
	return patterns, nil
}

func (r *RepoPermissionsRepositoryImpl) settings(ctx context.Context, repo string) (*settingsDoc, bool, error) {
	data, found, err := r.client.GetObject(ctx, repo+settingsSuffix)
	if err != nil {
		return nil, false, fmt.Errorf("設定ドキュメントの取得に失敗しました: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	var doc settingsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("設定ドキュメントの解析に失敗しました: %w", err)
	}
	return &doc, true, nil
}
