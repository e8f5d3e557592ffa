package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/olenagerasimova/management-api/internal/domain"
)

var _ domain.RepoPermissions = (*RepoPermissions)(nil)

type entry struct {
	permissions []domain.PermissionItem
	patterns    []domain.PathPattern
}

// RepoPermissions はインメモリのストア実装。テストと開発用。
// 各操作はスナップショット単位で排他され、更新途中の状態は観測されない。
type RepoPermissions struct {
	mu    sync.RWMutex
	repos map[string]entry
}

func NewRepoPermissions() *RepoPermissions {
	return &RepoPermissions{
		repos: make(map[string]entry),
	}
}

func (s *RepoPermissions) Repositories(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.repos))
	for name := range s.repos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (s *RepoPermissions) Remove(ctx context.Context, repo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.repos, repo)
	return nil
}

func (s *RepoPermissions) Update(ctx context.Context, repo string, permissions []domain.PermissionItem, patterns []domain.PathPattern) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.repos[repo] = entry{
		permissions: slices.Clone(permissions),
		patterns:    slices.Clone(patterns),
	}
	return nil
}

func (s *RepoPermissions) Permissions(ctx context.Context, repo string) ([]domain.PermissionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.repos[repo].permissions), nil
}

func (s *RepoPermissions) Patterns(ctx context.Context, repo string) ([]domain.PathPattern, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.repos[repo].patterns), nil
}
