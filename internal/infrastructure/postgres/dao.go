package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PoolInterface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

type PermissionItemRow struct {
	Repo        string
	Username    string
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PathPatternRow struct {
	Repo string
	Expr string
}

type RepoPermissionsDAO struct {
	pool PoolInterface
}

func NewRepoPermissionsDAO(pool PoolInterface) *RepoPermissionsDAO {
	return &RepoPermissionsDAO{
		pool: pool,
	}
}

// ListRepositories は権限またはパターンが登録されている
// リポジトリ名を重複なく返す
func (dao *RepoPermissionsDAO) ListRepositories(ctx context.Context) ([]string, error) {
	query := `
		SELECT repo FROM repo_permission_items
		UNION
		SELECT repo FROM repo_path_patterns
		ORDER BY repo
	`

	rows, err := dao.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var repos []string
	for rows.Next() {
		var repo string
		if err := rows.Scan(&repo); err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, rows.Err()
}

func (dao *RepoPermissionsDAO) FindPermissionsByRepo(ctx context.Context, repo string) ([]*PermissionItemRow, error) {
	query := `
		SELECT repo, username, permissions, created_at, updated_at
		FROM repo_permission_items
		WHERE repo = $1
		ORDER BY username
	`

	rows, err := dao.pool.Query(ctx, query, repo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*PermissionItemRow
	for rows.Next() {
		var row PermissionItemRow
		if err := rows.Scan(&row.Repo, &row.Username, &row.Permissions, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

func (dao *RepoPermissionsDAO) FindPatternsByRepo(ctx context.Context, repo string) ([]*PathPatternRow, error) {
	query := `
		SELECT repo, expr
		FROM repo_path_patterns
		WHERE repo = $1
		ORDER BY expr
	`

	rows, err := dao.pool.Query(ctx, query, repo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*PathPatternRow
	for rows.Next() {
		var row PathPatternRow
		if err := rows.Scan(&row.Repo, &row.Expr); err != nil {
			return nil, err
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}

func (dao *RepoPermissionsDAO) InsertPermissionItem(ctx context.Context, row *PermissionItemRow) error {
	query := `
		INSERT INTO repo_permission_items (repo, username, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := dao.pool.Exec(ctx, query,
		row.Repo,
		row.Username,
		row.Permissions,
		row.CreatedAt,
		row.UpdatedAt,
	)
	return err
}

func (dao *RepoPermissionsDAO) InsertPathPattern(ctx context.Context, row *PathPatternRow) error {
	query := `
		INSERT INTO repo_path_patterns (repo, expr)
		VALUES ($1, $2)
	`

	_, err := dao.pool.Exec(ctx, query, row.Repo, row.Expr)
	return err
}

// DeleteByRepo はリポジトリの権限とパターンの両方を削除する。
// 削除対象が存在しなくてもエラーにはならない。
func (dao *RepoPermissionsDAO) DeleteByRepo(ctx context.Context, repo string) error {
	if _, err := dao.pool.Exec(ctx, `DELETE FROM repo_permission_items WHERE repo = $1`, repo); err != nil {
		return err
	}
	if _, err := dao.pool.Exec(ctx, `DELETE FROM repo_path_patterns WHERE repo = $1`, repo); err != nil {
		return err
	}
	return nil
}
