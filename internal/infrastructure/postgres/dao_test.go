package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/olenagerasimova/management-api/internal/infrastructure/postgres"
	"github.com/pashagolub/pgxmock/v4"
)

// TestNewRepoPermissionsDAO はNewRepoPermissionsDAO関数のテスト
func TestNewRepoPermissionsDAO(t *testing.T) {
	// モックプールの作成
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("モックプールの作成に失敗しました: %v", err)
	}
	defer mock.Close()

	dao := postgres.NewRepoPermissionsDAO(mock)

	if dao == nil {
		t.Fatal("NewRepoPermissionsDAO() returned nil")
	}
}

func TestRepoPermissionsDAO_ListRepositories(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		want      []string
		wantErr   bool
	}{
		{
			name: "正常系: 両テーブルのリポジトリ名が重複なく返る",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"repo"}).
					AddRow("alib").
					AddRow("zlib")
				mock.ExpectQuery(`SELECT repo FROM repo_permission_items`).WillReturnRows(rows)
			},
			want:    []string{"alib", "zlib"},
			wantErr: false,
		},
		{
			name: "正常系: リポジトリが存在しない場合、空で返る",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT repo FROM repo_permission_items`).
					WillReturnRows(pgxmock.NewRows([]string{"repo"}))
			},
			want:    nil,
			wantErr: false,
		},
		{
			name: "異常系: クエリが失敗した場合、エラーが返る",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT repo FROM repo_permission_items`).
					WillReturnError(errors.New("connection refused"))
			},
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// モックプールの作成
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("モックプールの作成に失敗しました: %v", err)
			}
			defer mock.Close()

			tt.mockSetup(mock)

			dao := postgres.NewRepoPermissionsDAO(mock)
			got, err := dao.ListRepositories(context.Background())

			if tt.wantErr {
				if err == nil {
					t.Fatal("want error, but got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ListRepositories() mismatch (-want +got):\n%s", diff)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("期待されたモック呼び出しが行われませんでした: %v", err)
			}
		})
	}
}

func TestRepoPermissionsDAO_FindPermissionsByRepo(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantLen   int
		wantErr   bool
	}{
		{
			name: "正常系: リポジトリの権限行が返る",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"repo", "username", "permissions", "created_at", "updated_at"}).
					AddRow("lib", "alice", []string{"read", "write"}, now, now).
					AddRow("lib", "bob", []string{"read"}, now, now)
				mock.ExpectQuery(`SELECT repo, username, permissions, created_at, updated_at`).
					WithArgs("lib").
					WillReturnRows(rows)
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name: "正常系: 未知のリポジトリは空で返る",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT repo, username, permissions, created_at, updated_at`).
					WithArgs("lib").
					WillReturnRows(pgxmock.NewRows([]string{"repo", "username", "permissions", "created_at", "updated_at"}))
			},
			wantLen: 0,
			wantErr: false,
		},
		{
			name: "異常系: クエリが失敗した場合、エラーが返る",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT repo, username, permissions, created_at, updated_at`).
					WithArgs("lib").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("モックプールの作成に失敗しました: %v", err)
			}
			defer mock.Close()

			tt.mockSetup(mock)

			dao := postgres.NewRepoPermissionsDAO(mock)
			got, err := dao.FindPermissionsByRepo(context.Background(), "lib")

			if tt.wantErr {
				if err == nil {
					t.Fatal("want error, but got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("FindPermissionsByRepo() returned %d rows, want %d", len(got), tt.wantLen)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("期待されたモック呼び出しが行われませんでした: %v", err)
			}
		})
	}
}

func TestRepoPermissionsDAO_InsertPermissionItem(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("モックプールの作成に失敗しました: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO repo_permission_items`).
		WithArgs("lib", "alice", []string{"read"}, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dao := postgres.NewRepoPermissionsDAO(mock)
	err = dao.InsertPermissionItem(context.Background(), &postgres.PermissionItemRow{
		Repo:        "lib",
		Username:    "alice",
		Permissions: []string{"read"},
	})
	if err != nil {
		t.Fatalf("InsertPermissionItem() failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("期待されたモック呼び出しが行われませんでした: %v", err)
	}
}

func TestRepoPermissionsDAO_DeleteByRepo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("モックプールの作成に失敗しました: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM repo_permission_items`).
		WithArgs("lib").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`DELETE FROM repo_path_patterns`).
		WithArgs("lib").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	dao := postgres.NewRepoPermissionsDAO(mock)
	if err := dao.DeleteByRepo(context.Background(), "lib"); err != nil {
		t.Fatalf("DeleteByRepo() failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("期待されたモック呼び出しが行われませんでした: %v", err)
	}
}
