package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"
	"github.com/olenagerasimova/management-api/internal/domain"
	"github.com/olenagerasimova/management-api/internal/infrastructure/postgres"
	"github.com/pashagolub/pgxmock/v4"
)

func mustNewPermissionItemInRepoTest(t *testing.T, username string, permissions []string) domain.PermissionItem {
	t.Helper()
	item, err := domain.NewPermissionItem(username, permissions)
	if err != nil {
		t.Fatalf("failed to create PermissionItem: %v", err)
	}
	return item
}

func TestRepoPermissionsRepository_Update(t *testing.T) {
	fixedTime := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	type args struct {
		repo        string
		permissions []domain.PermissionItem
		patterns    []domain.PathPattern
	}
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		args      args
		wantErr   bool
	}{
		{
			name: "正常系: 権限とパターンがトランザクション内で置き換えられる",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM repo_permission_items`).
					WithArgs("lib").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectExec(`DELETE FROM repo_path_patterns`).
					WithArgs("lib").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectExec(`INSERT INTO repo_permission_items`).
					WithArgs("lib", "alice", []string{"read"}, fixedTime, fixedTime).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(`INSERT INTO repo_path_patterns`).
					WithArgs("lib", "lib/**").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
			args: args{
				repo:        "lib",
				permissions: []domain.PermissionItem{mustNewPermissionItemInRepoTest(t, "alice", []string{"read"})},
				patterns:    []domain.PathPattern{domain.NewPathPattern("lib/**")},
			},
			wantErr: false,
		},
		{
			name: "正常系: 空のセットで更新すると削除のみが行われる",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM repo_permission_items`).
					WithArgs("lib").
					WillReturnResult(pgxmock.NewResult("DELETE", 2))
				mock.ExpectExec(`DELETE FROM repo_path_patterns`).
					WithArgs("lib").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectCommit()
			},
			args: args{
				repo: "lib",
			},
			wantErr: false,
		},
		{
			name: "異常系: INSERTが失敗した場合、ロールバックされエラーが返る",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM repo_permission_items`).
					WithArgs("lib").
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				mock.ExpectExec(`DELETE FROM repo_path_patterns`).
					WithArgs("lib").
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				mock.ExpectExec(`INSERT INTO repo_permission_items`).
					WithArgs("lib", "alice", []string{"read"}, fixedTime, fixedTime).
					WillReturnError(errors.New("constraint violation"))
				mock.ExpectRollback()
			},
			args: args{
				repo:        "lib",
				permissions: []domain.PermissionItem{mustNewPermissionItemInRepoTest(t, "alice", []string{"read"})},
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

			ctx := testid.WithValue(context.Background(), uuid.NewString())
			ctxtimetest.SetFixedNow(t, ctx, fixedTime)

			repo := postgres.NewRepoPermissionsRepository(mock)
			err = repo.Update(ctx, tt.args.repo, tt.args.permissions, tt.args.patterns)

			if tt.wantErr {
				if err == nil {
					t.Fatal("want error, but got nil")
				}
			} else if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("期待されたモック呼び出しが行われませんでした: %v", err)
			}
		})
	}
}

func TestRepoPermissionsRepository_Remove(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("モックプールの作成に失敗しました: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM repo_permission_items`).
		WithArgs("lib").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM repo_path_patterns`).
		WithArgs("lib").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	repo := postgres.NewRepoPermissionsRepository(mock)
	if err := repo.Remove(context.Background(), "lib"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("期待されたモック呼び出しが行われませんでした: %v", err)
	}
}

func TestRepoPermissionsRepository_Permissions(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("モックプールの作成に失敗しました: %v", err)
	}
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"repo", "username", "permissions", "created_at", "updated_at"}).
		AddRow("lib", "alice", []string{"read", "write"}, now, now)
	mock.ExpectQuery(`SELECT repo, username, permissions, created_at, updated_at`).
		WithArgs("lib").
		WillReturnRows(rows)

	repo := postgres.NewRepoPermissionsRepository(mock)
	items, err := repo.Permissions(context.Background(), "lib")
	if err != nil {
		t.Fatalf("Permissions() failed: %v", err)
	}

	want := mustNewPermissionItemInRepoTest(t, "alice", []string{"read", "write"})
	if len(items) != 1 || !items[0].Equals(want) {
		t.Errorf("Permissions() = %v, want exactly %v", items, want)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("期待されたモック呼び出しが行われませんでした: %v", err)
	}
}

func TestRepoPermissionsRepository_Patterns(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("モックプールの作成に失敗しました: %v", err)
	}
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"repo", "expr"}).
		AddRow("lib", "lib/**").
		AddRow("lib", "lib/**/*")
	mock.ExpectQuery(`SELECT repo, expr`).
		WithArgs("lib").
		WillReturnRows(rows)

	repo := postgres.NewRepoPermissionsRepository(mock)
	patterns, err := repo.Patterns(context.Background(), "lib")
	if err != nil {
		t.Fatalf("Patterns() failed: %v", err)
	}

	got := make([]string, 0, len(patterns))
	for _, p := range patterns {
		got = append(got, p.String())
	}
	if diff := cmp.Diff([]string{"lib/**", "lib/**/*"}, got); diff != "" {
		t.Errorf("Patterns() mismatch (-want +got):\n%s", diff)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("期待されたモック呼び出しが行われませんでした: %v", err)
	}
}
