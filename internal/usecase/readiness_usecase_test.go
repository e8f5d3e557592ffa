package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"

	"github.com/olenagerasimova/management-api/internal/usecase"
	mock_usecase "github.com/olenagerasimova/management-api/tests/usecase"
)

func TestReadinessUseCase_Execute(t *testing.T) {
	t.Parallel()

	pingErr := errors.New("connection refused")

	tests := []struct {
		name         string
		setupMocks   func(ctrl *gomock.Controller) []usecase.HealthChecker
		want         []usecase.ComponentStatus
		wantErr      bool
		wantNotReady bool
	}{
		{
			name: "正常系: すべてのコンポーネントがready",
			setupMocks: func(ctrl *gomock.Controller) []usecase.HealthChecker {
				store := mock_usecase.NewMockHealthChecker(ctrl)
				store.EXPECT().Check(gomock.Any()).Return(nil)
				store.EXPECT().Name().Return("postgres").AnyTimes()
				cache := mock_usecase.NewMockHealthChecker(ctrl)
				cache.EXPECT().Check(gomock.Any()).Return(nil)
				cache.EXPECT().Name().Return("redis").AnyTimes()
				return []usecase.HealthChecker{store, cache}
			},
			want: []usecase.ComponentStatus{
				{Name: "postgres", Ready: true},
				{Name: "redis", Ready: true},
			},
		},
		{
			name: "正常系: チェッカー未登録の場合はready",
			setupMocks: func(ctrl *gomock.Controller) []usecase.HealthChecker {
				return nil
			},
			want: []usecase.ComponentStatus{},
		},
		{
			name: "異常系: 1つのコンポーネントが失敗した場合はErrNotReady",
			setupMocks: func(ctrl *gomock.Controller) []usecase.HealthChecker {
				store := mock_usecase.NewMockHealthChecker(ctrl)
				store.EXPECT().Check(gomock.Any()).Return(nil)
				store.EXPECT().Name().Return("postgres").AnyTimes()
				cache := mock_usecase.NewMockHealthChecker(ctrl)
				cache.EXPECT().Check(gomock.Any()).Return(pingErr)
				cache.EXPECT().Name().Return("redis").AnyTimes()
				return []usecase.HealthChecker{store, cache}
			},
			want: []usecase.ComponentStatus{
				{Name: "postgres", Ready: true},
				{Name: "redis", Ready: false, Err: pingErr},
			},
			wantErr:      true,
			wantNotReady: true,
		},
		{
			name: "異常系: 全コンポーネント失敗でも各状態が返る",
			setupMocks: func(ctrl *gomock.Controller) []usecase.HealthChecker {
				store := mock_usecase.NewMockHealthChecker(ctrl)
				store.EXPECT().Check(gomock.Any()).Return(pingErr)
				store.EXPECT().Name().Return("postgres").AnyTimes()
				cache := mock_usecase.NewMockHealthChecker(ctrl)
				cache.EXPECT().Check(gomock.Any()).Return(pingErr)
				cache.EXPECT().Name().Return("redis").AnyTimes()
				return []usecase.HealthChecker{store, cache}
			},
			want: []usecase.ComponentStatus{
				{Name: "postgres", Ready: false, Err: pingErr},
				{Name: "redis", Ready: false, Err: pingErr},
			},
			wantErr:      true,
			wantNotReady: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			uc := usecase.NewReadinessUseCase(tt.setupMocks(ctrl)...)
			got, err := uc.Execute(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantNotReady && !errors.Is(err, usecase.ErrNotReady) {
				t.Errorf("Execute() error = %v, want ErrNotReady", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("Execute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
