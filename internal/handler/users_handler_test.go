package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"
	"github.com/olenagerasimova/management-api/internal/handler"
	mock_handler "github.com/olenagerasimova/management-api/tests/handler"
	"go.uber.org/mock/gomock"
)

func TestUsersHandler_HandleListUserRepositories(t *testing.T) {
	tests := []struct {
		name           string
		username       string
		setupMock      func(ctrl *gomock.Controller) handler.RepoPermissionsUseCaseInterface
		wantStatusCode int
		wantBody       map[string]any
		wantErr        bool
	}{
		{
			name:     "正常系: ユーザー接頭辞を持つリポジトリだけが返る",
			username: "alice",
			setupMock: func(ctrl *gomock.Controller) handler.RepoPermissionsUseCaseInterface {
				mockUC := mock_handler.NewMockRepoPermissionsUseCaseInterface(ctrl)
				mockUC.EXPECT().Repositories(gomock.Any()).
					Return([]string{"alice/maven", "alice/npm", "bob/maven", "docker"}, nil)
				return mockUC
			},
			wantStatusCode: http.StatusOK,
			wantBody: map[string]any{
				"repositories": []any{"alice/maven", "alice/npm"},
			},
		},
		{
			name:     "正常系: 該当が無い場合は空の一覧",
			username: "carol",
			setupMock: func(ctrl *gomock.Controller) handler.RepoPermissionsUseCaseInterface {
				mockUC := mock_handler.NewMockRepoPermissionsUseCaseInterface(ctrl)
				mockUC.EXPECT().Repositories(gomock.Any()).
					Return([]string{"alice/maven"}, nil)
				return mockUC
			},
			wantStatusCode: http.StatusOK,
			wantBody: map[string]any{
				"repositories": []any{},
			},
		},
		{
			name:     "異常系: ストアが失敗した場合は500エラー",
			username: "alice",
			setupMock: func(ctrl *gomock.Controller) handler.RepoPermissionsUseCaseInterface {
				mockUC := mock_handler.NewMockRepoPermissionsUseCaseInterface(ctrl)
				mockUC.EXPECT().Repositories(gomock.Any()).Return(nil, errors.New("query failed"))
				return mockUC
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := handler.NewUsersHandler(tt.setupMock(ctrl))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/users/"+tt.username, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("name")
			c.SetParamValues(tt.username)

			err := h.HandleListUserRepositories(c)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HandleListUserRepositories() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if rec.Code != tt.wantStatusCode {
				t.Errorf("status code = %d, want %d", rec.Code, tt.wantStatusCode)
			}
			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if diff := cmp.Diff(tt.wantBody, body); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
