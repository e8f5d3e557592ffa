//go:generate mockgen -source=$GOFILE -destination=../../tests/handler/mock_permissions_handler.go -package=handler
package handler

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/olenagerasimova/management-api/internal/domain"
	"github.com/olenagerasimova/management-api/internal/handler/dto"
	"github.com/olenagerasimova/management-api/internal/handler/response"
)

// RepoPermissionsUseCaseInterface は権限管理のユースケースを抽象化するインターフェース
type RepoPermissionsUseCaseInterface interface {
	Repositories(ctx context.Context) ([]string, error)
	Permissions(ctx context.Context, repo string) ([]domain.PermissionItem, error)
	Patterns(ctx context.Context, repo string) ([]domain.PathPattern, error)
	Update(ctx context.Context, repo string, permissions []domain.PermissionItem, patterns []domain.PathPattern) error
	Remove(ctx context.Context, repo string) error
}

type PermissionsHandler struct {
	uc RepoPermissionsUseCaseInterface
}

func NewPermissionsHandler(uc RepoPermissionsUseCaseInterface) *PermissionsHandler {
	return &PermissionsHandler{
		uc: uc,
	}
}

// HandleListRepositories は既知のリポジトリ名一覧を返す
func (h *PermissionsHandler) HandleListRepositories(c echo.Context) error {
	ctx := c.Request().Context()

	repos, err := h.uc.Repositories(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "リポジトリ一覧の取得に失敗しました").SetInternal(err)
	}

	return c.JSON(http.StatusOK, dto.RepositoriesResponse{
		Repositories: repos,
	})
}

// HandleGetPermissions はリポジトリの権限一覧を返す。未知のリポジトリは空。
func (h *PermissionsHandler) HandleGetPermissions(c echo.Context) error {
	ctx := c.Request().Context()
	repo := c.Param("repo")

	items, err := h.uc.Permissions(ctx, repo)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "権限一覧の取得に失敗しました").SetInternal(err)
	}

	permissions := make(map[string][]string, len(items))
	for _, item := range items {
		permissions[item.Username()] = item.Permissions()
	}

	return c.JSON(http.StatusOK, dto.PermissionsResponse{
		Permissions: permissions,
	})
}

// HandleGetPatterns はリポジトリの許可パスパターン一覧を返す。未知のリポジトリは空。
func (h *PermissionsHandler) HandleGetPatterns(c echo.Context) error {
	ctx := c.Request().Context()
	repo := c.Param("repo")

	patterns, err := h.uc.Patterns(ctx, repo)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "パターン一覧の取得に失敗しました").SetInternal(err)
	}

	exprs := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		exprs = append(exprs, pattern.String())
	}

	return c.JSON(http.StatusOK, dto.PatternsResponse{
		IncludePatterns: exprs,
	})
}

// HandleUpdatePermissions は権限集合とパターン集合を丸ごと置き換える
func (h *PermissionsHandler) HandleUpdatePermissions(c echo.Context) error {
	ctx := c.Request().Context()
	repo := c.Param("repo")

	var req dto.RepoPermissionsRequest
	if err := c.Bind(&req); err != nil {
		return response.SendError(c, http.StatusBadRequest, "リクエストボディの解析に失敗しました")
	}

	usernames := make([]string, 0, len(req.Permissions))
	for username := range req.Permissions {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	items := make([]domain.PermissionItem, 0, len(usernames))
	for _, username := range usernames {
		item, err := domain.NewPermissionItem(username, req.Permissions[username])
		if err != nil {
			return response.SendError(c, http.StatusBadRequest, "不正な権限レコードです")
		}
		items = append(items, item)
	}

	patterns := make([]domain.PathPattern, 0, len(req.IncludePatterns))
	for _, expr := range req.IncludePatterns {
		patterns = append(patterns, domain.NewPathPattern(expr))
	}

	if err := h.uc.Update(ctx, repo, items, patterns); err != nil {
		if errors.Is(err, domain.ErrInvalidPattern) {
			return response.SendError(c, http.StatusBadRequest, "リポジトリに適合しないパスパターンです")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "権限設定の更新に失敗しました").SetInternal(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HandleRemovePermissions はリポジトリの権限設定を削除する。冪等。
func (h *PermissionsHandler) HandleRemovePermissions(c echo.Context) error {
	ctx := c.Request().Context()
	repo := c.Param("repo")

	if err := h.uc.Remove(ctx, repo); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "権限設定の削除に失敗しました").SetInternal(err)
	}

	return c.NoContent(http.StatusNoContent)
}
