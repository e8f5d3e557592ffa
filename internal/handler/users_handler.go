package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/olenagerasimova/management-api/internal/handler/dto"
)

type UsersHandler struct {
	uc RepoPermissionsUseCaseInterface
}

func NewUsersHandler(uc RepoPermissionsUseCaseInterface) *UsersHandler {
	return &UsersHandler{
		uc: uc,
	}
}

// HandleListUserRepositories はユーザー名を接頭辞に持つリポジトリの一覧を返す。
// `alice` に対しては `alice/maven` のような `alice/` 配下だけが対象になる。
func (h *UsersHandler) HandleListUserRepositories(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.Param("name")

	repos, err := h.uc.Repositories(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "リポジトリ一覧の取得に失敗しました").SetInternal(err)
	}

	prefix := name + "/"
	owned := make([]string, 0, len(repos))
	for _, repo := range repos {
		if strings.HasPrefix(repo, prefix) {
			owned = append(owned, repo)
		}
	}

	return c.JSON(http.StatusOK, dto.RepositoriesResponse{
		Repositories: owned,
	})
}
