//go:generate mockgen -source=$GOFILE -destination=../../tests/handler/mock_readyz_handler.go -package=handler
package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/olenagerasimova/management-api/internal/usecase"
)

type ReadinessUseCaseInterface interface {
	Execute(ctx context.Context) ([]usecase.ComponentStatus, error)
}

// ReadyzHandler は権限ストアとキャッシュの疎通状態を返すReadinessエンドポイント。
type ReadyzHandler struct {
	uc ReadinessUseCaseInterface
}

func NewReadyzHandler(uc ReadinessUseCaseInterface) *ReadyzHandler {
	return &ReadyzHandler{
		uc: uc,
	}
}

// Handle は全コンポーネントがreadyなら200、1つでも失敗していれば503を返す。
func (h *ReadyzHandler) Handle(c echo.Context) error {
	statuses, err := h.uc.Execute(c.Request().Context())

	components := make([]map[string]any, 0, len(statuses))
	for _, s := range statuses {
		entry := map[string]any{
			"name":  s.Name,
			"ready": s.Ready,
		}
		if s.Err != nil {
			entry["error"] = s.Err.Error()
		}
		components = append(components, entry)
	}

	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":     "not ready",
			"components": components,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":     "ready",
		"components": components,
	})
}
