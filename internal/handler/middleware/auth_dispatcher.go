//go:generate mockgen -source=$GOFILE -destination=../../../tests/handler/middleware/mock_auth_dispatcher.go -package=middleware
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/olenagerasimova/management-api/internal/domain"
	"github.com/olenagerasimova/management-api/internal/handler/response"
	"github.com/olenagerasimova/management-api/internal/usecase"
)

const (
	// UserContextKey は認証済みユーザーを保持するechoコンテキストのキー
	UserContextKey = "user"
)

// TokenVerifierInterface はBearerトークンの検証を抽象化するインターフェース
type TokenVerifierInterface interface {
	Enabled() bool
	Verify(ctx context.Context, token string) (*domain.User, error)
}

// SessionUserResolverInterface はCookieヘッダーからユーザーを解決するインターフェース
type SessionUserResolverInterface interface {
	User(ctx context.Context, headers http.Header) (*domain.User, error)
}

// AuthDispatcher はリクエストの認証方式を判別してユーザーを解決する。
// Authorization: Bearer があればトークン検証、なければセッションクッキーを
// 復号する。どちらにも該当しないリクエストは401で拒否する。
// クッキーはあるが復号できない場合も匿名に落とさず401を返す。
func AuthDispatcher(verifier TokenVerifierInterface, sessions SessionUserResolverInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			authHeader := c.Request().Header.Get("Authorization")

			if strings.HasPrefix(authHeader, "Bearer ") {
				if !verifier.Enabled() {
					return response.SendError(c, http.StatusUnauthorized, "Unauthorized")
				}
				token := strings.TrimPrefix(authHeader, "Bearer ")
				user, err := verifier.Verify(ctx, token)
				if err != nil {
					return response.SendError(c, http.StatusUnauthorized, "Unauthorized")
				}
				c.Set(UserContextKey, user)
				return next(c)
			}

			user, err := sessions.User(ctx, c.Request().Header)
			if err != nil {
				if errors.Is(err, domain.ErrCorruptSession) {
					return response.SendError(c, http.StatusUnauthorized, "Unauthorized")
				}
				return err
			}
			if user == nil {
				return response.SendError(c, http.StatusUnauthorized, "Unauthorized")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// SelfAccessOnly はパス末尾のセグメントが認証済みユーザー名と一致する
// リクエストだけを通す。ユーザースコープのルートに適用する。
func SelfAccessOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			permission := usecase.NewAPIPermission(c.Request().URL.Path)
			if !permission.Allowed(user) {
				return response.SendError(c, http.StatusForbidden, "Forbidden")
			}
			return next(c)
		}
	}
}

// CurrentUser はAuthDispatcherが解決したユーザーを取り出す。未認証ならnil。
func CurrentUser(c echo.Context) *domain.User {
	user, ok := c.Get(UserContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
