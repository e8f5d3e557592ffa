//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_cookies.go -package=usecase
package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/olenagerasimova/management-api/internal/domain"
)

// SessionDecoder は暗号化されたセッション値をユーザー名に復号する。
// 復号が構成されていない場合は (nil, nil) を返す。
type SessionDecoder interface {
	Decode(ctx context.Context, encoded string) (*domain.User, error)
}

// CookiesUseCase はリクエストヘッダのCookieから認証済みユーザーを取り出す
type CookiesUseCase struct {
	decoder SessionDecoder
}

func NewCookiesUseCase(decoder SessionDecoder) *CookiesUseCase {
	return &CookiesUseCase{
		decoder: decoder,
	}
}

// User はCookieヘッダからセッションを復号してユーザーを返す。
// sessionクッキーが存在しない、または復号が無効化されている場合は
// (nil, nil)。クッキーはあるが復号できない場合は ErrCorruptSession を
// ラップしたエラーを返し、匿名アクセスには退化させない。
func (uc *CookiesUseCase) User(ctx context.Context, headers http.Header) (*domain.User, error) {
	encoded, ok := CookieValues(headers.Values("Cookie"))["session"]
	if !ok {
		return nil, nil
	}

	user, err := uc.decoder.Decode(ctx, encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSession, err)
	}
	return user, nil
}

// CookieValues は複数のCookieヘッダ行をキーと値のマップへ展開する。
// キーは小文字化され、後勝ちでマージされる。値が空のペアは
// 既存のキーを削除するマーカーとして扱う。
func CookieValues(raw []string) map[string]string {
	values := make(map[string]string)
	for _, line := range raw {
		for _, pair := range strings.Split(line, ";") {
			key, value, _ := strings.Cut(pair, "=")
			key = strings.ToLower(strings.TrimSpace(key))
			if value != "" {
				values[key] = strings.TrimSpace(value)
			} else {
				delete(values, key)
			}
		}
	}
	return values
}
