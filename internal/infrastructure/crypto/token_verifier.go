package crypto

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/olenagerasimova/management-api/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid bearer token")
	ErrExpiredToken = errors.New("bearer token has expired")
)

// TokenVerifier はセッション鍵ペアの公開鍵でRS256署名の
// Bearerトークンを検証し、subjectクレームをユーザー名として返す。
type TokenVerifier struct {
	keyPath string
}

func NewTokenVerifier(keyPath string) *TokenVerifier {
	return &TokenVerifier{
		keyPath: keyPath,
	}
}

// Enabled はBearerトークン検証が構成されているかを返す
func (v *TokenVerifier) Enabled() bool {
	return v.keyPath != ""
}

func (v *TokenVerifier) Verify(ctx context.Context, tokenString string) (*domain.User, error) {
	if v.keyPath == "" {
		return nil, ErrInvalidToken
	}

	key, err := loadRSAPrivateKey(v.keyPath)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("予期しない署名アルゴリズムです: %v", token.Header["alg"])
		}
		return &key.PublicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("%w: subjectクレームが含まれていません", ErrInvalidToken)
	}

	return domain.NewUser(subject)
}
