package crypto

import (
	"context"
	"crypto/rsa"
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"github.com/olenagerasimova/management-api/internal/domain"
	"github.com/olenagerasimova/management-api/internal/usecase"
)

var _ usecase.SessionDecoder = (*SessionDecoder)(nil)

// SessionDecoder はhexエンコードされたセッション値を
// RSA/OAEP（SHA-1ダイジェスト、MGF1マスク）で復号しユーザー名を取り出す。
// トークン発行側との相互運用のため方式は固定である。
type SessionDecoder struct {
	keyPath string
}

// NewSessionDecoder は秘密鍵ファイルパスから復号器を生成する。
// keyPathが空の場合、復号は無効化され常に匿名となる。
func NewSessionDecoder(keyPath string) *SessionDecoder {
	return &SessionDecoder{
		keyPath: keyPath,
	}
}

func (d *SessionDecoder) Decode(ctx context.Context, encoded string) (*domain.User, error) {
	if d.keyPath == "" {
		return nil, nil
	}

	key, err := loadRSAPrivateKey(d.keyPath)
	if err != nil {
		return nil, err
	}

	ciphertext, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("セッション値のhexデコードに失敗しました: %w", err)
	}

	plaintext, err := rsa.DecryptOAEP(sha1.New(), nil, key, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("セッション値の復号に失敗しました: %w", err)
	}

	return domain.NewUser(string(plaintext))
}
