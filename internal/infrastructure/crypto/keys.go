package crypto

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

var (
	ErrNotRSAPrivateKey = errors.New("session key is not an RSA private key")
)

// loadRSAPrivateKey はPKCS#8形式の秘密鍵ファイルを読み込む。
// PEMエンコードされている場合はブロックを剥がし、素のDERも受け付ける。
func loadRSAPrivateKey(path string) (*rsa.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("セッション鍵ファイルの読み込みに失敗しました: %w", err)
	}

	der := raw
	if block, _ := pem.Decode(raw); block != nil {
		der = block.Bytes
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("セッション鍵の解析に失敗しました: %w", err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrNotRSAPrivateKey
	}
	return key, nil
}
