package usecase

import (
	"strings"

	"github.com/olenagerasimova/management-api/internal/domain"
)

// APIPermission はリクエストパスの末尾セグメントが自分のユーザー名である
// 場合に暗黙の許可を与える。どの親パス配下かは問わない
// （/dashboard/alice も /api/lalala/alice も alice 本人なら許可）。
type APIPermission struct {
	path string
}

func NewAPIPermission(path string) APIPermission {
	return APIPermission{
		path: path,
	}
}

// Allowed はパスの末尾セグメントとユーザー名の大文字小文字を区別した
// 一致を判定する。ルートパスや末尾スラッシュ（空セグメント）は
// どのユーザーにも一致しない。
func (p APIPermission) Allowed(user *domain.User) bool {
	if user == nil {
		return false
	}
	segments := strings.Split(p.path, "/")
	last := segments[len(segments)-1]
	return last != "" && last == user.Name()
}
