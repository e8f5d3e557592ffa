package domain

import (
	"fmt"
	"regexp"
)

// PathPattern はリポジトリ内の許可対象パスを示すAnt風のパターン式
// （例: "repo/**/*"）を表します
type PathPattern struct {
	expr string
}

func NewPathPattern(expr string) PathPattern {
	return PathPattern{
		expr: expr,
	}
}

func (p PathPattern) String() string {
	return p.expr
}

// Valid は対象リポジトリ名に対してパターン式が許可される形かを判定する。
// 許可されるのは任意の `repo/` 接頭辞、`**` の繰り返し、末尾の `/*` のみ。
func (p PathPattern) Valid(repo string) bool {
	pattern := fmt.Sprintf(`^(%s/)?(\*\*)*(/\*)?$`, regexp.QuoteMeta(repo))
	return regexp.MustCompile(pattern).MatchString(p.expr)
}
