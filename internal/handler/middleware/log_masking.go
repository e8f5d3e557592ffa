package middleware

import (
	"net/url"
	"sort"
	"strings"
)

// セッションクッキーやトークンがクエリ経由で渡された場合にログへ残さない
var sensitiveParams = map[string]struct{}{
	"session": {},
	"token":   {},
}

const maskValue = "***"

// MaskSensitiveParams はリクエストURIの機密クエリパラメータ値をマスクして返す。
// パースできないURIはそのまま返す。キーはソートされ、出力は決定的になる。
func MaskSensitiveParams(uri string) string {
	if uri == "" {
		return ""
	}

	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	query := u.Query()
	if len(query) == 0 {
		return uri
	}

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, key := range keys {
		if _, sensitive := sensitiveParams[key]; sensitive {
			parts = append(parts, url.QueryEscape(key)+"="+maskValue)
			continue
		}
		for _, v := range query[key] {
			parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(v))
		}
	}

	u.RawQuery = strings.Join(parts, "&")
	return u.String()
}
