package logging

import (
	"log/slog"
	"strings"
)

var defaultSensitiveKeys = []string{
	"token",
	"authorization",
	"session",
	"session_id",
	"sessionid",
	"cookie",
	"password",
	"secret",
	"secret_access_key",
	"secretaccesskey",
	"access_key_id",
	"accesskeyid",
	"api_key",
	"apikey",
	"credential",
	"private_key",
}

// SensitiveMasker はslogの属性のうち認証情報に該当するものを伏せ字にする。
// キーの完全一致に加え、部分一致(例: db_passwordなど)もマスク対象とする。
type SensitiveMasker struct {
	sensitiveKeys map[string]bool
}

func NewSensitiveMasker(keys []string) *SensitiveMasker {
	m := make(map[string]bool, len(keys))
	for _, key := range keys {
		m[key] = true
	}
	return &SensitiveMasker{sensitiveKeys: m}
}

func (sm *SensitiveMasker) MaskAttrs(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]any, 0, len(attrs))
		for _, attr := range attrs {
			maskedAttrs = append(maskedAttrs, sm.MaskAttrs(nil, attr))
		}
		return slog.Group(a.Key, maskedAttrs...)
	}

	key := strings.ToLower(a.Key)

	if sm.sensitiveKeys[key] {
		return slog.String(a.Key, "[REDACTED]")
	}

	for sensitiveKey := range sm.sensitiveKeys {
		if strings.Contains(key, sensitiveKey) {
			return slog.String(a.Key, "[REDACTED]")
		}
	}

	return a
}

var defaultMasker = NewSensitiveMasker(defaultSensitiveKeys)

// MaskSensitiveAttrs はslog.HandlerOptions.ReplaceAttrに渡す既定のマスク関数。
func MaskSensitiveAttrs(groups []string, a slog.Attr) slog.Attr {
	return defaultMasker.MaskAttrs(groups, a)
}
