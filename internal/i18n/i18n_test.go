package i18n

import "testing"

func TestTranslator_Uncategorized(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"", "Uncategorized"},
		{"en", "Uncategorized"},
		{"zh_CN", "未分类"},
		{"zh-CN", "未分类"},
		{"zh_TW", "未分類"},
		{"ja", "カテゴリなし"},
		{"ja-JP", "カテゴリなし"},
		{"xx", "Uncategorized"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := New(tt.lang).T(Uncategorized); got != tt.want {
				t.Errorf("New(%q).T(Uncategorized) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestTranslator_UnknownKey(t *testing.T) {
	if got := New("en").T(Key("missing")); got != "missing" {
		t.Errorf("T(missing) = %q, want %q", got, "missing")
	}
}
