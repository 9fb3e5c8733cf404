// Package i18n holds the translated labels the indexer emits into the site index.
package i18n

import (
	"golang.org/x/text/language"
)

// Key identifies a translatable label.
type Key string

const (
	// Uncategorized labels posts that declare no category.
	Uncategorized Key = "uncategorized"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.SimplifiedChinese,
	language.TraditionalChinese,
	language.Japanese,
	language.Korean,
	language.Spanish,
	language.Thai,
	language.Vietnamese,
	language.Indonesian,
	language.Turkish,
}

var translations = map[language.Tag]map[Key]string{
	language.English:            {Uncategorized: "Uncategorized"},
	language.SimplifiedChinese:  {Uncategorized: "未分类"},
	language.TraditionalChinese: {Uncategorized: "未分類"},
	language.Japanese:           {Uncategorized: "カテゴリなし"},
	language.Korean:             {Uncategorized: "분류되지 않음"},
	language.Spanish:            {Uncategorized: "Sin categoría"},
	language.Thai:               {Uncategorized: "ไม่ได้จัดหมวดหมู่"},
	language.Vietnamese:         {Uncategorized: "Chưa phân loại"},
	language.Indonesian:         {Uncategorized: "Tidak Berkategori"},
	language.Turkish:            {Uncategorized: "Kategorilendirilmemiş"},
}

var matcher = language.NewMatcher(supported)

// Translator returns labels for one language.
type Translator struct {
	tag language.Tag
}

// New returns a Translator for a language such as "en", "zh_CN" or "ja-JP".
// Unknown or empty languages fall back to English.
func New(lang string) *Translator {
	return &Translator{tag: Match(lang)}
}

// Match returns the supported language closest to lang.
func Match(lang string) language.Tag {
	if lang == "" {
		return supported[0]
	}
	// Site configs often use "zh_CN" rather than the BCP 47 "zh-CN".
	_, idx, conf := matcher.Match(language.Make(normalize(lang)))
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}

// T returns the label for key, falling back to English and then to the key itself.
func (t *Translator) T(key Key) string {
	if s, ok := translations[t.tag][key]; ok {
		return s
	}
	if s, ok := translations[supported[0]][key]; ok {
		return s
	}
	return string(key)
}

func normalize(lang string) string {
	b := []byte(lang)
	for i, c := range b {
		if c == '_' {
			b[i] = '-'
		}
	}
	return string(b)
}
