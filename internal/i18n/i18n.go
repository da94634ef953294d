// Package i18n は画面ラベルの翻訳表と、セッションごとの言語選択を扱う。
package i18n

import (
	"fmt"
	"sort"
	"strings"
)

type Namespace string

const (
	NSHeader   Namespace = "header"
	NSFooter   Namespace = "footer"
	NSHome     Namespace = "home"
	NSProducts Namespace = "products"
	NSCart     Namespace = "cart"
	NSCommon   Namespace = "common"
)

// Namespaces は登録済みの名前空間（表示順）
var Namespaces = []Namespace{NSHeader, NSFooter, NSHome, NSProducts, NSCart, NSCommon}

const (
	LangEnglish = "en"
	LangMalay   = "my"

	DefaultLanguage  = LangEnglish
	DefaultNamespace = NSCommon
)

// Language は言語選択UI向けの表示名つきコード
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedLanguages は選択可能な言語。先頭がフォールバック。
var SupportedLanguages = []Language{
	{Code: LangEnglish, Name: "English"},
	{Code: LangMalay, Name: "Bahasa Malaysia"},
}

func IsSupported(code string) bool {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Translator はリソース表の読み取り専用ビュー。生成後は変更しないので並行に使ってよい。
type Translator struct {
	resources map[string]map[Namespace]map[string]string
	fallback  string
}

// DI
func NewTranslator(resources map[string]map[Namespace]map[string]string, fallback string) *Translator {
	if resources == nil {
		resources = Resources
	}
	if fallback == "" {
		fallback = DefaultLanguage
	}
	return &Translator{resources: resources, fallback: fallback}
}

// Translate は lang → フォールバック言語 → キーそのもの の順で引く。
// key に "ns:key" 形式が来た場合は名前空間を上書きする。
func (t *Translator) Translate(lang string, ns Namespace, key string) string {
	if prefix, rest, ok := strings.Cut(key, ":"); ok && prefix != "" {
		ns, key = Namespace(prefix), rest
	}
	if ns == "" {
		ns = DefaultNamespace
	}
	if v, ok := t.lookup(lang, ns, key); ok {
		return v
	}
	if v, ok := t.lookup(t.fallback, ns, key); ok {
		return v
	}
	return key
}

func (t *Translator) lookup(lang string, ns Namespace, key string) (string, bool) {
	v, ok := t.resources[lang][ns][key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Labels は名前空間の全キーを翻訳済みで返す。欠けたキーはフォールバックで埋まる。
func (t *Translator) Labels(lang string, ns Namespace) map[string]string {
	keys := t.Keys(t.fallback, ns)
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = t.Translate(lang, ns, k)
	}
	return out
}

// Keys はキー一覧（昇順）
func (t *Translator) Keys(lang string, ns Namespace) []string {
	table := t.resources[lang][ns]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KeyMismatchError は言語間でキー集合が一致しない名前空間を表す
type KeyMismatchError struct {
	Namespace Namespace
	Language  string
	Missing   []string
	Extra     []string
}

func (e *KeyMismatchError) Error() string {
	return fmt.Sprintf("i18n: namespace %q in %q: missing %v, extra %v", e.Namespace, e.Language, e.Missing, e.Extra)
}

// ValidateNamespace はフォールバック言語を基準に、他言語のキー集合を比べる。
func (t *Translator) ValidateNamespace(ns Namespace) error {
	base := toSet(t.Keys(t.fallback, ns))
	if len(base) == 0 {
		return fmt.Errorf("i18n: namespace %q has no keys in %q", ns, t.fallback)
	}
	for _, l := range SupportedLanguages {
		if l.Code == t.fallback {
			continue
		}
		other := toSet(t.Keys(l.Code, ns))
		missing, extra := diff(base, other), diff(other, base)
		if len(missing) > 0 || len(extra) > 0 {
			return &KeyMismatchError{Namespace: ns, Language: l.Code, Missing: missing, Extra: extra}
		}
	}
	return nil
}

// Validate は全名前空間を検査する
func (t *Translator) Validate() error {
	for _, ns := range Namespaces {
		if err := t.ValidateNamespace(ns); err != nil {
			return err
		}
	}
	return nil
}

func toSet(keys []string) map[string]struct{} {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return m
}

// a にあって b に無いもの
func diff(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
