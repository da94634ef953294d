package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	repo "storefront/internal/repository"
	logx "storefront/pkg/logger"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// ブラウザが送る ms / ms-MY は表の "my" に寄せる
var aliases = map[string]string{
	"ms": LangMalay,
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(SupportedLanguages))
	for _, l := range SupportedLanguages {
		tags = append(tags, language.Make(l.Code))
	}
	return language.NewMatcher(tags)
}()

// Negotiate は Accept-Language から対応言語を選ぶ。言語部分だけを見る。
func Negotiate(acceptLanguage string) (string, bool) {
	if strings.TrimSpace(acceptLanguage) == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	for i, tag := range tags {
		base, _ := tag.Base()
		if code, ok := aliases[base.String()]; ok {
			tags[i] = language.Make(code)
		} else {
			tags[i] = language.Make(base.String())
		}
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return SupportedLanguages[idx].Code, true
}

// Service はセッション1つ分の言語状態。選択言語は LocalStorage の i18nextLng に残す。
type Service struct {
	translator *Translator
	storage    repo.LocalStorage

	mu   sync.RWMutex
	lang string
}

// DI
func NewService(translator *Translator, storage repo.LocalStorage) *Service {
	if translator == nil {
		translator = NewTranslator(nil, DefaultLanguage)
	}
	return &Service{translator: translator, storage: storage, lang: translator.fallback}
}

// Detect は 保存済みの選択 → Accept-Language → フォールバック言語 の順で決める。
// 保存が無かった場合は決めた言語を保存する。
func (s *Service) Detect(ctx context.Context, acceptLanguage string) string {
	if s.storage != nil {
		raw, err := s.storage.Get(ctx, repo.KeyLanguage)
		switch {
		case err == nil:
			if code := normalize(string(raw)); IsSupported(code) {
				s.set(code)
				return code
			}
		case !errors.Is(err, repo.ErrNotFound):
			logx.Warn().Err(err).Msg("i18n: read language failed")
		}
	}

	code, ok := Negotiate(acceptLanguage)
	if !ok {
		code = s.translator.fallback
	}
	s.set(code)
	s.save(ctx, code)
	return code
}

// ChangeLanguage は選択を切り替えて保存する
func (s *Service) ChangeLanguage(ctx context.Context, code string) error {
	code = normalize(code)
	if !IsSupported(code) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	s.set(code)
	s.save(ctx, code)
	return nil
}

func (s *Service) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// T は現在の言語で翻訳する
func (s *Service) T(ns Namespace, key string) string {
	return s.translator.Translate(s.Language(), ns, key)
}

func (s *Service) Labels(ns Namespace) map[string]string {
	return s.translator.Labels(s.Language(), ns)
}

func (s *Service) set(code string) {
	s.mu.Lock()
	s.lang = code
	s.mu.Unlock()
}

func (s *Service) save(ctx context.Context, code string) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Set(ctx, repo.KeyLanguage, []byte(code)); err != nil {
		logx.Error().Err(err).Str("language", code).Msg("i18n: persist language failed")
	}
}

// "en-US" → "en", "ms" → "my"
func normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if base, _, ok := strings.Cut(code, "-"); ok {
		code = base
	}
	if alias, ok := aliases[code]; ok {
		return alias
	}
	return code
}

// FormatCurrency は記号 + 小数2桁
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
