package handler

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	"storefront/internal/middleware"
	"storefront/internal/session"
	"storefront/internal/store"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// ページ共通の設定
type PageConfig struct {
	AppName        string
	AppVersion     string
	Currency       string
	CurrencySymbol string
	FeaturedLimit  int
	// 商品詳細の「こちらもおすすめ」
	RecommendationLimit int
}

type base struct {
	cfg PageConfig
}

func newBase(cfg PageConfig) base {
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = "$"
	}
	if cfg.FeaturedLimit <= 0 {
		cfg.FeaturedLimit = 8
	}
	if cfg.RecommendationLimit <= 0 {
		cfg.RecommendationLimit = 4
	}
	return base{cfg: cfg}
}

// withSession はセッションを取り出してから fn を呼ぶ
func withSession(fn func(c echo.Context, s *session.Session) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, ok := middleware.SessionFrom(c)
		if !ok {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
		}
		return fn(c, s)
	}
}

// ヘッダー・フッターなど全ページ共通の部分
type Chrome struct {
	AppName          string                    `json:"appName"`
	AppVersion       string                    `json:"appVersion"`
	Language         string                    `json:"language"`
	Languages        []i18n.Language           `json:"languages"`
	Currency         string                    `json:"currency"`
	Header           map[string]string         `json:"header"`
	Footer           map[string]string         `json:"footer"`
	Common           map[string]string         `json:"common"`
	CartCount        int                       `json:"cartCount"`
	WishlistCount    int                       `json:"wishlistCount"`
	IsAuthenticated  bool                      `json:"isAuthenticated"`
	UserName         string                    `json:"userName,omitempty"`
	Theme            model.Theme               `json:"theme"`
	IsMobileMenuOpen bool                      `json:"isMobileMenuOpen"`
	IsSearchOpen     bool                      `json:"isSearchOpen"`
	Notifications    []model.Notification      `json:"notifications"`
	Loading          map[store.LoadingKey]bool `json:"loading"`
}

type PageResponse struct {
	Chrome Chrome            `json:"chrome"`
	Labels map[string]string `json:"labels"`
	Data   any               `json:"data"`
}

func (b base) chrome(s *session.Session) Chrome {
	ui := s.UI.State()
	auth := s.Auth.State()
	ch := Chrome{
		AppName:          b.cfg.AppName,
		AppVersion:       b.cfg.AppVersion,
		Language:         s.I18n.Language(),
		Languages:        i18n.SupportedLanguages,
		Currency:         b.cfg.Currency,
		Header:           s.I18n.Labels(i18n.NSHeader),
		Footer:           s.I18n.Labels(i18n.NSFooter),
		Common:           s.I18n.Labels(i18n.NSCommon),
		CartCount:        s.Cart.State().TotalItems,
		WishlistCount:    s.Wishlist.State().TotalItems,
		IsAuthenticated:  auth.IsAuthenticated,
		Theme:            ui.Theme,
		IsMobileMenuOpen: ui.IsMobileMenuOpen,
		IsSearchOpen:     ui.IsSearchOpen,
		Notifications:    ui.Notifications,
		Loading:          ui.Loading,
	}
	if auth.User != nil {
		ch.UserName = auth.User.DisplayName()
	}
	if ch.Notifications == nil {
		ch.Notifications = []model.Notification{}
	}
	return ch
}

// render はページの名前空間のラベルを付けて返す
func (b base) render(c echo.Context, s *session.Session, status int, ns i18n.Namespace, data any) error {
	return c.JSON(status, PageResponse{
		Chrome: b.chrome(s),
		Labels: s.I18n.Labels(ns),
		Data:   data,
	})
}

func (b base) money(d decimal.Decimal) string {
	return i18n.FormatCurrency(b.cfg.CurrencySymbol, d)
}

// 一覧・カードに出す商品
type ProductCard struct {
	model.Product
	PriceLabel         string `json:"priceLabel"`
	OriginalPriceLabel string `json:"originalPriceLabel,omitempty"`
	OnSale             bool   `json:"onSale"`
	InWishlist         bool   `json:"inWishlist"`
	InCart             bool   `json:"inCart"`
}

func (b base) card(s *session.Session, p model.Product) ProductCard {
	pc := ProductCard{
		Product:    p,
		PriceLabel: b.money(p.Price),
		OnSale:     p.OnSale(),
		InWishlist: s.Wishlist.IsInWishlist(p.ID),
	}
	if p.OriginalPrice != nil {
		pc.OriginalPriceLabel = b.money(*p.OriginalPrice)
	}
	_, pc.InCart = s.Cart.Item(p.ID)
	return pc
}

func (b base) cards(s *session.Session, ps []model.Product) []ProductCard {
	out := make([]ProductCard, 0, len(ps))
	for _, p := range ps {
		out = append(out, b.card(s, p))
	}
	return out
}

// notify はページ操作の結果をトーストとして積む
func notify(s *session.Session, typ model.NotificationType, ns i18n.Namespace, key string) {
	s.UI.AddNotification(model.Notification{
		Type:     typ,
		Title:    s.T(ns, key),
		Duration: notificationDuration,
	})
}
