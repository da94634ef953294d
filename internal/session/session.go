// Package session はブラウザ1つ分のコンテナ一式を束ねる。
// 各セッションは自分専用のストレージ領域・トークン・APIクライアントを持つ。
package session

import (
	"context"

	"storefront/internal/i18n"
	"storefront/internal/infra/gateway"
	repo "storefront/internal/repository"
	"storefront/internal/store"
	"storefront/internal/usecase"
	"storefront/internal/validator"
	logx "storefront/pkg/logger"
)

type Session struct {
	ID      string
	Storage repo.LocalStorage

	Catalog  *store.Catalog
	Cart     *store.Cart
	Wishlist *store.Wishlist
	Auth     *store.Auth
	UI       *store.UI
	I18n     *i18n.Service

	Products   repo.ProductRepository
	Categories repo.CategoryRepository

	Carts    *usecase.CartUsecase
	Wishes   *usecase.WishlistUsecase
	Checkout *usecase.CheckoutUsecase
	Account  *usecase.AuthUsecase

	unsubscribe []func()
	lastSeen    int64 // unix nano、Manager.mu で守る
}

func (m *Manager) build(ctx context.Context, id string, acceptLanguage string) (*Session, error) {
	storage := m.scope(id)
	tokens := gateway.NewStorageTokens(storage, m.opts.AccessTokenKey, m.opts.RefreshTokenKey)

	s := &Session{ID: id, Storage: storage}

	client, err := gateway.NewClient(gateway.Options{
		BaseURL:    m.opts.BaseURL,
		Timeout:    m.opts.Timeout,
		Tokens:     tokens,
		HTTPClient: m.opts.HTTPClient,
		// 401 はこのセッションのログイン状態だけを落とす
		OnUnauthorized: func(ctx context.Context) {
			logx.Info().Str("session", id).Msg("session: unauthorized, signing out")
			s.Auth.HandleUnauthorized(ctx)
		},
	})
	if err != nil {
		return nil, err
	}

	s.Products = gateway.NewProductAPI(client)
	s.Categories = gateway.NewCategoryAPI(client)
	if m.opts.MockCatalog != nil {
		s.Products = m.opts.MockCatalog.Products()
		s.Categories = m.opts.MockCatalog.Categories()
	}

	s.Catalog = store.NewCatalog(s.Products, s.Categories, m.opts.PageSize)
	s.Cart = store.NewCart(storage)
	s.Wishlist = store.NewWishlist(storage, m.now)
	authAPI := gateway.NewAuthAPI(client)
	s.Auth = store.NewAuth(authAPI, tokens, storage)
	s.UI = store.NewUI(m.now)
	s.I18n = i18n.NewService(m.opts.Translator, storage)

	s.Carts = usecase.NewCartUsecase(s.Cart, s.Catalog, s.Products, gateway.NewCartAPI(client))
	s.Wishes = usecase.NewWishlistUsecase(s.Wishlist, s.Cart, s.Catalog, s.Products, gateway.NewWishlistAPI(client))
	s.Checkout = usecase.NewCheckoutUsecase(s.Cart, gateway.NewOrderAPI(client), m.opts.Pricing)
	s.Account = usecase.NewAuthUsecase(s.Auth, authAPI, validator.NewAuthValidator())

	// 取得中フラグを UI の loading に映す
	s.unsubscribe = append(s.unsubscribe,
		s.Catalog.Subscribe(func(st store.CatalogState) {
			s.UI.SetLoading(store.LoadingProducts, st.Loading)
		}),
		s.Auth.Subscribe(func(st store.AuthState) {
			s.UI.SetLoading(store.LoadingAuth, st.Loading)
		}),
	)

	// 壊れた保存値で開けなくなるよりは空で始める
	if err := s.Cart.Restore(ctx); err != nil {
		logx.Warn().Err(err).Str("session", id).Msg("session: restore cart failed")
	}
	if err := s.Wishlist.Restore(ctx); err != nil {
		logx.Warn().Err(err).Str("session", id).Msg("session: restore wishlist failed")
	}
	if err := s.Auth.Restore(ctx); err != nil {
		logx.Warn().Err(err).Str("session", id).Msg("session: restore auth failed")
	}
	s.I18n.Detect(ctx, acceptLanguage)

	return s, nil
}

// T は現在の言語での翻訳
func (s *Session) T(ns i18n.Namespace, key string) string {
	return s.I18n.T(ns, key)
}

func (s *Session) close() {
	for _, fn := range s.unsubscribe {
		fn()
	}
	s.UI.Close()
}
