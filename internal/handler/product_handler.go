package handler

import (
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	repo "storefront/internal/repository"
	"storefront/internal/session"
	logx "storefront/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /products, /categories のページ
type ProductHandler struct {
	base
}

// DI
func NewProductHandler(cfg PageConfig) *ProductHandler {
	return &ProductHandler{base: newBase(cfg)}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", withSession(h.list))
	e.GET("/products/:id", withSession(h.detail))
	e.GET("/categories", withSession(h.categories))
	e.GET("/categories/:id", withSession(h.category))
}

type productListPage struct {
	Products   []ProductCard        `json:"products"`
	Filters    model.ProductFilters `json:"filters"`
	Sort       model.ProductSort    `json:"sort"`
	Pagination model.Pagination     `json:"pagination"`
	Categories []model.Category     `json:"categories"`
	Brands     []string             `json:"brands"`
	Error      string               `json:"error,omitempty"`
}

// GET /products
// クエリで絞り込み・並び替え・ページを変えてから、手元の一覧で表示分を作る。
// 全件の一覧を持っていないか refresh=1 の時だけ取り直す。
func (h *ProductHandler) list(c echo.Context, s *session.Session) error {
	q := c.QueryParams()

	patch, err := filtersFromQuery(q)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	var sortBy *model.ProductSort
	if f := q.Get("sort"); f != "" {
		st, ok := model.ParseSort(f, q.Get("order"))
		if !ok {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid sort"})
		}
		sortBy = &st
	}

	page, err := positiveParam(q, "page")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
	}
	limit, err := positiveParam(q, "limit")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
	}

	ctx := c.Request().Context()
	// カテゴリ・検索で絞った一覧が残っていれば全件を取り直す
	if !s.Catalog.HasFullList() || q.Get("refresh") == "1" {
		_ = s.Catalog.Fetch(ctx, nil)
	}
	if len(s.Catalog.State().Categories) == 0 {
		_ = s.Catalog.FetchCategories(ctx)
	}

	s.Catalog.SetFilters(patch)
	if sortBy != nil {
		s.Catalog.SetSort(*sortBy)
	}
	s.Catalog.SetPagination(page, limit)

	st := s.Catalog.State()
	return h.render(c, s, http.StatusOK, i18n.NSProducts, productListPage{
		Products:   h.cards(s, s.Catalog.PageItems()),
		Filters:    st.Filters,
		Sort:       st.Sort,
		Pagination: st.Pagination,
		Categories: st.Categories,
		Brands:     brandsOf(st.Products),
		Error:      st.Error,
	})
}

// 0や未指定は「変更なし」
func positiveParam(q url.Values, key string) (int, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}

// filtersFromQuery はクエリに出てきた項目だけを patch にする。値が空なら解除。
func filtersFromQuery(q url.Values) (model.FiltersPatch, error) {
	var p model.FiltersPatch

	if q.Get("clear") == "1" {
		return model.FiltersPatch{
			Category:   model.Clear[string](),
			PriceRange: model.Clear[model.PriceRange](),
			MinRating:  model.Clear[float64](),
			InStock:    model.Clear[bool](),
			Brands:     model.Clear[[]string](),
			Search:     model.Clear[string](),
		}, nil
	}

	text := func(key string) model.Opt[string] {
		if !q.Has(key) {
			return model.Opt[string]{}
		}
		v := strings.TrimSpace(q.Get(key))
		if v == "" {
			return model.Clear[string]()
		}
		return model.Set(v)
	}
	p.Search = text("search")
	p.Category = text("category")

	if q.Has("minPrice") || q.Has("maxPrice") {
		lo, hi := strings.TrimSpace(q.Get("minPrice")), strings.TrimSpace(q.Get("maxPrice"))
		switch {
		case lo == "" && hi == "":
			p.PriceRange = model.Clear[model.PriceRange]()
		case lo == "" || hi == "":
			return p, errors.New("invalid price range")
		default:
			min, err1 := decimal.NewFromString(lo)
			max, err2 := decimal.NewFromString(hi)
			if err1 != nil || err2 != nil || min.GreaterThan(max) {
				return p, errors.New("invalid price range")
			}
			p.PriceRange = model.Set(model.PriceRange{Min: min, Max: max})
		}
	}

	if q.Has("rating") {
		v := strings.TrimSpace(q.Get("rating"))
		if v == "" {
			p.MinRating = model.Clear[float64]()
		} else {
			r, err := strconv.ParseFloat(v, 64)
			if err != nil || r < 0 || r > 5 {
				return p, errors.New("invalid rating")
			}
			if r == 0 {
				p.MinRating = model.Clear[float64]()
			} else {
				p.MinRating = model.Set(r)
			}
		}
	}

	if q.Has("inStock") {
		v := strings.TrimSpace(q.Get("inStock"))
		if v == "" {
			p.InStock = model.Clear[bool]()
		} else {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return p, errors.New("invalid inStock")
			}
			p.InStock = model.Set(b)
		}
	}

	if q.Has("brand") {
		var brands []string
		for _, b := range q["brand"] {
			for _, part := range strings.Split(b, ",") {
				if part = strings.TrimSpace(part); part != "" {
					brands = append(brands, part)
				}
			}
		}
		if len(brands) == 0 {
			p.Brands = model.Clear[[]string]()
		} else {
			p.Brands = model.Set(brands)
		}
	}

	return p, nil
}

// 絞り込み欄に出すブランド（重複なし・昇順）
func brandsOf(ps []model.Product) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range ps {
		if p.Brand == "" {
			continue
		}
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		out = append(out, p.Brand)
	}
	sort.Strings(out)
	return out
}

type productDetailPage struct {
	Product         ProductCard   `json:"product"`
	Recommendations []ProductCard `json:"recommendations"`
}

// GET /products/:id
func (h *ProductHandler) detail(c echo.Context, s *session.Session) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := s.Catalog.FetchProduct(ctx, id); err != nil {
		s.Catalog.ClearError()
		if errors.Is(err, repo.ErrNotFound) {
			return h.render(c, s, http.StatusNotFound, i18n.NSCommon, notFoundPage{Path: c.Request().URL.Path})
		}
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream error"})
	}

	st := s.Catalog.State()
	if st.CurrentProduct == nil {
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream error"})
	}

	recs, err := s.Products.Recommendations(ctx, id, h.cfg.RecommendationLimit)
	if err != nil {
		//おすすめが取れなくても詳細は出す
		logx.Warn().Err(err).Str("product_id", id).Msg("recommendations failed")
		recs = nil
	}

	return h.render(c, s, http.StatusOK, i18n.NSProducts, productDetailPage{
		Product:         h.card(s, *st.CurrentProduct),
		Recommendations: h.cards(s, recs),
	})
}

type categoryCard struct {
	model.Category
	ProductCount int `json:"productCount"`
}

type categoriesPage struct {
	Categories []categoryCard `json:"categories"`
	Error      string         `json:"error,omitempty"`
}

// GET /categories
func (h *ProductHandler) categories(c echo.Context, s *session.Session) error {
	ctx := c.Request().Context()
	_ = s.Catalog.FetchCategories(ctx)
	// 件数は全件の一覧から数える
	if !s.Catalog.HasFullList() {
		_ = s.Catalog.Fetch(ctx, nil)
	}

	st := s.Catalog.State()
	out := make([]categoryCard, 0, len(st.Categories))
	for _, cat := range st.Categories {
		out = append(out, categoryCard{
			Category:     cat,
			ProductCount: len(s.Catalog.ProductsByCategory(cat.ID)),
		})
	}
	return h.render(c, s, http.StatusOK, i18n.NSHeader, categoriesPage{Categories: out, Error: st.Error})
}

type categoryPage struct {
	Category   model.Category   `json:"category"`
	Products   []ProductCard    `json:"products"`
	Pagination model.Pagination `json:"pagination"`
	Error      string           `json:"error,omitempty"`
}

// GET /categories/:id（idかslug）
func (h *ProductHandler) category(c echo.Context, s *session.Session) error {
	ctx := c.Request().Context()
	key := c.Param("id")

	if len(s.Catalog.State().Categories) == 0 {
		_ = s.Catalog.FetchCategories(ctx)
	}
	var found *model.Category
	for _, cat := range s.Catalog.State().Categories {
		if cat.Matches(key) {
			found = &cat
			break
		}
	}
	if found == nil {
		return h.render(c, s, http.StatusNotFound, i18n.NSCommon, notFoundPage{Path: c.Request().URL.Path})
	}

	_ = s.Catalog.FetchByCategory(ctx, found.ID, nil)
	st := s.Catalog.State()
	return h.render(c, s, http.StatusOK, i18n.NSProducts, categoryPage{
		Category:   *found,
		Products:   h.cards(s, s.Catalog.PageItems()),
		Pagination: st.Pagination,
		Error:      st.Error,
	})
}
