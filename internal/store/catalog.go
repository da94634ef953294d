package store

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

const defaultFeaturedLimit = 8

type CatalogState struct {
	Products         []model.Product      `json:"products"`
	FilteredProducts []model.Product      `json:"filteredProducts"`
	CurrentProduct   *model.Product       `json:"currentProduct"`
	Categories       []model.Category     `json:"categories"`
	FeaturedProducts []model.Product      `json:"featuredProducts"`
	Loading          bool                 `json:"loading"`
	Error            string               `json:"error,omitempty"`
	Filters          model.ProductFilters `json:"filters"`
	Sort             model.ProductSort    `json:"sort"`
	Pagination       model.Pagination     `json:"pagination"`
}

func initialCatalogState(limit int) CatalogState {
	p := model.DefaultPagination()
	if limit > 0 {
		p.Limit = limit
	}
	return CatalogState{
		Products:         []model.Product{},
		FilteredProducts: []model.Product{},
		Categories:       []model.Category{},
		FeaturedProducts: []model.Product{},
		Sort:             model.DefaultSort(),
		Pagination:       p,
	}
}

// Catalog は商品一覧の状態。一覧を置き換える取得は世代番号を持ち、
// 後から始まった取得が終わっていれば古い応答は捨てる。
type Catalog struct {
	*Store[CatalogState]

	products   repo.ProductRepository
	categories repo.CategoryRepository

	gen      uint64
	inFlight int
	// Products が GET /products の全件か（カテゴリ・検索で絞った一覧なら false）
	full bool
}

// DI
func NewCatalog(products repo.ProductRepository, categories repo.CategoryRepository, pageSize int) *Catalog {
	return &Catalog{
		Store:      newStore(initialCatalogState(pageSize)),
		products:   products,
		categories: categories,
	}
}

// 取得開始。list=true なら世代を進める。gen と inFlight は Store のロックで守る。
func (c *Catalog) begin(list bool) uint64 {
	var gen uint64
	c.update(func(s *CatalogState) {
		c.inFlight++
		if list {
			c.gen++
		}
		gen = c.gen
		s.Loading = true
		s.Error = ""
	})
	return gen
}

// 取得終了。その世代が最新かどうかを返す。ロック中に呼ぶこと。
func (c *Catalog) end(s *CatalogState, gen uint64) bool {
	c.inFlight--
	s.Loading = c.inFlight > 0
	return gen == c.gen
}

// 一覧を置き換える取得の共通処理
func (c *Catalog) fetchList(fallback string, full bool, fn func() (model.Page[model.Product], error)) error {
	gen := c.begin(true)
	page, err := guard(fn)

	c.update(func(s *CatalogState) {
		if !c.end(s, gen) {
			return
		}
		if err != nil {
			s.Error = errorMessage(err, fallback)
			return
		}
		c.full = full
		s.Products = page.Data
		if s.Products == nil {
			s.Products = []model.Product{}
		}
		s.FilteredProducts = s.Products
		limit := s.Pagination.Limit
		s.Pagination = page.Pagination
		if s.Pagination.Limit <= 0 {
			s.Pagination.Limit = limit
		}
		if s.Pagination.Page <= 0 {
			s.Pagination.Page = model.DefaultPage
		}
		applyView(s)
	})
	return err
}

// 一覧を置き換えない取得の共通処理
func (c *Catalog) fetchOther(fallback string, fn func() error, apply func(s *CatalogState)) error {
	gen := c.begin(false)
	_, err := guard(func() (struct{}, error) { return struct{}{}, fn() })

	c.update(func(s *CatalogState) {
		c.end(s, gen)
		if err != nil {
			s.Error = errorMessage(err, fallback)
			return
		}
		apply(s)
	})
	return err
}

// Fetch は GET /products の結果で一覧を置き換える
func (c *Catalog) Fetch(ctx context.Context, params *model.SearchParams) error {
	return c.fetchList("Failed to fetch products", true, func() (model.Page[model.Product], error) {
		return c.products.List(ctx, params)
	})
}

func (c *Catalog) Search(ctx context.Context, query string, params *model.SearchParams) error {
	return c.fetchList("Failed to search products", false, func() (model.Page[model.Product], error) {
		return c.products.Search(ctx, query, params)
	})
}

func (c *Catalog) FetchByCategory(ctx context.Context, categoryID string, params *model.SearchParams) error {
	return c.fetchList("Failed to fetch products by category", false, func() (model.Page[model.Product], error) {
		return c.products.ListByCategory(ctx, categoryID, params)
	})
}

// HasFullList は最後に反映された一覧が Fetch の全件なら true
func (c *Catalog) HasFullList() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.full
}

func (c *Catalog) FetchProduct(ctx context.Context, id string) error {
	var p model.Product
	return c.fetchOther("Failed to fetch product", func() error {
		var err error
		p, err = c.products.FindByID(ctx, id)
		return err
	}, func(s *CatalogState) {
		s.CurrentProduct = &p
	})
}

// limit が0以下なら8件
func (c *Catalog) FetchFeatured(ctx context.Context, limit int) error {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	var items []model.Product
	return c.fetchOther("Failed to fetch featured products", func() error {
		var err error
		items, err = c.products.Featured(ctx, limit)
		return err
	}, func(s *CatalogState) {
		if items == nil {
			items = []model.Product{}
		}
		s.FeaturedProducts = items
	})
}

func (c *Catalog) FetchCategories(ctx context.Context) error {
	var cats []model.Category
	return c.fetchOther("Failed to fetch categories", func() error {
		var err error
		cats, err = c.categories.List(ctx)
		return err
	}, func(s *CatalogState) {
		if cats == nil {
			cats = []model.Category{}
		}
		s.Categories = cats
	})
}

// applyView は FilteredProducts と件数を作り直す
func applyView(s *CatalogState) {
	v := DeriveView(s.Products, s.Filters, s.Sort, s.Pagination.Limit)
	s.FilteredProducts = v.Items
	s.Pagination.Total = v.Total
	s.Pagination.TotalPages = v.TotalPages
	if s.Pagination.Page < 1 {
		s.Pagination.Page = model.DefaultPage
	}
	if v.TotalPages > 0 && s.Pagination.Page > v.TotalPages {
		s.Pagination.Page = v.TotalPages
	}
}

func (c *Catalog) ApplyFilters() {
	c.update(applyView)
}

// SetFilters は patch をマージしてから絞り込み直す
func (c *Catalog) SetFilters(patch model.FiltersPatch) {
	c.update(func(s *CatalogState) {
		s.Filters = s.Filters.Merge(patch)
		applyView(s)
	})
}

// SetSort は丸ごと置き換える
func (c *Catalog) SetSort(sort model.ProductSort) {
	c.update(func(s *CatalogState) {
		s.Sort = sort
		applyView(s)
	})
}

// 0以下の値は変更しない。limit が変わったら件数を作り直す。
func (c *Catalog) SetPagination(page int, limit int) {
	c.update(func(s *CatalogState) {
		if page > 0 {
			s.Pagination.Page = page
		}
		if limit > 0 && limit != s.Pagination.Limit {
			s.Pagination.Limit = limit
			applyView(s)
		}
	})
}

func (c *Catalog) SetCurrentProduct(p *model.Product) {
	c.update(func(s *CatalogState) {
		s.CurrentProduct = p
	})
}

func (c *Catalog) ClearError() {
	c.update(func(s *CatalogState) {
		s.Error = ""
	})
}

func (c *Catalog) ProductByID(id string) (model.Product, bool) {
	for _, p := range c.State().Products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// カテゴリ(idかslug)に属する商品（絞り込み条件は使わない）
func (c *Catalog) ProductsByCategory(category string) []model.Product {
	out := []model.Product{}
	for _, p := range c.State().Products {
		if p.Category.Matches(category) {
			out = append(out, p)
		}
	}
	return out
}

// PageItems は現在ページの表示分
func (c *Catalog) PageItems() []model.Product {
	s := c.State()
	start, end := s.Pagination.Bounds(len(s.FilteredProducts))
	return s.FilteredProducts[start:end]
}
