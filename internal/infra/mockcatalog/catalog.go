package mockcatalog

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// Catalog はAPIの代わりにメモリ上のデータを返す（ENABLE_MOCK_DATA=true のとき）。
// 読み取り専用なのでロックは持たない。
type Catalog struct {
	products   []model.Product
	categories []model.Category
}

func New(products []model.Product, categories []model.Category) *Catalog {
	return &Catalog{products: products, categories: categories}
}

// NewSeeded はシードデータ入りで作る
func NewSeeded(now time.Time) *Catalog {
	return New(SeedProducts(now.AddDate(0, 0, -30)), SeedCategories())
}

func (c *Catalog) Products() repo.ProductRepository {
	return productRepo{c}
}

func (c *Catalog) Categories() repo.CategoryRepository {
	return categoryRepo{c}
}

type productRepo struct{ c *Catalog }

func (r productRepo) List(_ context.Context, params *model.SearchParams) (model.Page[model.Product], error) {
	return r.c.query("", "", params), nil
}

func (r productRepo) FindByID(_ context.Context, id string) (model.Product, error) {
	for _, p := range r.c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r productRepo) Search(_ context.Context, query string, params *model.SearchParams) (model.Page[model.Product], error) {
	return r.c.query(query, "", params), nil
}

// 評価の高い順
func (r productRepo) Featured(_ context.Context, limit int) ([]model.Product, error) {
	out := slices.Clone(r.c.products)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r productRepo) ListByCategory(_ context.Context, categoryID string, params *model.SearchParams) (model.Page[model.Product], error) {
	return r.c.query("", categoryID, params), nil
}

// 同じカテゴリの他の商品
func (r productRepo) Recommendations(ctx context.Context, productID string, limit int) ([]model.Product, error) {
	p, err := r.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	var out []model.Product
	for _, q := range r.c.products {
		if q.ID != p.ID && q.Category.ID == p.Category.ID {
			out = append(out, q)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type categoryRepo struct{ c *Catalog }

func (r categoryRepo) List(_ context.Context) ([]model.Category, error) {
	return slices.Clone(r.c.categories), nil
}

func (r categoryRepo) FindByID(_ context.Context, id string) (model.Category, error) {
	for _, cat := range r.c.categories {
		if cat.Matches(id) {
			return cat, nil
		}
	}
	return model.Category{}, repo.ErrNotFound
}

func (r categoryRepo) Featured(_ context.Context, limit int) ([]model.Category, error) {
	out := slices.Clone(r.c.categories)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// サーバー側の検索・絞り込み・並び替え・ページングを真似る
func (c *Catalog) query(query string, categoryID string, params *model.SearchParams) model.Page[model.Product] {
	var p model.SearchParams
	if params != nil {
		p = *params
	}
	if query == "" {
		query = p.Query
	}
	if categoryID == "" {
		categoryID = p.Filters.Category
	}
	q := strings.ToLower(strings.TrimSpace(query))

	matched := make([]model.Product, 0, len(c.products))
	for _, prod := range c.products {
		if categoryID != "" && !prod.Category.Matches(categoryID) {
			continue
		}
		if q != "" && !containsText(prod, q) {
			continue
		}
		if len(p.Filters.Brands) > 0 && !slices.Contains(p.Filters.Brands, prod.Brand) {
			continue
		}
		if p.Filters.MinPrice != nil && prod.Price.LessThan(*p.Filters.MinPrice) {
			continue
		}
		if p.Filters.MaxPrice != nil && prod.Price.GreaterThan(*p.Filters.MaxPrice) {
			continue
		}
		if p.Filters.Rating != nil && prod.Rating < *p.Filters.Rating {
			continue
		}
		if p.Filters.InStock != nil && prod.InStock != *p.Filters.InStock {
			continue
		}
		if len(p.Filters.Tags) > 0 && !hasAnyTag(prod, p.Filters.Tags) {
			continue
		}
		matched = append(matched, prod)
	}

	sortRemote(matched, p.SortBy)

	page := p.Page
	if page < 1 {
		page = model.DefaultPage
	}
	limit := p.Limit
	if limit < 1 {
		limit = model.DefaultLimit
	}
	pg := model.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      len(matched),
		TotalPages: model.TotalPages(len(matched), limit),
	}
	start, end := pg.Bounds(len(matched))
	return model.Page[model.Product]{Data: matched[start:end], Pagination: pg}
}

func containsText(p model.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func hasAnyTag(p model.Product, tags []string) bool {
	for _, t := range tags {
		if slices.Contains(p.Tags, t) {
			return true
		}
	}
	return false
}

func sortRemote(items []model.Product, by model.RemoteSort) {
	var less func(a, b model.Product) bool
	switch by {
	case model.RemoteSortPriceAsc:
		less = func(a, b model.Product) bool { return a.Price.LessThan(b.Price) }
	case model.RemoteSortPriceDesc:
		less = func(a, b model.Product) bool { return a.Price.GreaterThan(b.Price) }
	case model.RemoteSortRating:
		less = func(a, b model.Product) bool { return a.Rating > b.Rating }
	case model.RemoteSortNewest:
		less = func(a, b model.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	case model.RemoteSortPopular:
		less = func(a, b model.Product) bool { return a.ReviewCount > b.ReviewCount }
	default:
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}
