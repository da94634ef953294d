package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

const (
	defaultFeaturedLimit         = 8
	defaultRecommendationLimit   = 4
	defaultFeaturedCategoryLimit = 6
)

type productAPI struct {
	c *Client
}

// DI
func NewProductAPI(c *Client) repo.ProductRepository {
	return &productAPI{c: c}
}

// GET /products
func (a *productAPI) List(ctx context.Context, params *model.SearchParams) (model.Page[model.Product], error) {
	return callPage[model.Product](ctx, a.c, "/products", params.Values())
}

// GET /products/:id
func (a *productAPI) FindByID(ctx context.Context, id string) (model.Product, error) {
	return call[model.Product](ctx, a.c, http.MethodGet, "/products/"+seg(id), nil, nil)
}

// GET /products/search?query=
func (a *productAPI) Search(ctx context.Context, query string, params *model.SearchParams) (model.Page[model.Product], error) {
	q := params.Values()
	q.Set("query", query)
	return callPage[model.Product](ctx, a.c, "/products/search", q)
}

func (a *productAPI) Featured(ctx context.Context, limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	return call[[]model.Product](ctx, a.c, http.MethodGet, "/products/featured", q, nil)
}

func (a *productAPI) ListByCategory(ctx context.Context, categoryID string, params *model.SearchParams) (model.Page[model.Product], error) {
	return callPage[model.Product](ctx, a.c, "/products/category/"+seg(categoryID), params.Values())
}

func (a *productAPI) Recommendations(ctx context.Context, productID string, limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	return call[[]model.Product](ctx, a.c, http.MethodGet, "/products/"+seg(productID)+"/recommendations", q, nil)
}

type categoryAPI struct {
	c *Client
}

// DI
func NewCategoryAPI(c *Client) repo.CategoryRepository {
	return &categoryAPI{c: c}
}

func (a *categoryAPI) List(ctx context.Context) ([]model.Category, error) {
	return call[[]model.Category](ctx, a.c, http.MethodGet, "/categories", nil, nil)
}

func (a *categoryAPI) FindByID(ctx context.Context, id string) (model.Category, error) {
	return call[model.Category](ctx, a.c, http.MethodGet, "/categories/"+seg(id), nil, nil)
}

func (a *categoryAPI) Featured(ctx context.Context, limit int) ([]model.Category, error) {
	if limit <= 0 {
		limit = defaultFeaturedCategoryLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	return call[[]model.Category](ctx, a.c, http.MethodGet, "/categories/featured", q, nil)
}
