package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の取得だけを約束（実体はREST API）。
type ProductRepository interface {
	List(ctx context.Context, params *model.SearchParams) (model.Page[model.Product], error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	Search(ctx context.Context, query string, params *model.SearchParams) (model.Page[model.Product], error)
	Featured(ctx context.Context, limit int) ([]model.Product, error)
	ListByCategory(ctx context.Context, categoryID string, params *model.SearchParams) (model.Page[model.Product], error)
	Recommendations(ctx context.Context, productID string, limit int) ([]model.Product, error)
}

// カテゴリの取得
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id string) (model.Category, error)
	Featured(ctx context.Context, limit int) ([]model.Category, error)
}
