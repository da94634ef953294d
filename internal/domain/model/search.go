package model

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// サーバー側の絞り込み（GET /products のクエリ）
type RemoteFilters struct {
	Category string
	Brands   []string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Rating   *float64
	InStock  *bool
	Tags     []string
}

type RemoteSort string

const (
	RemoteSortPriceAsc  RemoteSort = "price_asc"
	RemoteSortPriceDesc RemoteSort = "price_desc"
	RemoteSortRating    RemoteSort = "rating"
	RemoteSortNewest    RemoteSort = "newest"
	RemoteSortPopular   RemoteSort = "popular"
)

type SearchParams struct {
	Query   string
	Filters RemoteFilters
	SortBy  RemoteSort
	Page    int
	Limit   int
}

// Values はクエリ文字列に変換する。空の項目は付けない。
func (p *SearchParams) Values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	if q := strings.TrimSpace(p.Query); q != "" {
		v.Set("query", q)
	}
	if p.Filters.Category != "" {
		v.Set("category", p.Filters.Category)
	}
	for _, b := range p.Filters.Brands {
		v.Add("brand", b)
	}
	if p.Filters.MinPrice != nil {
		v.Set("minPrice", p.Filters.MinPrice.String())
	}
	if p.Filters.MaxPrice != nil {
		v.Set("maxPrice", p.Filters.MaxPrice.String())
	}
	if p.Filters.Rating != nil {
		v.Set("rating", strconv.FormatFloat(*p.Filters.Rating, 'f', -1, 64))
	}
	if p.Filters.InStock != nil {
		v.Set("inStock", strconv.FormatBool(*p.Filters.InStock))
	}
	for _, t := range p.Filters.Tags {
		v.Add("tags", t)
	}
	if p.SortBy != "" {
		v.Set("sortBy", string(p.SortBy))
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}
