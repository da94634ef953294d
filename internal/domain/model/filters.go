package model

import "github.com/shopspring/decimal"

// 価格帯（両端を含む）
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// 絞り込み条件。nil/空は「制約なし」。
type ProductFilters struct {
	Category   *string     `json:"category,omitempty"`
	PriceRange *PriceRange `json:"priceRange,omitempty"`
	MinRating  *float64    `json:"rating,omitempty"`
	InStock    *bool       `json:"inStock,omitempty"`
	Brands     []string    `json:"brands,omitempty"`
	Search     *string     `json:"search,omitempty"`
}

// 部分更新の1フィールド。
// Present=false は変更なし、Present=true かつ Value=nil は制約の解除。
type Opt[T any] struct {
	Present bool
	Value   *T
}

func Set[T any](v T) Opt[T] {
	return Opt[T]{Present: true, Value: &v}
}

func Clear[T any]() Opt[T] {
	return Opt[T]{Present: true}
}

// setFiltersの入力
type FiltersPatch struct {
	Category   Opt[string]
	PriceRange Opt[PriceRange]
	MinRating  Opt[float64]
	InStock    Opt[bool]
	Brands     Opt[[]string]
	Search     Opt[string]
}

// Merge は patch を適用した新しいフィルタを返す（元は変更しない）。
func (f ProductFilters) Merge(p FiltersPatch) ProductFilters {
	out := f
	if p.Category.Present {
		out.Category = p.Category.Value
	}
	if p.PriceRange.Present {
		out.PriceRange = p.PriceRange.Value
	}
	if p.MinRating.Present {
		out.MinRating = p.MinRating.Value
	}
	if p.InStock.Present {
		out.InStock = p.InStock.Value
	}
	if p.Brands.Present {
		if p.Brands.Value == nil {
			out.Brands = nil
		} else {
			out.Brands = append([]string(nil), (*p.Brands.Value)...)
		}
	}
	if p.Search.Present {
		out.Search = p.Search.Value
	}
	return out
}

// 制約が1つも無ければtrue
func (f ProductFilters) IsEmpty() bool {
	return (f.Category == nil || *f.Category == "") &&
		f.PriceRange == nil &&
		(f.MinRating == nil || *f.MinRating == 0) &&
		f.InStock == nil &&
		len(f.Brands) == 0 &&
		(f.Search == nil || *f.Search == "")
}
