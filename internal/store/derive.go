package store

import (
	"slices"
	"sort"
	"strings"
	"unicode/utf16"

	"storefront/internal/domain/model"
)

// View は絞り込み・並び替えの結果
type View struct {
	Items      []model.Product
	Total      int
	TotalPages int
}

// DeriveView は全商品から表示用の一覧を作る純粋関数。products は変更しない。
// 絞り込みの順番: カテゴリ → 検索語 → 価格帯 → 評価 → 在庫 → ブランド。最後に安定ソート。
func DeriveView(products []model.Product, f model.ProductFilters, s model.ProductSort, limit int) View {
	items := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matchesFilters(p, f) {
			items = append(items, p)
		}
	}
	sortProducts(items, s)

	return View{
		Items:      items,
		Total:      len(items),
		TotalPages: model.TotalPages(len(items), limit),
	}
}

func matchesFilters(p model.Product, f model.ProductFilters) bool {
	if f.Category != nil && *f.Category != "" && !p.Category.Matches(*f.Category) {
		return false
	}
	if f.Search != nil {
		if term := strings.ToLower(*f.Search); term != "" && !matchesSearch(p, term) {
			return false
		}
	}
	if f.PriceRange != nil {
		if p.Price.LessThan(f.PriceRange.Min) || p.Price.GreaterThan(f.PriceRange.Max) {
			return false
		}
	}
	// 0 は「指定なし」
	if f.MinRating != nil && *f.MinRating > 0 && p.Rating < *f.MinRating {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	if len(f.Brands) > 0 && !slices.Contains(f.Brands, p.Brand) {
		return false
	}
	return true
}

func matchesSearch(p model.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// 同値の要素は元の順番のまま（昇順・降順とも）
func sortProducts(items []model.Product, s model.ProductSort) {
	cmp := comparator(s.Field)
	if cmp == nil {
		return
	}
	desc := s.Direction == model.SortDesc
	sort.SliceStable(items, func(i, j int) bool {
		c := cmp(items[i], items[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func comparator(field model.SortField) func(a, b model.Product) int {
	switch field {
	case model.SortByName:
		return func(a, b model.Product) int { return compareUTF16(a.Name, b.Name) }
	case model.SortByPrice:
		return func(a, b model.Product) int { return a.Price.Cmp(b.Price) }
	case model.SortByRating:
		return func(a, b model.Product) int {
			switch {
			case a.Rating < b.Rating:
				return -1
			case a.Rating > b.Rating:
				return 1
			}
			return 0
		}
	case model.SortByCreatedAt:
		return func(a, b model.Product) int { return a.CreatedAt.Compare(b.CreatedAt) }
	default:
		return nil
	}
}

// UTF-16 のコード単位で比べる（ブラウザの文字列比較と同じ順）。
// 大文字は小文字より前、アクセント付きは後ろ。
func compareUTF16(a, b string) int {
	if a == b {
		return 0
	}
	ua, ub := utf16.Encode([]rune(a)), utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			if ua[i] < ub[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ua) < len(ub):
		return -1
	case len(ua) > len(ub):
		return 1
	}
	return 0
}
