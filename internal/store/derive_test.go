package store_test

import (
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/store"

	"github.com/stretchr/testify/assert"
)

func catalogFixture() []model.Product {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	shoes := model.Category{ID: "c-shoes", Slug: "shoes", Name: "Shoes"}
	bags := model.Category{ID: "c-bags", Slug: "bags", Name: "Bags"}
	return []model.Product{
		{ID: "1", Name: "Trail Runner", Description: "Grippy outsole", Price: dec("80"), Category: shoes, Brand: "Peak", Rating: 4.5, InStock: true, Tags: []string{"Outdoor"}, CreatedAt: base},
		{ID: "2", Name: "city sneaker", Description: "Everyday", Price: dec("60"), Category: shoes, Brand: "Urban", Rating: 3.9, InStock: false, Tags: []string{"casual"}, CreatedAt: base.Add(time.Hour)},
		{ID: "3", Name: "Tote", Description: "Canvas bag for the beach", Price: dec("25"), Category: bags, Brand: "Urban", Rating: 4.5, InStock: true, Tags: nil, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "4", Name: "Backpack", Description: "Laptop sleeve", Price: dec("60"), Category: bags, Brand: "Peak", Rating: 4.8, InStock: true, Tags: []string{"travel", "outdoor"}, CreatedAt: base.Add(3 * time.Hour)},
	}
}

func ptr[T any](v T) *T { return &v }

// =====================
// DeriveView
// =====================

func TestDeriveView_PriceRangeSortedByPrice(t *testing.T) {
	products := []model.Product{product("1", "10"), product("2", "30"), product("3", "20")}
	f := model.ProductFilters{PriceRange: &model.PriceRange{Min: dec("15"), Max: dec("100")}}

	v := store.DeriveView(products, f, model.ProductSort{Field: model.SortByPrice, Direction: model.SortAsc}, 12)

	assert.Equal(t, []string{"3", "2"}, ids(v.Items))
	assert.Equal(t, 2, v.Total)
	assert.Equal(t, 1, v.TotalPages)
}

func TestDeriveView_NoFiltersKeepsEverything(t *testing.T) {
	products := catalogFixture()
	v := store.DeriveView(products, model.ProductFilters{}, model.ProductSort{Field: model.SortByCreatedAt, Direction: model.SortAsc}, 3)

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(v.Items))
	assert.Equal(t, 4, v.Total)
	assert.Equal(t, 2, v.TotalPages)
}

func TestDeriveView_EachFilter(t *testing.T) {
	products := catalogFixture()
	sortByCreated := model.ProductSort{Field: model.SortByCreatedAt, Direction: model.SortAsc}

	cases := []struct {
		name string
		f    model.ProductFilters
		want []string
	}{
		{"category by id", model.ProductFilters{Category: ptr("c-bags")}, []string{"3", "4"}},
		{"category by slug", model.ProductFilters{Category: ptr("shoes")}, []string{"1", "2"}},
		{"empty category is no constraint", model.ProductFilters{Category: ptr("")}, []string{"1", "2", "3", "4"}},
		{"search name case-insensitive", model.ProductFilters{Search: ptr("SNEAKER")}, []string{"2"}},
		{"search description", model.ProductFilters{Search: ptr("beach")}, []string{"3"}},
		{"search tag", model.ProductFilters{Search: ptr("outdoor")}, []string{"1", "4"}},
		{"price inclusive", model.ProductFilters{PriceRange: &model.PriceRange{Min: dec("25"), Max: dec("60")}}, []string{"2", "3", "4"}},
		{"min rating inclusive", model.ProductFilters{MinRating: ptr(4.5)}, []string{"1", "3", "4"}},
		{"in stock true", model.ProductFilters{InStock: ptr(true)}, []string{"1", "3", "4"}},
		{"in stock false is exact", model.ProductFilters{InStock: ptr(false)}, []string{"2"}},
		{"brands", model.ProductFilters{Brands: []string{"Urban"}}, []string{"2", "3"}},
		{"combined", model.ProductFilters{Brands: []string{"Peak"}, InStock: ptr(true), Search: ptr("out")}, []string{"1", "4"}},
		{"nothing matches", model.ProductFilters{Category: ptr("hats")}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := store.DeriveView(products, tc.f, sortByCreated, 12)
			assert.Equal(t, tc.want, ids(v.Items))
			assert.Equal(t, len(tc.want), v.Total)
		})
	}
}

func TestDeriveView_ResultIsSubsetSatisfyingFilters(t *testing.T) {
	products := catalogFixture()
	filterSets := []model.ProductFilters{
		{},
		{MinRating: ptr(4.0)},
		{InStock: ptr(true), Brands: []string{"Peak", "Urban"}},
		{PriceRange: &model.PriceRange{Min: dec("30"), Max: dec("70")}, Category: ptr("shoes")},
	}
	for _, f := range filterSets {
		v := store.DeriveView(products, f, model.DefaultSort(), 12)
		for _, p := range v.Items {
			assert.Contains(t, products, p)
			if f.MinRating != nil {
				assert.GreaterOrEqual(t, p.Rating, *f.MinRating)
			}
			if f.InStock != nil {
				assert.Equal(t, *f.InStock, p.InStock)
			}
			if f.PriceRange != nil {
				assert.True(t, p.Price.GreaterThanOrEqual(f.PriceRange.Min))
				assert.True(t, p.Price.LessThanOrEqual(f.PriceRange.Max))
			}
			if f.Category != nil {
				assert.True(t, p.Category.Matches(*f.Category))
			}
			if len(f.Brands) > 0 {
				assert.Contains(t, f.Brands, p.Brand)
			}
		}
	}
}

func TestDeriveView_StableSort(t *testing.T) {
	products := catalogFixture()

	// 2 と 4 は同じ価格
	asc := store.DeriveView(products, model.ProductFilters{}, model.ProductSort{Field: model.SortByPrice, Direction: model.SortAsc}, 12)
	assert.Equal(t, []string{"3", "2", "4", "1"}, ids(asc.Items))

	desc := store.DeriveView(products, model.ProductFilters{}, model.ProductSort{Field: model.SortByPrice, Direction: model.SortDesc}, 12)
	assert.Equal(t, []string{"1", "2", "4", "3"}, ids(desc.Items))

	// 1 と 3 は同じ評価
	rating := store.DeriveView(products, model.ProductFilters{}, model.ProductSort{Field: model.SortByRating, Direction: model.SortDesc}, 12)
	assert.Equal(t, []string{"4", "1", "3", "2"}, ids(rating.Items))
}

func TestDeriveView_SortByNameAndCreatedAt(t *testing.T) {
	products := catalogFixture()

	// Backpack, Tote, Trail Runner, city sneaker（大文字が先）
	byName := store.DeriveView(products, model.ProductFilters{}, model.DefaultSort(), 12)
	assert.Equal(t, []string{"4", "3", "1", "2"}, ids(byName.Items))

	newest := store.DeriveView(products, model.ProductFilters{}, model.ProductSort{Field: model.SortByCreatedAt, Direction: model.SortDesc}, 12)
	assert.Equal(t, []string{"4", "3", "2", "1"}, ids(newest.Items))
}

func TestDeriveView_SortByNameCodeUnitOrder(t *testing.T) {
	products := []model.Product{
		{ID: "apple", Name: "apple"},
		{ID: "banana", Name: "Banana"},
		{ID: "eclair", Name: "éclair"},
		{ID: "zed", Name: "Zed"},
		// U+1F600 はサロゲートペアなので U+FF21 より前
		{ID: "emoji", Name: "\U0001F600"},
		{ID: "fullwidth", Name: "\uFF21"},
	}

	asc := store.DeriveView(products, model.ProductFilters{}, model.DefaultSort(), 12)
	assert.Equal(t, []string{"banana", "zed", "apple", "eclair", "emoji", "fullwidth"}, ids(asc.Items))

	desc := store.DeriveView(products, model.ProductFilters{}, model.ProductSort{Field: model.SortByName, Direction: model.SortDesc}, 12)
	assert.Equal(t, []string{"fullwidth", "emoji", "eclair", "apple", "zed", "banana"}, ids(desc.Items))
}

func TestDeriveView_SearchTermIsNotTrimmed(t *testing.T) {
	products := catalogFixture()

	// " runner" は "trail runner" に含まれるが "tote" などには無い
	v := store.DeriveView(products, model.ProductFilters{Search: ptr(" runner")}, model.DefaultSort(), 12)
	assert.Equal(t, []string{"1"}, ids(v.Items))

	v = store.DeriveView(products, model.ProductFilters{Search: ptr(" trail")}, model.DefaultSort(), 12)
	assert.Empty(t, v.Items)
}

func TestDeriveView_DoesNotMutateInput(t *testing.T) {
	products := catalogFixture()
	before := ids(products)

	store.DeriveView(products, model.ProductFilters{Brands: []string{"Peak"}}, model.ProductSort{Field: model.SortByPrice, Direction: model.SortDesc}, 12)

	assert.Equal(t, before, ids(products))
}

func TestDeriveView_TotalPages(t *testing.T) {
	products := make([]model.Product, 0, 25)
	for i := 0; i < 25; i++ {
		products = append(products, product(string(rune('a'+i)), "1"))
	}
	cases := []struct {
		limit int
		want  int
	}{
		{12, 3}, {5, 5}, {25, 1}, {100, 1}, {1, 25},
	}
	for _, tc := range cases {
		v := store.DeriveView(products, model.ProductFilters{}, model.DefaultSort(), tc.limit)
		assert.Equal(t, tc.want, v.TotalPages, "limit=%d", tc.limit)
	}

	empty := store.DeriveView(nil, model.ProductFilters{}, model.DefaultSort(), 12)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 0, empty.TotalPages)
	assert.NotNil(t, empty.Items)
}
