package mockcatalog

import (
	"time"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricePtr(s string) *decimal.Decimal {
	d := price(s)
	return &d
}

// SeedCategories はデモ用のカテゴリ
func SeedCategories() []model.Category {
	return []model.Category{
		{ID: "cat-electronics", Name: "Electronics", Slug: "electronics", Description: "Phones, audio and accessories"},
		{ID: "cat-clothing", Name: "Clothing", Slug: "clothing", Description: "Everyday wear"},
		{ID: "cat-home", Name: "Home & Kitchen", Slug: "home-kitchen", Description: "Kitchenware and decor"},
		{ID: "cat-sports", Name: "Sports", Slug: "sports", Description: "Outdoor and fitness"},
	}
}

// SeedProducts はデモ用の商品。createdAt は base から1日ずつ後ろにずらす。
func SeedProducts(base time.Time) []model.Product {
	cats := map[string]model.Category{}
	for _, c := range SeedCategories() {
		cats[c.ID] = c
	}
	at := func(days int) time.Time {
		return base.AddDate(0, 0, days)
	}

	return []model.Product{
		{
			ID: "prod-1", Name: "Wireless Headphones", Description: "Over-ear noise cancelling headphones",
			Price: price("129.99"), OriginalPrice: pricePtr("159.99"), Images: []string{"/images/headphones.jpg"},
			Category: cats["cat-electronics"], Brand: "Sonic", Rating: 4.6, ReviewCount: 214, InStock: true,
			Tags: []string{"audio", "bluetooth"}, CreatedAt: at(0), UpdatedAt: at(0),
		},
		{
			ID: "prod-2", Name: "Smart Watch", Description: "Fitness tracking with heart-rate monitor",
			Price: price("199.00"), Images: []string{"/images/watch.jpg"},
			Category: cats["cat-electronics"], Brand: "Pulse", Rating: 4.2, ReviewCount: 98, InStock: true,
			Tags: []string{"wearable", "fitness"}, CreatedAt: at(1), UpdatedAt: at(1),
		},
		{
			ID: "prod-3", Name: "USB-C Charger", Description: "65W fast charger",
			Price: price("29.50"), Images: []string{"/images/charger.jpg"},
			Category: cats["cat-electronics"], Brand: "Volt", Rating: 4.8, ReviewCount: 540, InStock: false,
			Tags: []string{"charging"}, CreatedAt: at(2), UpdatedAt: at(2),
		},
		{
			ID: "prod-4", Name: "Cotton T-Shirt", Description: "Organic cotton crew neck",
			Price: price("19.99"), Images: []string{"/images/tshirt.jpg"},
			Category: cats["cat-clothing"], Brand: "Basic", Rating: 4.0, ReviewCount: 61, InStock: true,
			Tags: []string{"cotton", "summer"},
			Variants: []model.ProductVariant{
				{ID: "prod-4-s", Name: "size", Value: "S", InStock: true},
				{ID: "prod-4-m", Name: "size", Value: "M", InStock: true},
				{ID: "prod-4-l", Name: "size", Value: "L", InStock: false},
			},
			CreatedAt: at(3), UpdatedAt: at(3),
		},
		{
			ID: "prod-5", Name: "Denim Jacket", Description: "Classic fit denim jacket",
			Price: price("89.00"), OriginalPrice: pricePtr("110.00"), Images: []string{"/images/jacket.jpg"},
			Category: cats["cat-clothing"], Brand: "Basic", Rating: 4.4, ReviewCount: 37, InStock: true,
			Tags: []string{"denim"}, CreatedAt: at(4), UpdatedAt: at(4),
		},
		{
			ID: "prod-6", Name: "Chef Knife", Description: "8-inch stainless steel knife",
			Price: price("49.95"), Images: []string{"/images/knife.jpg"},
			Category: cats["cat-home"], Brand: "Forge", Rating: 4.7, ReviewCount: 122, InStock: true,
			Tags: []string{"kitchen", "steel"}, CreatedAt: at(5), UpdatedAt: at(5),
		},
		{
			ID: "prod-7", Name: "Ceramic Mug", Description: "Hand glazed coffee mug",
			Price: price("12.00"), Images: []string{"/images/mug.jpg"},
			Category: cats["cat-home"], Brand: "Clay", Rating: 3.9, ReviewCount: 15, InStock: true,
			Tags: []string{"kitchen", "coffee"}, CreatedAt: at(6), UpdatedAt: at(6),
		},
		{
			ID: "prod-8", Name: "Yoga Mat", Description: "Non-slip 6mm mat",
			Price: price("35.00"), Images: []string{"/images/yoga.jpg"},
			Category: cats["cat-sports"], Brand: "Flow", Rating: 4.5, ReviewCount: 88, InStock: true,
			Tags: []string{"fitness", "yoga"}, CreatedAt: at(7), UpdatedAt: at(7),
		},
		{
			ID: "prod-9", Name: "Running Shoes", Description: "Lightweight road running shoes",
			Price: price("120.00"), OriginalPrice: pricePtr("140.00"), Images: []string{"/images/shoes.jpg"},
			Category: cats["cat-sports"], Brand: "Stride", Rating: 4.3, ReviewCount: 176, InStock: false,
			Tags: []string{"running", "fitness"}, CreatedAt: at(8), UpdatedAt: at(8),
		},
	}
}
