package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 商品（サーバーから取得するだけで、クライアントからは編集しない）
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Images        []string         `json:"images"`
	Category      Category         `json:"category"`
	Brand         string           `json:"brand"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"reviewCount"`
	InStock       bool             `json:"inStock"`
	Variants      []ProductVariant `json:"variants,omitempty"`
	Tags          []string         `json:"tags"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// サイズ・色などのバリエーション
type ProductVariant struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Value   string           `json:"value"`
	Price   *decimal.Decimal `json:"price,omitempty"`
	InStock bool             `json:"inStock"`
}

// 先頭の画像（無ければ空文字）
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// 割引表示用。OriginalPriceが現在価格より高い時だけtrue。
func (p Product) OnSale() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price)
}
