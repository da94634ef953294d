package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// お気に入り（数量なし、存在だけ）
type WishlistItem struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Image         string           `json:"image"`
	InStock       bool             `json:"inStock"`
	Rating        float64          `json:"rating"`
	AddedAt       time.Time        `json:"addedAt"`
}

func WishlistItemFromProduct(p Product) WishlistItem {
	return WishlistItem{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.PrimaryImage(),
		InStock:       p.InStock,
		Rating:        p.Rating,
	}
}

type WishlistSnapshot struct {
	Items      []WishlistItem `json:"items"`
	TotalItems int            `json:"totalItems"`
}

// サーバー側のお気に入り（GET /wishlist）
type Wishlist struct {
	ID        string               `json:"id"`
	UserID    string               `json:"userId"`
	Items     []RemoteWishlistItem `json:"items"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

type RemoteWishlistItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Product   Product   `json:"product"`
	AddedAt   time.Time `json:"addedAt"`
}

// POST /wishlist/items/:id/move-to-cart の結果
type MoveToCartResult struct {
	Wishlist Wishlist `json:"wishlist"`
	Cart     Cart     `json:"cart"`
}
