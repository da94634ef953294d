package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// サーバー側カート（/cart）
type CartRepository interface {
	Get(ctx context.Context) (model.Cart, error)
	AddItem(ctx context.Context, req model.AddCartRequest) (model.Cart, error)
	UpdateItem(ctx context.Context, itemID string, quantity int) (model.Cart, error)
	RemoveItem(ctx context.Context, itemID string) (model.Cart, error)
	Clear(ctx context.Context) (model.Cart, error)
	ApplyCoupon(ctx context.Context, code string) (model.Cart, error)
	RemoveCoupon(ctx context.Context) (model.Cart, error)
	CalculateShipping(ctx context.Context, addr model.Address) (model.ShippingQuote, error)
}

// サーバー側お気に入り（/wishlist）
type WishlistRepository interface {
	Get(ctx context.Context) (model.Wishlist, error)
	AddItem(ctx context.Context, productID string) (model.Wishlist, error)
	RemoveItem(ctx context.Context, itemID string) (model.Wishlist, error)
	Clear(ctx context.Context) (model.Wishlist, error)
	Contains(ctx context.Context, productID string) (bool, error)
	MoveToCart(ctx context.Context, itemID string, quantity int) (model.MoveToCartResult, error)
}
