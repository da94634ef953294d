package gateway

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type cartAPI struct {
	c *Client
}

// DI
func NewCartAPI(c *Client) repo.CartRepository {
	return &cartAPI{c: c}
}

func (a *cartAPI) Get(ctx context.Context) (model.Cart, error) {
	return call[model.Cart](ctx, a.c, http.MethodGet, "/cart", nil, nil)
}

func (a *cartAPI) AddItem(ctx context.Context, req model.AddCartRequest) (model.Cart, error) {
	return call[model.Cart](ctx, a.c, http.MethodPost, "/cart/items", nil, req)
}

func (a *cartAPI) UpdateItem(ctx context.Context, itemID string, quantity int) (model.Cart, error) {
	body := model.UpdateCartItemRequest{Quantity: quantity}
	return call[model.Cart](ctx, a.c, http.MethodPut, "/cart/items/"+seg(itemID), nil, body)
}

func (a *cartAPI) RemoveItem(ctx context.Context, itemID string) (model.Cart, error) {
	return call[model.Cart](ctx, a.c, http.MethodDelete, "/cart/items/"+seg(itemID), nil, nil)
}

func (a *cartAPI) Clear(ctx context.Context) (model.Cart, error) {
	return call[model.Cart](ctx, a.c, http.MethodDelete, "/cart", nil, nil)
}

func (a *cartAPI) ApplyCoupon(ctx context.Context, code string) (model.Cart, error) {
	body := struct {
		CouponCode string `json:"couponCode"`
	}{CouponCode: code}
	return call[model.Cart](ctx, a.c, http.MethodPost, "/cart/coupon", nil, body)
}

func (a *cartAPI) RemoveCoupon(ctx context.Context) (model.Cart, error) {
	return call[model.Cart](ctx, a.c, http.MethodDelete, "/cart/coupon", nil, nil)
}

func (a *cartAPI) CalculateShipping(ctx context.Context, addr model.Address) (model.ShippingQuote, error) {
	body := struct {
		ShippingAddress model.Address `json:"shippingAddress"`
	}{ShippingAddress: addr}
	return call[model.ShippingQuote](ctx, a.c, http.MethodPost, "/cart/shipping", nil, body)
}

type wishlistAPI struct {
	c *Client
}

// DI
func NewWishlistAPI(c *Client) repo.WishlistRepository {
	return &wishlistAPI{c: c}
}

func (a *wishlistAPI) Get(ctx context.Context) (model.Wishlist, error) {
	return call[model.Wishlist](ctx, a.c, http.MethodGet, "/wishlist", nil, nil)
}

func (a *wishlistAPI) AddItem(ctx context.Context, productID string) (model.Wishlist, error) {
	body := struct {
		ProductID string `json:"productId"`
	}{ProductID: productID}
	return call[model.Wishlist](ctx, a.c, http.MethodPost, "/wishlist/items", nil, body)
}

func (a *wishlistAPI) RemoveItem(ctx context.Context, itemID string) (model.Wishlist, error) {
	return call[model.Wishlist](ctx, a.c, http.MethodDelete, "/wishlist/items/"+seg(itemID), nil, nil)
}

func (a *wishlistAPI) Clear(ctx context.Context) (model.Wishlist, error) {
	return call[model.Wishlist](ctx, a.c, http.MethodDelete, "/wishlist", nil, nil)
}

func (a *wishlistAPI) Contains(ctx context.Context, productID string) (bool, error) {
	return call[bool](ctx, a.c, http.MethodGet, "/wishlist/check/"+seg(productID), nil, nil)
}

func (a *wishlistAPI) MoveToCart(ctx context.Context, itemID string, quantity int) (model.MoveToCartResult, error) {
	if quantity <= 0 {
		quantity = 1
	}
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}
	return call[model.MoveToCartResult](ctx, a.c, http.MethodPost, "/wishlist/items/"+seg(itemID)+"/move-to-cart", nil, body)
}
