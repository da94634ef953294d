package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Cart_Add_Patch_Delete(t *testing.T) {
	c := NewTestClient(t)

	rec := c.Do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, mustDecode[Page[CartPage]](t, rec).Data.IsEmpty)

	rec = c.Do(http.MethodPost, "/cart", map[string]any{"productId": "prod-7", "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	p := mustDecode[Page[CartPage]](t, rec)
	assert.Equal(t, 2, p.Data.Cart.TotalItems)
	assert.Equal(t, "$24.00", p.Data.Subtotal)
	assert.Equal(t, "$9.99", p.Data.Shipping)
	assert.Equal(t, "$1.92", p.Data.Tax)
	assert.Equal(t, "$35.91", p.Data.Total)
	assert.Equal(t, 2, p.Chrome.CartCount)
	require.Len(t, p.Chrome.Notifications, 1)
	assert.Equal(t, "Added to cart", p.Chrome.Notifications[0].Title)
	assert.Equal(t, "Your cart is empty", p.Labels["empty"])

	//同じ商品は数量が増える
	rec = c.Do(http.MethodPost, "/cart", map[string]any{"productId": "prod-7"})
	require.Equal(t, http.StatusOK, rec.Code)
	p = mustDecode[Page[CartPage]](t, rec)
	require.Len(t, p.Data.Cart.Items, 1)
	assert.Equal(t, 3, p.Data.Cart.Items[0].Quantity)

	rec = c.Do(http.MethodPatch, "/cart/prod-7", map[string]any{"quantity": 10})
	require.Equal(t, http.StatusOK, rec.Code)
	p = mustDecode[Page[CartPage]](t, rec)
	assert.Equal(t, "$120.00", p.Data.Subtotal)
	// 100以上は送料無料
	assert.Equal(t, "$0.00", p.Data.Shipping)

	rec = c.Do(http.MethodDelete, "/cart/prod-7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, mustDecode[Page[CartPage]](t, rec).Data.IsEmpty)

	rec = c.Do(http.MethodDelete, "/cart/prod-7", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_Cart_Add_Errors(t *testing.T) {
	c := NewTestClient(t)

	rec := c.Do(http.MethodPost, "/cart", map[string]any{"productId": "prod-3"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.Do(http.MethodPost, "/cart", map[string]any{"productId": "prod-404"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.Do(http.MethodPost, "/cart", map[string]any{"productId": "prod-1", "quantity": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.Do(http.MethodPatch, "/cart/prod-1", map[string]any{"quantity": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.Do(http.MethodGet, "/cart", nil)
	assert.True(t, mustDecode[Page[CartPage]](t, rec).Data.IsEmpty)
}

func Test_Cart_CouponRequiresLogin(t *testing.T) {
	c := NewTestClient(t)

	rec := c.Do(http.MethodPost, "/cart/coupon", map[string]string{"code": "SAVE10"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, c.Requests("/cart/coupon"))
}

func Test_Cart_Clear(t *testing.T) {
	c := NewTestClient(t)

	c.Do(http.MethodPost, "/cart", map[string]any{"productId": "prod-1"})
	c.Do(http.MethodPost, "/cart", map[string]any{"productId": "prod-2"})

	rec := c.Do(http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	p := mustDecode[Page[CartPage]](t, rec)
	assert.True(t, p.Data.IsEmpty)
	assert.Equal(t, 0, p.Chrome.CartCount)
}

// ===== wishlist =====

func Test_Wishlist_Toggle_MoveToCart(t *testing.T) {
	c := NewTestClient(t)

	rec := c.Do(http.MethodPost, "/wishlist/prod-8/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	p := mustDecode[Page[WishlistPage]](t, rec)
	assert.Equal(t, 1, p.Data.TotalItems)
	assert.Equal(t, 1, p.Chrome.WishlistCount)
	assert.Equal(t, "Added to wishlist", p.Chrome.Notifications[len(p.Chrome.Notifications)-1].Title)

	//商品カードにも反映される
	rec = c.Do(http.MethodGet, "/products/prod-8", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"inWishlist":true`)

	rec = c.Do(http.MethodPost, "/wishlist/prod-8/move-to-cart", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	p = mustDecode[Page[WishlistPage]](t, rec)
	assert.True(t, p.Data.IsEmpty)
	assert.Equal(t, 1, p.Chrome.CartCount)
	assert.Equal(t, 0, p.Chrome.WishlistCount)

	// 2回目の toggle で外れる
	c.Do(http.MethodPost, "/wishlist/prod-1/toggle", nil)
	rec = c.Do(http.MethodPost, "/wishlist/prod-1/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, mustDecode[Page[WishlistPage]](t, rec).Data.IsEmpty)
}

func Test_Wishlist_Errors(t *testing.T) {
	c := NewTestClient(t)

	// 在庫切れはお気に入りには入るがカートには移せない
	rec := c.Do(http.MethodPost, "/wishlist", map[string]string{"productId": "prod-9"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = c.Do(http.MethodPost, "/wishlist/prod-9/move-to-cart", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.Do(http.MethodDelete, "/wishlist/prod-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.Do(http.MethodPost, "/wishlist/prod-404/toggle", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.Do(http.MethodPost, "/wishlist/sync", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = c.Do(http.MethodDelete, "/wishlist", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, mustDecode[Page[WishlistPage]](t, rec).Data.IsEmpty)
}
