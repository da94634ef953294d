package model

import "github.com/shopspring/decimal"

// ローカルストレージに保存するカートの部分集合
type CartSnapshot struct {
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// サーバー側のカート（GET /cart）
type Cart struct {
	ID         string           `json:"id"`
	Items      []RemoteCartItem `json:"items"`
	Subtotal   decimal.Decimal  `json:"subtotal"`
	Tax        decimal.Decimal  `json:"tax"`
	Shipping   decimal.Decimal  `json:"shipping"`
	Total      decimal.Decimal  `json:"total"`
	Currency   string           `json:"currency"`
	CouponCode string           `json:"couponCode,omitempty"`
}

type RemoteCartItem struct {
	ID               string            `json:"id"`
	ProductID        string            `json:"productId"`
	Product          Product           `json:"product"`
	Quantity         int               `json:"quantity"`
	SelectedVariants map[string]string `json:"selectedVariants,omitempty"`
	Price            decimal.Decimal   `json:"price"`
}

// POST /cart/items
type AddCartRequest struct {
	ProductID string            `json:"productId"`
	Quantity  int               `json:"quantity"`
	Variants  map[string]string `json:"variants,omitempty"`
}

// PUT /cart/items/:id
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type ShippingOption struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Days  int             `json:"days,omitempty"`
}

// POST /cart/shipping
type ShippingQuote struct {
	Shipping decimal.Decimal  `json:"shipping"`
	Options  []ShippingOption `json:"options"`
}
