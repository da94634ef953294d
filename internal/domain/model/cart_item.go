package model

import "github.com/shopspring/decimal"

// カートの明細（商品IDで一意）
type CartItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image"`
	InStock  bool            `json:"inStock"`
}

// 小計 price × quantity
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// 商品からカート明細を作る（数量はストア側で決める）
func CartItemFromProduct(p Product) CartItem {
	return CartItem{
		ID:      p.ID,
		Name:    p.Name,
		Price:   p.Price,
		Image:   p.PrimaryImage(),
		InStock: p.InStock,
	}
}
