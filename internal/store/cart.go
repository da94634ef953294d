package store

import (
	"context"
	"slices"
	"sync"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

type CartState = model.CartSnapshot

func emptyCart() CartState {
	return CartState{Items: []model.CartItem{}, TotalPrice: decimal.Zero}
}

// Cart はローカルのカート。変更のたびに cart-storage へ保存する。
type Cart struct {
	*Store[CartState]

	storage repo.LocalStorage
	// 状態の更新と保存の順番をそろえる
	writeMu sync.Mutex
}

// DI
func NewCart(storage repo.LocalStorage) *Cart {
	return &Cart{Store: newStore(emptyCart()), storage: storage}
}

func cartTotals(items []model.CartItem) CartState {
	s := CartState{Items: items, TotalPrice: decimal.Zero}
	for _, it := range items {
		s.TotalItems += it.Quantity
		s.TotalPrice = s.TotalPrice.Add(it.LineTotal())
	}
	return s
}

func (c *Cart) mutate(ctx context.Context, fn func(items []model.CartItem) []model.CartItem) CartState {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	next := c.update(func(s *CartState) {
		*s = cartTotals(fn(s.Items))
	})
	persist(ctx, c.storage, repo.KeyCart, next)
	return next
}

// Restore は保存済みのカートを読み込む。数量0以下の明細は捨てる。
func (c *Cart) Restore(ctx context.Context) error {
	snap, ok, err := restore[CartState](ctx, c.storage, repo.KeyCart)
	if err != nil || !ok {
		return err
	}
	items := make([]model.CartItem, 0, len(snap.Items))
	for _, it := range snap.Items {
		if it.Quantity > 0 {
			items = append(items, it)
		}
	}
	c.update(func(s *CartState) {
		*s = cartTotals(items)
	})
	return nil
}

// AddItem は同じIDがあれば数量+1、無ければ数量1で末尾に追加
func (c *Cart) AddItem(ctx context.Context, item model.CartItem) CartState {
	return c.mutate(ctx, func(items []model.CartItem) []model.CartItem {
		out := slices.Clone(items)
		for i := range out {
			if out[i].ID == item.ID {
				out[i].Quantity++
				return out
			}
		}
		item.Quantity = 1
		return append(out, item)
	})
}

func (c *Cart) RemoveItem(ctx context.Context, id string) CartState {
	return c.mutate(ctx, func(items []model.CartItem) []model.CartItem {
		out := make([]model.CartItem, 0, len(items))
		for _, it := range items {
			if it.ID != id {
				out = append(out, it)
			}
		}
		return out
	})
}

// UpdateQuantity は qty<=0 なら削除、それ以外はその数量にする
func (c *Cart) UpdateQuantity(ctx context.Context, id string, qty int) CartState {
	if qty <= 0 {
		return c.RemoveItem(ctx, id)
	}
	return c.mutate(ctx, func(items []model.CartItem) []model.CartItem {
		out := slices.Clone(items)
		for i := range out {
			if out[i].ID == id {
				out[i].Quantity = qty
			}
		}
		return out
	})
}

func (c *Cart) ClearCart(ctx context.Context) CartState {
	return c.mutate(ctx, func([]model.CartItem) []model.CartItem {
		return []model.CartItem{}
	})
}

func (c *Cart) Item(id string) (model.CartItem, bool) {
	for _, it := range c.State().Items {
		if it.ID == id {
			return it, true
		}
	}
	return model.CartItem{}, false
}
