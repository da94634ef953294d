package store

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type WishlistState = model.WishlistSnapshot

// Wishlist は数量を持たないお気に入り。wishlist-storage に保存する。
type Wishlist struct {
	*Store[WishlistState]

	storage repo.LocalStorage
	now     func() time.Time
	writeMu sync.Mutex
}

// DI。now が nil なら time.Now
func NewWishlist(storage repo.LocalStorage, now func() time.Time) *Wishlist {
	if now == nil {
		now = time.Now
	}
	return &Wishlist{
		Store:   newStore(WishlistState{Items: []model.WishlistItem{}}),
		storage: storage,
		now:     now,
	}
}

func (w *Wishlist) mutate(ctx context.Context, fn func(items []model.WishlistItem) ([]model.WishlistItem, bool)) WishlistState {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	changed := false
	next := w.update(func(s *WishlistState) {
		items, ok := fn(s.Items)
		if !ok {
			return
		}
		changed = true
		s.Items = items
		s.TotalItems = len(items)
	})
	if changed {
		persist(ctx, w.storage, repo.KeyWishlist, next)
	}
	return next
}

func (w *Wishlist) Restore(ctx context.Context) error {
	snap, ok, err := restore[WishlistState](ctx, w.storage, repo.KeyWishlist)
	if err != nil || !ok {
		return err
	}
	items := snap.Items
	if items == nil {
		items = []model.WishlistItem{}
	}
	w.update(func(s *WishlistState) {
		s.Items = items
		s.TotalItems = len(items)
	})
	return nil
}

func indexOfWish(items []model.WishlistItem, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// AddItem は既にあれば何もしない
func (w *Wishlist) AddItem(ctx context.Context, item model.WishlistItem) WishlistState {
	return w.mutate(ctx, func(items []model.WishlistItem) ([]model.WishlistItem, bool) {
		if indexOfWish(items, item.ID) >= 0 {
			return items, false
		}
		item.AddedAt = w.now()
		out := make([]model.WishlistItem, 0, len(items)+1)
		out = append(out, items...)
		return append(out, item), true
	})
}

func (w *Wishlist) RemoveItem(ctx context.Context, id string) WishlistState {
	return w.mutate(ctx, func(items []model.WishlistItem) ([]model.WishlistItem, bool) {
		i := indexOfWish(items, id)
		if i < 0 {
			return items, false
		}
		out := make([]model.WishlistItem, 0, len(items)-1)
		out = append(out, items[:i]...)
		return append(out, items[i+1:]...), true
	})
}

// ToggleItem はあれば削除、無ければ追加
func (w *Wishlist) ToggleItem(ctx context.Context, item model.WishlistItem) WishlistState {
	return w.mutate(ctx, func(items []model.WishlistItem) ([]model.WishlistItem, bool) {
		if i := indexOfWish(items, item.ID); i >= 0 {
			out := make([]model.WishlistItem, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...), true
		}
		item.AddedAt = w.now()
		out := make([]model.WishlistItem, 0, len(items)+1)
		out = append(out, items...)
		return append(out, item), true
	})
}

func (w *Wishlist) ClearWishlist(ctx context.Context) WishlistState {
	return w.mutate(ctx, func([]model.WishlistItem) ([]model.WishlistItem, bool) {
		return []model.WishlistItem{}, true
	})
}

func (w *Wishlist) IsInWishlist(id string) bool {
	return indexOfWish(w.State().Items, id) >= 0
}
