package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	logx "storefront/pkg/logger"
)

// ローカルのお気に入りコンテナ（store.Wishlist が満たす）
type WishlistStore interface {
	State() model.WishlistSnapshot
	AddItem(ctx context.Context, item model.WishlistItem) model.WishlistSnapshot
	RemoveItem(ctx context.Context, id string) model.WishlistSnapshot
	ToggleItem(ctx context.Context, item model.WishlistItem) model.WishlistSnapshot
	ClearWishlist(ctx context.Context) model.WishlistSnapshot
	IsInWishlist(id string) bool
}

type WishlistUsecase struct {
	wishlist WishlistStore
	cart     CartStore
	catalog  ProductLookup
	products repo.ProductRepository
	remote   repo.WishlistRepository
}

// DI
func NewWishlistUsecase(
	wishlist WishlistStore,
	cart CartStore,
	catalog ProductLookup,
	products repo.ProductRepository,
	remote repo.WishlistRepository,
) *WishlistUsecase {
	return &WishlistUsecase{
		wishlist: wishlist,
		cart:     cart,
		catalog:  catalog,
		products: products,
		remote:   remote,
	}
}

func (u *WishlistUsecase) GetWishlist() model.WishlistSnapshot {
	return u.wishlist.State()
}

func (u *WishlistUsecase) product(ctx context.Context, productID string) (model.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid productId")
	}
	return findProduct(ctx, u.catalog, u.products, productID)
}

// 既にあれば何もしない
func (u *WishlistUsecase) Add(ctx context.Context, productID string) (model.WishlistSnapshot, error) {
	if u.wishlist.IsInWishlist(productID) {
		return u.wishlist.State(), nil
	}
	p, err := u.product(ctx, productID)
	if err != nil {
		return model.WishlistSnapshot{}, err
	}
	return u.wishlist.AddItem(ctx, model.WishlistItemFromProduct(p)), nil
}

// Toggle は追加されたら added=true
func (u *WishlistUsecase) Toggle(ctx context.Context, productID string) (model.WishlistSnapshot, bool, error) {
	if u.wishlist.IsInWishlist(productID) {
		return u.wishlist.RemoveItem(ctx, productID), false, nil
	}
	p, err := u.product(ctx, productID)
	if err != nil {
		return model.WishlistSnapshot{}, false, err
	}
	return u.wishlist.ToggleItem(ctx, model.WishlistItemFromProduct(p)), true, nil
}

func (u *WishlistUsecase) Remove(ctx context.Context, productID string) (model.WishlistSnapshot, error) {
	if !u.wishlist.IsInWishlist(productID) {
		return model.WishlistSnapshot{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return u.wishlist.RemoveItem(ctx, productID), nil
}

func (u *WishlistUsecase) Clear(ctx context.Context) model.WishlistSnapshot {
	return u.wishlist.ClearWishlist(ctx)
}

// MoveToCart はお気に入りからカートへ1個移す
func (u *WishlistUsecase) MoveToCart(ctx context.Context, productID string) (model.WishlistSnapshot, model.CartSnapshot, error) {
	var found *model.WishlistItem
	for _, it := range u.wishlist.State().Items {
		if it.ID == productID {
			found = &it
			break
		}
	}
	if found == nil {
		return model.WishlistSnapshot{}, model.CartSnapshot{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if !found.InStock {
		return model.WishlistSnapshot{}, model.CartSnapshot{}, NewHTTPError(http.StatusBadRequest, "out of stock")
	}

	cart := u.cart.AddItem(ctx, model.CartItem{
		ID:      found.ID,
		Name:    found.Name,
		Price:   found.Price,
		Image:   found.Image,
		InStock: found.InStock,
	})
	wish := u.wishlist.RemoveItem(ctx, found.ID)
	return wish, cart, nil
}

// Sync はローカルにだけある商品をサーバー側のお気に入りへ送る（要ログイン）
func (u *WishlistUsecase) Sync(ctx context.Context) (model.Wishlist, error) {
	remote, err := u.remote.Get(ctx)
	if err != nil {
		return model.Wishlist{}, fromRemote(err)
	}

	have := make(map[string]struct{}, len(remote.Items))
	for _, it := range remote.Items {
		have[it.ProductID] = struct{}{}
	}

	pushed := 0
	for _, it := range u.wishlist.State().Items {
		if _, ok := have[it.ID]; ok {
			continue
		}
		remote, err = u.remote.AddItem(ctx, it.ID)
		if err != nil {
			return model.Wishlist{}, fromRemote(err)
		}
		pushed++
	}
	logx.Debug().Int("pushed", pushed).Msg("wishlist: synced")
	return remote, nil
}
