package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// ローカルのカートコンテナ（store.Cart が満たす）
type CartStore interface {
	State() model.CartSnapshot
	AddItem(ctx context.Context, item model.CartItem) model.CartSnapshot
	RemoveItem(ctx context.Context, id string) model.CartSnapshot
	UpdateQuantity(ctx context.Context, id string, qty int) model.CartSnapshot
	ClearCart(ctx context.Context) model.CartSnapshot
	Item(id string) (model.CartItem, bool)
}

// 取得済みの商品を引く（store.Catalog が満たす）
type ProductLookup interface {
	ProductByID(id string) (model.Product, bool)
}

// CartUsecase は /cart の操作。明細はローカルに持ち、クーポンと送料見積もりだけサーバーに聞く。
type CartUsecase struct {
	cart     CartStore
	catalog  ProductLookup
	products repo.ProductRepository
	remote   repo.CartRepository
}

// DI
func NewCartUsecase(
	cart CartStore,
	catalog ProductLookup,
	products repo.ProductRepository,
	remote repo.CartRepository,
) *CartUsecase {
	return &CartUsecase{
		cart:     cart,
		catalog:  catalog,
		products: products,
		remote:   remote,
	}
}

func (u *CartUsecase) GetCart() model.CartSnapshot {
	return u.cart.State()
}

// 一覧に無ければ1件取得する
func findProduct(ctx context.Context, catalog ProductLookup, products repo.ProductRepository, id string) (model.Product, error) {
	if catalog != nil {
		if p, ok := catalog.ProductByID(id); ok {
			return p, nil
		}
	}
	p, err := products.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, fromRemote(err)
	}
	return p, nil
}

// AddToCart は quantity 個追加する（0は1扱い）。同じ商品は数量加算。
func (u *CartUsecase) AddToCart(ctx context.Context, productID string, quantity int) (model.CartSnapshot, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return model.CartSnapshot{}, NewHTTPError(http.StatusBadRequest, "invalid productId")
	}
	if quantity < 0 {
		return model.CartSnapshot{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}
	if quantity == 0 {
		quantity = 1
	}

	p, err := findProduct(ctx, u.catalog, u.products, productID)
	if err != nil {
		return model.CartSnapshot{}, err
	}
	if !p.InStock {
		return model.CartSnapshot{}, NewHTTPError(http.StatusBadRequest, "out of stock")
	}

	s := u.cart.AddItem(ctx, model.CartItemFromProduct(p))
	if quantity > 1 {
		cur, _ := u.cart.Item(p.ID)
		s = u.cart.UpdateQuantity(ctx, p.ID, cur.Quantity+quantity-1)
	}
	return s, nil
}

// 数量の上書き。0以下は削除になる。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, productID string, quantity int) (model.CartSnapshot, error) {
	if _, ok := u.cart.Item(productID); !ok {
		return model.CartSnapshot{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return u.cart.UpdateQuantity(ctx, productID, quantity), nil
}

func (u *CartUsecase) DeleteCartItem(ctx context.Context, productID string) (model.CartSnapshot, error) {
	if _, ok := u.cart.Item(productID); !ok {
		return model.CartSnapshot{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return u.cart.RemoveItem(ctx, productID), nil
}

func (u *CartUsecase) ClearCart(ctx context.Context) model.CartSnapshot {
	return u.cart.ClearCart(ctx)
}

// POST /cart/coupon（要ログイン、サーバー側カートに適用）
func (u *CartUsecase) ApplyCoupon(ctx context.Context, code string) (model.Cart, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid couponCode")
	}
	c, err := u.remote.ApplyCoupon(ctx, code)
	if err != nil {
		return model.Cart{}, fromRemote(err)
	}
	return c, nil
}

func (u *CartUsecase) RemoveCoupon(ctx context.Context) (model.Cart, error) {
	c, err := u.remote.RemoveCoupon(ctx)
	if err != nil {
		return model.Cart{}, fromRemote(err)
	}
	return c, nil
}

// POST /cart/shipping
func (u *CartUsecase) QuoteShipping(ctx context.Context, addr model.Address) (model.ShippingQuote, error) {
	if missing := addr.MissingFields(); len(missing) > 0 {
		return model.ShippingQuote{}, NewHTTPError(http.StatusBadRequest, "invalid address: "+strings.Join(missing, ", "))
	}
	q, err := u.remote.CalculateShipping(ctx, addr)
	if err != nil {
		return model.ShippingQuote{}, fromRemote(err)
	}
	return q, nil
}
