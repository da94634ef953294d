package repository

import "context"

// ブラウザのlocalStorage相当。キーが無ければ ErrNotFound。
type LocalStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// 保存キー
const (
	KeyCart     = "cart-storage"
	KeyWishlist = "wishlist-storage"
	KeyAuth     = "auth-storage"
	KeyLanguage = "i18nextLng"
)
