package gateway

import (
	"context"
	"errors"

	repo "storefront/internal/repository"
)

// TokenSource はリクエストに付けるBearerトークンを返す。無ければ空文字。
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StorageTokens はlocalStorageに置いたアクセス/リフレッシュトークン。
type StorageTokens struct {
	storage    repo.LocalStorage
	accessKey  string
	refreshKey string
}

// DI
func NewStorageTokens(storage repo.LocalStorage, accessKey string, refreshKey string) *StorageTokens {
	return &StorageTokens{storage: storage, accessKey: accessKey, refreshKey: refreshKey}
}

func (t *StorageTokens) read(ctx context.Context, key string) (string, error) {
	b, err := t.storage.Get(ctx, key)
	if errors.Is(err, repo.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (t *StorageTokens) Token(ctx context.Context) (string, error) {
	return t.read(ctx, t.accessKey)
}

func (t *StorageTokens) RefreshToken(ctx context.Context) (string, error) {
	return t.read(ctx, t.refreshKey)
}

// 空のトークンは保存しない（既存も消す）
func (t *StorageTokens) Save(ctx context.Context, access string, refresh string) error {
	if err := t.put(ctx, t.accessKey, access); err != nil {
		return err
	}
	return t.put(ctx, t.refreshKey, refresh)
}

func (t *StorageTokens) put(ctx context.Context, key, v string) error {
	if v == "" {
		return t.storage.Remove(ctx, key)
	}
	return t.storage.Set(ctx, key, []byte(v))
}

// Clear は両方のトークンを消す
func (t *StorageTokens) Clear(ctx context.Context) error {
	if err := t.storage.Remove(ctx, t.accessKey); err != nil {
		return err
	}
	return t.storage.Remove(ctx, t.refreshKey)
}
