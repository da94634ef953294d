package repository

import (
	"context"

	repo "storefront/internal/repository"
)

// セッションごとにキーを分ける（"<scope>:<key>"）
type scopedLocalStorage struct {
	inner repo.LocalStorage
	scope string
}

func NewScopedLocalStorage(inner repo.LocalStorage, scope string) repo.LocalStorage {
	return &scopedLocalStorage{inner: inner, scope: scope}
}

func (s *scopedLocalStorage) key(k string) string {
	return s.scope + ":" + k
}

func (s *scopedLocalStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Get(ctx, s.key(key))
}

func (s *scopedLocalStorage) Set(ctx context.Context, key string, value []byte) error {
	return s.inner.Set(ctx, s.key(key), value)
}

func (s *scopedLocalStorage) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, s.key(key))
}
