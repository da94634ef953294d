package repository

import (
	"context"
	"sync"

	repo "storefront/internal/repository"
)

// プロセス内だけのlocalStorage（テスト・STORAGE_DRIVER=memory用）
type LocalStorageMemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewLocalStorageMemoryRepository() *LocalStorageMemoryRepository {
	return &LocalStorageMemoryRepository{data: map[string][]byte{}}
}

func (r *LocalStorageMemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (r *LocalStorageMemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *LocalStorageMemoryRepository) Remove(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

// 保存されているキー数（テスト用）
func (r *LocalStorageMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
