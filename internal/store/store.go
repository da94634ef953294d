// Package store はセッション単位の状態コンテナ（catalog, cart, wishlist, auth, ui）。
// どのコンテナも State で現在値を返し、Subscribe で変更通知を受けられる。
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	repo "storefront/internal/repository"
	logx "storefront/pkg/logger"
)

// Store は状態1つと購読者を持つ。S は値として扱い、スライスは差し替えで更新する。
type Store[S any] struct {
	mu     sync.RWMutex
	state  S
	subs   map[int]func(S)
	nextID int
	// seq は update ごとに進む。delivered は通知済みの最大の seq（notifyMu で守る）。
	seq       uint64
	notifyMu  sync.Mutex
	delivered uint64
}

func newStore[S any](initial S) *Store[S] {
	return &Store[S]{state: initial, subs: map[int]func(S){}}
}

func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe は変更のたびに fn を呼ぶ。戻り値で解除。
// fn は更新の順に1つずつ呼ばれる。fn の中から同じ Store を更新しないこと。
func (s *Store[S]) Subscribe(fn func(S)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// update はロック中に fn で状態を書き換え、ロック外で購読者に通知する。
// 後の更新が先に通知済みなら古い状態は通知しない。
func (s *Store[S]) update(fn func(*S)) S {
	s.mu.Lock()
	fn(&s.state)
	s.seq++
	seq := s.seq
	next := s.state
	subs := make([]func(S), 0, len(s.subs))
	for _, f := range s.subs {
		subs = append(subs, f)
	}
	s.mu.Unlock()

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if seq <= s.delivered {
		return next
	}
	s.delivered = seq
	for _, f := range subs {
		f(next)
	}
	return next
}

// zustand の persist と同じ形 {"state": ..., "version": 0}
type persisted[T any] struct {
	State   T   `json:"state"`
	Version int `json:"version"`
}

// 保存の失敗は状態を巻き戻さずログだけ残す
func persist[T any](ctx context.Context, storage repo.LocalStorage, key string, v T) {
	if storage == nil {
		return
	}
	b, err := json.Marshal(persisted[T]{State: v})
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to encode state")
		return
	}
	if err := storage.Set(ctx, key, b); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to persist state")
	}
}

// 保存が無ければ found=false
func restore[T any](ctx context.Context, storage repo.LocalStorage, key string) (T, bool, error) {
	var zero T
	if storage == nil {
		return zero, false, nil
	}
	b, err := storage.Get(ctx, key)
	if errors.Is(err, repo.ErrNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	var p persisted[T]
	if err := json.Unmarshal(b, &p); err != nil {
		return zero, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return p.State, true, nil
}

// guard はゲートウェイ呼び出しの panic をエラーに変える
func guard[T any](fn func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			logx.Error().Interface("panic", r).Msg("recovered from gateway panic")
			err = fmt.Errorf("unexpected error: %v", r)
		}
	}()
	return fn()
}

// 画面に出すエラーメッセージ
func errorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
