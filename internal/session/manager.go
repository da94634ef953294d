package session

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"storefront/internal/i18n"
	"storefront/internal/infra/mockcatalog"
	infra "storefront/internal/infra/repository"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"
	logx "storefront/pkg/logger"

	"github.com/google/uuid"
)

const defaultTTL = 24 * time.Hour

type Options struct {
	// 全セッション共通の保存先。キーはセッションIDで分ける。
	Storage repo.LocalStorage

	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client

	AccessTokenKey  string
	RefreshTokenKey string

	// nil でなければ商品・カテゴリはこちらから読む
	MockCatalog *mockcatalog.Catalog

	Translator *i18n.Translator
	Pricing    usecase.Pricing
	PageSize   int
	TTL        time.Duration
	Now        func() time.Time
}

// Manager はセッションIDごとのコンテナ一式を持つ。
// メモリ上に無いIDでも、保存済みの状態があればそこから組み直す。
type Manager struct {
	opts Options
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// DI
func NewManager(opts Options) (*Manager, error) {
	if opts.Storage == nil {
		return nil, errors.New("session: storage is required")
	}
	if opts.BaseURL == "" {
		return nil, errors.New("session: base URL is required")
	}
	if opts.AccessTokenKey == "" {
		opts.AccessTokenKey = "auth_token"
	}
	if opts.RefreshTokenKey == "" {
		opts.RefreshTokenKey = "refresh_token"
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.Translator == nil {
		opts.Translator = i18n.NewTranslator(nil, i18n.DefaultLanguage)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		opts:     opts,
		now:      now,
		sessions: make(map[string]*Session),
	}, nil
}

func (m *Manager) scope(id string) repo.LocalStorage {
	return infra.NewScopedLocalStorage(m.opts.Storage, "session:"+id)
}

// Open は id のセッションを返す。id が空か不正なら新しいIDで作る。
// created は新しく組み立てた場合 true。
func (m *Manager) Open(ctx context.Context, id string, acceptLanguage string) (*Session, bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	m.mu.Lock()
	if s, ok := m.sessions[id]; ok {
		s.lastSeen = m.now().UnixNano()
		m.mu.Unlock()
		return s, false, nil
	}
	m.mu.Unlock()

	// 組み立て中はロックを持たない（ストレージを読むため）
	s, err := m.build(ctx, id, acceptLanguage)
	if err != nil {
		return nil, false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[id]; ok {
		//同じIDで並行に組み立てられた場合は先勝ち
		s.close()
		existing.lastSeen = m.now().UnixNano()
		return existing, false, nil
	}
	s.lastSeen = m.now().UnixNano()
	m.sessions[id] = s
	logx.Debug().Str("session", id).Msg("session: opened")
	return s, true, nil
}

// Get は既存のセッションだけを返す
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep は TTL を過ぎたセッションをメモリから外す。保存済みの状態は残る。
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.opts.TTL).UnixNano()

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if s.lastSeen < cutoff {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.close()
	}
	if len(expired) > 0 {
		logx.Info().Int("expired", len(expired)).Msg("session: swept")
	}
	return len(expired)
}

// Run は ctx が終わるまで interval ごとに Sweep する
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Sweep()
		}
	}
}

// Close は全セッションの通知タイマーを止める
func (m *Manager) Close() {
	m.mu.Lock()
	all := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range all {
		s.close()
	}
}
