package store

import (
	"sync"
	"time"

	"storefront/internal/domain/model"

	"github.com/google/uuid"
)

type LoadingKey string

const (
	LoadingGlobal   LoadingKey = "global"
	LoadingProducts LoadingKey = "products"
	LoadingAuth     LoadingKey = "auth"
)

// UIState は保存しない
type UIState struct {
	IsMobileMenuOpen bool                 `json:"isMobileMenuOpen"`
	IsSearchOpen     bool                 `json:"isSearchOpen"`
	Theme            model.Theme          `json:"theme"`
	Notifications    []model.Notification `json:"notifications"`
	Loading          map[LoadingKey]bool  `json:"loading"`
}

type UI struct {
	*Store[UIState]

	now func() time.Time

	timersMu sync.Mutex
	timers   map[string]*time.Timer
}

// DI。now が nil なら time.Now
func NewUI(now func() time.Time) *UI {
	if now == nil {
		now = time.Now
	}
	return &UI{
		Store: newStore(UIState{
			Theme:         model.ThemeLight,
			Notifications: []model.Notification{},
			Loading: map[LoadingKey]bool{
				LoadingGlobal:   false,
				LoadingProducts: false,
				LoadingAuth:     false,
			},
		}),
		now:    now,
		timers: map[string]*time.Timer{},
	}
}

func (u *UI) ToggleMobileMenu() {
	u.update(func(s *UIState) { s.IsMobileMenuOpen = !s.IsMobileMenuOpen })
}

func (u *UI) SetMobileMenuOpen(open bool) {
	u.update(func(s *UIState) { s.IsMobileMenuOpen = open })
}

func (u *UI) ToggleSearch() {
	u.update(func(s *UIState) { s.IsSearchOpen = !s.IsSearchOpen })
}

func (u *UI) SetSearchOpen(open bool) {
	u.update(func(s *UIState) { s.IsSearchOpen = open })
}

// 不正な値は無視
func (u *UI) SetTheme(theme model.Theme) {
	if theme != model.ThemeLight && theme != model.ThemeDark {
		return
	}
	u.update(func(s *UIState) { s.Theme = theme })
}

// AddNotification はIDと作成時刻を付けて追加する。Duration>0 ならその後に自動で消す。
func (u *UI) AddNotification(n model.Notification) model.Notification {
	n.ID = uuid.NewString()
	n.CreatedAt = u.now()

	u.update(func(s *UIState) {
		out := make([]model.Notification, 0, len(s.Notifications)+1)
		out = append(out, s.Notifications...)
		s.Notifications = append(out, n)
	})

	if n.Duration > 0 {
		id := n.ID
		u.timersMu.Lock()
		u.timers[id] = time.AfterFunc(n.Duration, func() { u.RemoveNotification(id) })
		u.timersMu.Unlock()
	}
	return n
}

func (u *UI) RemoveNotification(id string) {
	u.stopTimer(id)
	u.update(func(s *UIState) {
		out := make([]model.Notification, 0, len(s.Notifications))
		for _, n := range s.Notifications {
			if n.ID != id {
				out = append(out, n)
			}
		}
		s.Notifications = out
	})
}

func (u *UI) ClearNotifications() {
	u.timersMu.Lock()
	for id, t := range u.timers {
		t.Stop()
		delete(u.timers, id)
	}
	u.timersMu.Unlock()

	u.update(func(s *UIState) { s.Notifications = []model.Notification{} })
}

func (u *UI) SetLoading(key LoadingKey, loading bool) {
	u.update(func(s *UIState) {
		next := make(map[LoadingKey]bool, len(s.Loading)+1)
		for k, v := range s.Loading {
			next[k] = v
		}
		next[key] = loading
		s.Loading = next
	})
}

// Close は残っているタイマーを止める（セッション破棄時）
func (u *UI) Close() {
	u.timersMu.Lock()
	defer u.timersMu.Unlock()
	for id, t := range u.timers {
		t.Stop()
		delete(u.timers, id)
	}
}

func (u *UI) stopTimer(id string) {
	u.timersMu.Lock()
	defer u.timersMu.Unlock()
	if t, ok := u.timers[id]; ok {
		t.Stop()
		delete(u.timers, id)
	}
}
