package services

import (
	"sync"
)

// RefreshEvent signals that a user's data changed and any derived view
// (day summary, calendar, weekly stats, streak) should be recomputed on
// next read. The aggregation code itself stays pure; subscribers decide
// when to re-invoke it.
type RefreshEvent struct {
	UserID uint   `json:"user_id"`
	Kind   string `json:"kind"` // "meals.changed" | "goals.changed"
}

const (
	RefreshMeals = "meals.changed"
	RefreshGoals = "goals.changed"
)

type RefreshBus struct {
	mu   sync.RWMutex
	subs []func(RefreshEvent)
}

func NewRefreshBus() *RefreshBus {
	return &RefreshBus{}
}

func (b *RefreshBus) Subscribe(fn func(RefreshEvent)) {
	b.mu.Lock()
	b.subs = append(b.subs, fn)
	b.mu.Unlock()
}

// Publish delivers the event to every subscriber synchronously. Subscribers
// that do slow work (socket writes, recomputes) should hand off themselves.
func (b *RefreshBus) Publish(ev RefreshEvent) {
	b.mu.RLock()
	subs := b.subs
	b.mu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}
