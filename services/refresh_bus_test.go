package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefreshBus_FanOut(t *testing.T) {
	bus := NewRefreshBus()

	var got []RefreshEvent
	bus.Subscribe(func(ev RefreshEvent) { got = append(got, ev) })
	bus.Subscribe(func(ev RefreshEvent) { got = append(got, ev) })

	bus.Publish(RefreshEvent{UserID: 7, Kind: RefreshMeals})

	assert.Len(t, got, 2, "every subscriber sees the event")
	assert.Equal(t, uint(7), got[0].UserID)
	assert.Equal(t, RefreshMeals, got[0].Kind)
}

func TestRefreshBus_NoSubscribers(t *testing.T) {
	bus := NewRefreshBus()
	assert.NotPanics(t, func() {
		bus.Publish(RefreshEvent{UserID: 1, Kind: RefreshGoals})
	})
}
