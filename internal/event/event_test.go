package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(EnemyKilled, ListenerFunc(func(e Event) { got = append(got, "first") }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(e Event) { got = append(got, "second") }))
	d.Subscribe(DropCollected, ListenerFunc(func(e Event) { got = append(got, "drop") }))

	d.Emit(EnemyKilled, nil)
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestEmitCarriesData(t *testing.T) {
	d := NewDispatcher()
	var level int
	d.Subscribe(PlayerLevelUp, ListenerFunc(func(e Event) { level = e.Data.(int) }))
	d.Emit(PlayerLevelUp, 3)
	assert.Equal(t, 3, level)
}

func TestNilDispatcherDropsEvents(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Emit(MatchEnded, nil) })
}
