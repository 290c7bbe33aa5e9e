package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	r1 := &recorder{}
	r2 := &recorder{}
	d.Subscribe(EnemyKilled, r1)
	d.Subscribe(EnemyKilled, r2)

	d.Dispatch(Event{Type: EnemyKilled, Data: "payload"})

	assert.Len(t, r1.got, 1)
	assert.Len(t, r2.got, 1)
	assert.Equal(t, "payload", r1.got[0].Data)
}

func TestDispatchFiltersByType(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(TowerFired, r)

	d.Dispatch(Event{Type: EnemyKilled})
	assert.Empty(t, r.got)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(TowerPlaced, r)
	d.Unsubscribe(TowerPlaced, r)

	d.Dispatch(Event{Type: TowerPlaced})
	assert.Empty(t, r.got)
}

func TestDispatchWithoutSubscribersIsNoop(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Type: BaseDestroyed})
	})
}
