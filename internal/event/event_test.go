package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewDispatcher()
	coins := &recorder{}
	deaths := &recorder{}
	d.Subscribe(CoinsChanged, coins)
	d.Subscribe(HeroDied, deaths)

	d.Dispatch(Event{Type: CoinsChanged, Data: CoinsData{Delta: 5, Total: 5}})
	d.Dispatch(Event{Type: BandEntered, Data: BandData{Band: 1}})

	assert.Len(t, coins.events, 1)
	assert.Equal(t, CoinsData{Delta: 5, Total: 5}, coins.events[0].Data)
	assert.Empty(t, deaths.events)
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	b := &recorder{}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(EnemyKilled, b)
	d.Unsubscribe(EnemyKilled, a)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{Name: "rat", Coins: 2}})

	assert.Empty(t, a.events)
	assert.Len(t, b.events, 1)
}

func TestDispatcherIgnoresDuplicateSubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(HeroDied, r)
	d.Subscribe(HeroDied, r)

	d.Dispatch(Event{Type: HeroDied})

	assert.Len(t, r.events, 1)
	assert.Nil(t, r.events[0].Data)
}

type oneShot struct {
	d     *Dispatcher
	calls int
}

func (o *oneShot) OnEvent(e Event) {
	o.calls++
	o.d.Unsubscribe(e.Type, o)
}

func TestListenerUnsubscribesDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	once := &oneShot{d: d}
	tail := &recorder{}
	d.Subscribe(RunFinished, once)
	d.Subscribe(RunFinished, tail)

	d.Dispatch(Event{Type: RunFinished, Data: CoinsData{Delta: 3, Total: 10}})
	d.Dispatch(Event{Type: RunFinished, Data: CoinsData{Delta: 1, Total: 11}})

	assert.Equal(t, 1, once.calls)
	assert.Len(t, tail.events, 2, "removal mid-dispatch does not skip later listeners")
}
