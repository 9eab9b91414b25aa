// internal/audio/listener.go
package audio

import "go-dungeon-runner/internal/event"

// Listener озвучивает игровые события.
type Listener struct {
	Sink Sink
}

// Subscribe подписывает слушателя на нужные события.
func (l *Listener) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.HeroDied, l)
	d.Subscribe(event.EnemyKilled, l)
}

func (l *Listener) OnEvent(e event.Event) {
	switch e.Type {
	case event.HeroDied:
		l.Sink.Play(CueLost)
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok && data.Coins > 0 {
			l.Sink.Play(CueCoin)
		}
	}
}
