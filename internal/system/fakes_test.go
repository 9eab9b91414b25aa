package system

import (
	"image/color"

	"go-dungeon-runner/internal/audio"
	"go-dungeon-runner/internal/event"

	"github.com/go-gl/mathgl/mgl64"
)

type recordingSink struct {
	played []audio.Cue
}

func (r *recordingSink) Play(cue audio.Cue) { r.played = append(r.played, cue) }
func (r *recordingSink) Stop(audio.Cue)     {}

type burst struct {
	count int
	color color.RGBA
}

type recordingParticles struct {
	bursts []burst
}

func (r *recordingParticles) Submit(count int, lifeTime float64, posMin, posMax, velMin, velMax mgl64.Vec3, c color.RGBA) {
	r.bursts = append(r.bursts, burst{count: count, color: c})
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newDispatcher(log *eventLog, types ...event.EventType) *event.Dispatcher {
	d := event.NewDispatcher()
	for _, t := range types {
		d.Subscribe(t, log)
	}
	return d
}
