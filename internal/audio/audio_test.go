package audio

import (
	"testing"
	"time"

	"go-dungeon-runner/internal/event"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(8000)

func TestOscillatorDrainsAfterDuration(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, 200)

	n, ok := osc.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, testRate.N(10*time.Millisecond), n)
	for _, s := range buf[:n] {
		assert.Contains(t, []float64{-1, 1}, s[0])
	}

	n, ok = osc.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestNoiseIsSeededByFrequency(t *testing.T) {
	a := make([][2]float64, 64)
	b := make([][2]float64, 64)
	NewOscillator(220, 10*time.Millisecond, WaveNoise, testRate).Stream(a)
	NewOscillator(220, 10*time.Millisecond, WaveNoise, testRate).Stream(b)
	assert.Equal(t, a, b)

	silent := make([][2]float64, 8)
	silent[0] = [2]float64{1, 1}
	n, ok := NewOscillator(220, 10*time.Millisecond, WaveType(42), testRate).Stream(silent)
	assert.True(t, ok)
	assert.Equal(t, 8, n)
	assert.Equal(t, [2]float64{}, silent[0])
}

func TestEnvelopeShapesAttackAndRelease(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)
	buf := make([][2]float64, testRate.N(d))

	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)
	assert.Zero(t, buf[0][0], "attack starts silent")
	assert.Equal(t, 1.0, buf[n/2][0])
	assert.Less(t, buf[n-1][0], 0.05)
}

func TestEveryCueRenders(t *testing.T) {
	for _, cue := range Cues() {
		pcm := Render(cue, testRate)
		assert.NotEmpty(t, pcm, cue.String())
		assert.Zero(t, len(pcm)%4, "%s: 16-bit stereo frames", cue)
	}
	assert.Nil(t, Render(Cue(99), testRate))
	assert.Equal(t, "unknown", Cue(99).String())
}

type recorder struct {
	played []Cue
}

func (r *recorder) Play(c Cue) { r.played = append(r.played, c) }
func (r *recorder) Stop(Cue)   {}

func TestListenerMapsEvents(t *testing.T) {
	rec := &recorder{}
	d := event.NewDispatcher()
	(&Listener{Sink: rec}).Subscribe(d)

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Name: "rat", Coins: 0}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Name: "rat", Coins: 2}})
	d.Dispatch(event.Event{Type: event.HeroDied})

	assert.Equal(t, []Cue{CueCoin, CueLost}, rec.played)
}
