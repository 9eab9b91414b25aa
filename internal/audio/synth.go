// internal/audio/synth.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType — форма волны осциллятора.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sampleFunc возвращает значение волны в фазе [0, 1).
type sampleFunc func(phase float64, noise *rand.Rand) float64

var waves = map[WaveType]sampleFunc{
	WaveSine: func(phase float64, _ *rand.Rand) float64 {
		return math.Sin(2 * math.Pi * phase)
	},
	WaveSquare: func(phase float64, _ *rand.Rand) float64 {
		if phase < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw: func(phase float64, _ *rand.Rand) float64 {
		return 2*phase - 1
	},
	WaveNoise: func(_ float64, noise *rand.Rand) float64 {
		return noise.Float64()*2 - 1
	},
}

// oscillator — моно-волна фиксированной длины в обоих каналах.
type oscillator struct {
	sample    sampleFunc
	noise     *rand.Rand
	phase     float64
	step      float64
	remaining int
}

// NewOscillator создает осциллятор. Шум детерминирован: генератор засевается частотой.
// Неизвестная форма волны дает тишину.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	sample, ok := waves[wave]
	if !ok {
		sample = func(float64, *rand.Rand) float64 { return 0 }
	}
	return &oscillator{
		sample:    sample,
		noise:     rand.New(rand.NewSource(int64(freq) + 1)),
		step:      freq / float64(rate),
		remaining: rate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.remaining <= 0 {
		return 0, false
	}
	n := min(len(samples), o.remaining)
	for i := range samples[:n] {
		v := o.sample(o.phase, o.noise)
		samples[i] = [2]float64{v, v}
		_, o.phase = math.Modf(o.phase + o.step)
	}
	o.remaining -= n
	return n, true
}

func (o *oscillator) Err() error { return nil }

// envelope — упрощенная огибающая: атака, удержание, затухание.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume переводит линейную громкость в шкалу effects.Volume. Ноль дает тишину.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone — осциллятор с огибающей.
func tone(freq float64, d time.Duration, wave WaveType, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// melody — последовательность нот одинаковой длины. Нулевая частота — пауза.
func melody(notes []float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		if f == 0 {
			parts = append(parts, beep.Silence(rate.N(d)))
			continue
		}
		parts = append(parts, tone(f, d, wave, 5*time.Millisecond, d/2, rate))
	}
	return beep.Seq(parts...)
}
