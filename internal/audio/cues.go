// internal/audio/cues.go
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// SampleRate — частота дискретизации всех сигналов.
const SampleRate beep.SampleRate = 44100

// Ноты, Гц.
const (
	noteA3 = 220.00
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteB5 = 987.77
	noteE6 = 1318.51
)

// Synthesize строит сигнал cue. Для неизвестного сигнала возвращает nil.
func Synthesize(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueGame:
		bass := melody([]float64{noteA3, 0, noteA3, noteC4, noteE4, 0, noteA3, noteG4 / 2}, 250*time.Millisecond, WaveSquare, rate)
		lead := melody([]float64{noteA4, noteC5, noteE5, noteC5, noteA4, noteE4, noteG4, noteE4}, 250*time.Millisecond, WaveSine, rate)
		return beep.Mix(newVolume(bass, 0.3), newVolume(lead, 0.5))
	case CueVictory:
		return melody([]float64{noteC4, noteE4, noteG4, noteC5, noteE5}, 120*time.Millisecond, WaveSquare, rate)
	case CueLost:
		return melody([]float64{noteE4, noteC4, noteA3, noteA3 / 2}, 300*time.Millisecond, WaveSaw, rate)
	case CueFootstep:
		return newVolume(tone(0, 40*time.Millisecond, WaveNoise, 2*time.Millisecond, 30*time.Millisecond, rate), 0.5)
	case CueCoin:
		return beep.Seq(
			tone(noteB5, 80*time.Millisecond, WaveSquare, 2*time.Millisecond, 40*time.Millisecond, rate),
			tone(noteE6, 200*time.Millisecond, WaveSquare, 2*time.Millisecond, 150*time.Millisecond, rate),
		)
	case CueCut:
		return tone(0, 120*time.Millisecond, WaveNoise, 10*time.Millisecond, 100*time.Millisecond, rate)
	case CueHit:
		return beep.Mix(
			newVolume(tone(90, 150*time.Millisecond, WaveSine, 2*time.Millisecond, 120*time.Millisecond, rate), 0.8),
			newVolume(tone(0, 60*time.Millisecond, WaveNoise, time.Millisecond, 50*time.Millisecond, rate), 0.4),
		)
	case CueBlast:
		return beep.Mix(
			tone(0, 300*time.Millisecond, WaveNoise, 5*time.Millisecond, 250*time.Millisecond, rate),
			newVolume(tone(60, 300*time.Millisecond, WaveSaw, 5*time.Millisecond, 250*time.Millisecond, rate), 0.5),
		)
	case CueBlock:
		return beep.Mix(
			newVolume(tone(1200, 90*time.Millisecond, WaveSquare, time.Millisecond, 80*time.Millisecond, rate), 0.5),
			newVolume(tone(1800, 90*time.Millisecond, WaveSine, time.Millisecond, 60*time.Millisecond, rate), 0.5),
		)
	}
	return nil
}

// Render проигрывает сигнал целиком и кодирует его в 16-битный стерео PCM (little endian).
func Render(cue Cue, rate beep.SampleRate) []byte {
	s := Synthesize(cue, rate)
	if s == nil {
		return nil
	}

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	var pcm []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, format.Width())
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			format.EncodeSigned(frame, buf[i])
			pcm = append(pcm, frame...)
		}
		if !ok || n == 0 {
			break
		}
	}
	return pcm
}
