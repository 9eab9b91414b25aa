// internal/audio/cue.go
package audio

// Cue — звуковой сигнал игры.
type Cue int

const (
	CueGame Cue = iota // фоновая музыка, играет по кругу
	CueVictory
	CueLost
	CueFootstep
	CueCoin
	CueCut
	CueHit
	CueBlast
	CueBlock
	cueCount
)

var cueNames = [cueCount]string{"game", "victory", "lost", "footstep", "coin", "cut", "hit", "blast", "block"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Cues возвращает все сигналы по порядку.
func Cues() []Cue {
	cues := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		cues = append(cues, c)
	}
	return cues
}

// Sink проигрывает сигналы по принципу "запустил и забыл".
type Sink interface {
	Play(cue Cue)
	Stop(cue Cue)
}

// NullSink ничего не проигрывает. Используется с флагом -mute и в тестах.
type NullSink struct{}

func (NullSink) Play(Cue) {}
func (NullSink) Stop(Cue) {}
