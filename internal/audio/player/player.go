// internal/audio/player/player.go
package player

import (
	"bytes"

	"go-dungeon-runner/internal/audio"
	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/pkg/logger"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"
)

// cuePool — плееры одного сигнала, выбираются по кругу.
type cuePool struct {
	players []*ebaudio.Player
	next    int
}

// Player проигрывает сигналы через аудиоконтекст ebiten.
// Музыка зациклена, у коротких эффектов по SoundPoolSize плееров на сигнал.
type Player struct {
	ctx   *ebaudio.Context
	pcm   map[audio.Cue][]byte
	pools map[audio.Cue]*cuePool
	music *ebaudio.Player
}

// New синтезирует все сигналы заранее. Контекст ebiten создается один раз на процесс.
func New() *Player {
	p := &Player{
		ctx:   ebaudio.NewContext(int(audio.SampleRate)),
		pcm:   make(map[audio.Cue][]byte),
		pools: make(map[audio.Cue]*cuePool),
	}
	for _, cue := range audio.Cues() {
		p.pcm[cue] = audio.Render(cue, audio.SampleRate)
	}

	music := p.pcm[audio.CueGame]
	loop := ebaudio.NewInfiniteLoop(bytes.NewReader(music), int64(len(music)))
	if pl, err := p.ctx.NewPlayer(loop); err == nil {
		pl.SetVolume(config.SoundVolume)
		p.music = pl
	} else {
		logger.Log.WithError(err).Warn("Failed to create music player")
	}

	logger.Log.WithField("cues", len(p.pcm)).Info("Audio initialized")
	return p
}

func volumeOf(cue audio.Cue) float64 {
	if cue == audio.CueFootstep {
		return config.SoundVolume / 2
	}
	return config.SoundVolume
}

// Play запускает сигнал. Победа и поражение останавливают музыку.
func (p *Player) Play(cue audio.Cue) {
	switch cue {
	case audio.CueGame:
		p.Stop(audio.CueLost)
		p.Stop(audio.CueVictory)
		if p.music != nil {
			p.restart(p.music)
		}
		return
	case audio.CueVictory, audio.CueLost:
		p.Stop(audio.CueGame)
	}

	pl := p.take(cue)
	if pl == nil {
		return
	}
	pl.SetVolume(volumeOf(cue))
	p.restart(pl)
}

// Stop останавливает все плееры сигнала.
func (p *Player) Stop(cue audio.Cue) {
	if cue == audio.CueGame {
		if p.music != nil {
			p.music.Pause()
		}
		return
	}
	if cp, ok := p.pools[cue]; ok {
		for _, pl := range cp.players {
			pl.Pause()
		}
	}
}

func (p *Player) restart(pl *ebaudio.Player) {
	if err := pl.Rewind(); err != nil {
		logger.Log.WithError(err).Debug("Failed to rewind player")
	}
	pl.Play()
}

// take возвращает следующий плеер пула, пул растет до SoundPoolSize.
func (p *Player) take(cue audio.Cue) *ebaudio.Player {
	pcm := p.pcm[cue]
	if len(pcm) == 0 {
		logger.Log.WithFields(logrus.Fields{"cue": cue}).Debug("No samples for cue")
		return nil
	}
	cp, ok := p.pools[cue]
	if !ok {
		cp = &cuePool{}
		p.pools[cue] = cp
	}
	if len(cp.players) < config.SoundPoolSize {
		pl := p.ctx.NewPlayerFromBytes(pcm)
		cp.players = append(cp.players, pl)
		return pl
	}
	pl := cp.players[cp.next]
	cp.next = (cp.next + 1) % len(cp.players)
	return pl
}
