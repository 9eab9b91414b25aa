// internal/state/context.go
package state

import (
	"go-dungeon-runner/internal/audio"
	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/input"
	"go-dungeon-runner/internal/render"
	"go-dungeon-runner/internal/save"
	"go-dungeon-runner/internal/utils"
)

// Context — общие для всех экранов зависимости.
type Context struct {
	Settings  config.Settings
	Rng       *utils.PRNGService
	Sounds    audio.Sink
	Profile   *save.Profile
	Input     *input.Handler
	Atlas     *render.Atlas
	Particles *render.ParticleSystem
}

// NewContext собирает зависимости с атласом-заглушкой и системой частиц.
func NewContext(settings config.Settings, rng *utils.PRNGService, sounds audio.Sink, profile *save.Profile, in *input.Handler) *Context {
	return &Context{
		Settings:  settings,
		Rng:       rng,
		Sounds:    sounds,
		Profile:   profile,
		Input:     in,
		Atlas:     render.NewAtlas(),
		Particles: render.NewParticleSystem(rng),
	}
}
