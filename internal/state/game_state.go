// internal/state/game_state.go
package state

import (
	"math"

	"go-dungeon-runner/internal/action"
	"go-dungeon-runner/internal/app"
	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/render"
	"go-dungeon-runner/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*GameState)(nil)

// GameState — экран забега. Забег начинается при создании; пауза
// открывается поверх него и не вызывает Exit.
type GameState struct {
	sm         *StateMachine
	ctx        *Context
	game       *app.Game
	batch      *render.SpriteBatch
	background *render.Background
	hud        *ui.HUD
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	w, _ := render.ScreenSize()
	g := &GameState{
		sm:         sm,
		ctx:        ctx,
		game:       app.NewGame(ctx.Settings, ctx.Rng, ctx.Sounds, ctx.Particles, ctx.Profile),
		batch:      render.NewSpriteBatch(ctx.Atlas),
		background: render.NewBackground(ctx.Rng.Float64()),
		hud:        ui.NewHUD(w, ctx.Settings.BossBandPeriod),
	}
	ctx.Particles.Clear()
	g.game.Start()
	return g
}

// Game — ядро забега.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Pause() {
	g.game.Pause()
}

func (g *GameState) Resume() {
	g.game.Resume()
}

func (g *GameState) Update(deltaTime float64) {
	in := g.ctx.Input
	if g.game.Lost {
		if in.JustPressed(action.Attack) {
			g.leave()
			return
		}
	} else if in.PausePressed() {
		g.sm.Push(NewPauseState(g.sm, g, g.ctx))
		return
	}

	g.game.Actions = in.Actions()
	g.game.Update(deltaTime)
	g.ctx.Particles.Update(math.Min(deltaTime, config.MaxDeltaTime))
}

// leave закрывает забег и возвращает на стартовый экран.
func (g *GameState) leave() {
	g.game.Destroy()
	g.ctx.Particles.Clear()
	g.sm.SetState(NewStartState(g.sm, g.ctx))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	view := render.NewView(g.game.CameraX())

	g.background.Submit(g.batch, g.game.CameraX())
	g.game.Render(g.batch)
	g.batch.Flush(screen, view)
	g.ctx.Particles.Draw(screen, view)

	state := ui.HUDState{Coins: g.game.Coins(), Band: g.game.Band()}
	if hero := g.game.Hero(); hero != nil {
		state.HP, state.MaxHP = hero.HitPoint, hero.MaxHitPoint
	}
	g.hud.Draw(screen, state)

	if g.game.Lost {
		ui.Banner(screen, "YOU DIED", "ENTER TO CONTINUE")
	}
}
