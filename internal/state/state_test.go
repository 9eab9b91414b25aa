package state

import (
	"testing"

	"go-dungeon-runner/internal/action"
	"go-dungeon-runner/internal/audio"
	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/defs"
	"go-dungeon-runner/internal/entity"
	"go-dungeon-runner/internal/input"
	"go-dungeon-runner/internal/save"
	"go-dungeon-runner/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

type recorderState struct {
	name string
	log  *[]string
}

func (r *recorderState) Enter()                    { *r.log = append(*r.log, "enter "+r.name) }
func (r *recorderState) Exit()                     { *r.log = append(*r.log, "exit "+r.name) }
func (r *recorderState) Update(float64)            {}
func (r *recorderState) Draw(screen *ebiten.Image) {}

func newTestContext(t *testing.T) (*Context, *save.MemoryStore) {
	t.Helper()
	store := save.NewMemoryStore()
	ctx := NewContext(config.DefaultSettings(), utils.NewPRNGService(7), audio.NullSink{}, save.LoadProfile(store), input.NewHandler())
	return ctx, store
}

// press подает кадр с нажатием и обновляет машину.
func press(sm *StateMachine, in *input.Handler, a action.Action) {
	in.Feed(action.None, false)
	in.Feed(a, false)
	sm.Update(frame)
}

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	a := &recorderState{name: "a", log: &log}
	b := &recorderState{name: "b", log: &log}

	sm.SetState(a)
	sm.SetState(b)
	sm.SetState(nil)

	assert.Equal(t, []string{"enter a", "exit a", "enter b", "exit b"}, log)
	assert.Nil(t, sm.Current())
	sm.Update(frame)
}

func TestStateMachineOverlay(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	base := &recorderState{name: "base", log: &log}
	overlay := &recorderState{name: "overlay", log: &log}

	sm.SetState(base)
	sm.Push(overlay)
	assert.Same(t, overlay, sm.Current())
	assert.Equal(t, 2, sm.Depth())

	sm.Pop()
	sm.Pop()
	assert.Same(t, base, sm.Current(), "the last screen stays")

	sm.Push(overlay)
	sm.SetState(nil)
	assert.Equal(t, []string{
		"enter base", "enter overlay", "exit overlay",
		"enter overlay", "exit overlay", "exit base",
	}, log)
	assert.Zero(t, sm.Depth())
}

func TestStartScreenBuysAndSelectsHero(t *testing.T) {
	ctx, _ := newTestContext(t)
	sm := NewStateMachine()
	start := NewStartState(sm, ctx)
	sm.SetState(start)

	press(sm, ctx.Input, action.Down)
	press(sm, ctx.Input, action.Attack)
	assert.Equal(t, "NOT ENOUGH COINS", start.message)
	assert.False(t, ctx.Profile.IsHeroUnlocked(defs.HeroRogue))

	ctx.Profile.AddCoins(3000)
	press(sm, ctx.Input, action.Attack)
	assert.Empty(t, start.message)
	hero, _ := ctx.Profile.Hero()
	assert.Equal(t, defs.HeroRogue, hero)
	assert.Zero(t, ctx.Profile.Coins())
	assert.True(t, start.heroes.Items[1].Active)
	assert.Len(t, start.upgrades.Items, 2)

	press(sm, ctx.Input, action.Jump)
	gs, ok := sm.Current().(*GameState)
	require.True(t, ok)
	assert.Same(t, defs.WeaponKnife, gs.Game().Hero().Weapon)
}

func TestStartScreenShop(t *testing.T) {
	ctx, store := newTestContext(t)
	sm := NewStateMachine()
	start := NewStartState(sm, ctx)
	sm.SetState(start)
	ctx.Profile.AddCoins(300)

	press(sm, ctx.Input, action.Right)
	require.Equal(t, focusUpgrades, start.focus)
	assert.Equal(t, "$300", start.upgrades.Items[0].Detail)
	assert.True(t, start.upgrades.Items[2].Disabled, "steel shield needs a shield first")

	press(sm, ctx.Input, action.Attack)
	assert.True(t, ctx.Profile.IsUnlocked(defs.UnlockShield))
	_, upgrades := ctx.Profile.Hero()
	assert.Zero(t, upgrades&defs.UnlockShield, "buying does not equip")

	press(sm, ctx.Input, action.Attack)
	_, upgrades = ctx.Profile.Hero()
	assert.NotZero(t, upgrades&defs.UnlockShield)
	assert.True(t, start.upgrades.Items[0].Active)
	assert.Zero(t, ctx.Profile.Coins())
	assert.Positive(t, store.Writes)

	press(sm, ctx.Input, action.Down)
	press(sm, ctx.Input, action.Attack)
	assert.Equal(t, "NOT ENOUGH COINS", start.message)

	press(sm, ctx.Input, action.Left)
	assert.Equal(t, focusHeroes, start.focus)
	assert.True(t, start.heroes.Focused)
	assert.False(t, start.upgrades.Focused)
}

func TestPauseStopsAndResumesGame(t *testing.T) {
	ctx, _ := newTestContext(t)
	sm := NewStateMachine()
	gs := NewGameState(sm, ctx)
	sm.SetState(gs)

	ctx.Input.Feed(action.None, true)
	sm.Update(frame)
	_, paused := sm.Current().(*PauseState)
	require.True(t, paused)
	assert.True(t, gs.Game().IsPaused())
	assert.Equal(t, 2, sm.Depth())

	ctx.Input.Feed(action.Right, false)
	sm.Update(frame)
	assert.IsType(t, &PauseState{}, sm.Current())
	assert.Zero(t, gs.Game().GameTime())

	ctx.Input.Feed(action.None, true)
	sm.Update(frame)
	assert.Same(t, gs, sm.Current())
	assert.Equal(t, 1, sm.Depth())
	assert.False(t, gs.Game().IsPaused())

	ctx.Input.Feed(action.None, false)
	sm.Update(frame)
	assert.Greater(t, gs.Game().GameTime(), 0.0)
}

func TestDeathReturnsToStartOnAttack(t *testing.T) {
	ctx, _ := newTestContext(t)
	sm := NewStateMachine()
	gs := NewGameState(sm, ctx)
	sm.SetState(gs)

	gs.Game().Hero().Damage(1000, true, entity.EffectNone)
	ctx.Input.Feed(action.None, false)
	sm.Update(frame)
	require.True(t, gs.Game().Lost)

	ctx.Input.Feed(action.None, true)
	sm.Update(frame)
	assert.Same(t, gs, sm.Current(), "a lost run cannot be paused")

	press(sm, ctx.Input, action.Attack)
	assert.IsType(t, &StartState{}, sm.Current())
	assert.Nil(t, gs.Game().Hero())
	assert.Zero(t, ctx.Particles.Len())
}
