// internal/state/start_state.go
package state

import (
	"errors"
	"fmt"

	"go-dungeon-runner/internal/action"
	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/defs"
	"go-dungeon-runner/internal/render"
	"go-dungeon-runner/internal/save"
	"go-dungeon-runner/internal/ui"
	"go-dungeon-runner/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*StartState)(nil)

// Колонки стартового экрана.
const (
	focusHeroes = iota
	focusUpgrades
)

// StartState — выбор героя и магазин улучшений. Space начинает забег.
type StartState struct {
	sm       *StateMachine
	ctx      *Context
	heroes   *ui.Menu
	upgrades *ui.Menu
	focus    int
	message  string
}

func NewStartState(sm *StateMachine, ctx *Context) *StartState {
	w, _ := render.ScreenSize()
	half := float64(w) / 2
	s := &StartState{
		sm:       sm,
		ctx:      ctx,
		heroes:   ui.NewMenu(8, 48, half-20, "HEROES"),
		upgrades: ui.NewMenu(half+4, 48, half-12, "UPGRADES"),
	}
	return s
}

func (s *StartState) Enter() {
	s.focus = focusHeroes
	s.message = ""
	hero, _ := s.ctx.Profile.Hero()
	for i, h := range defs.UnlockTable {
		if h.Hero == hero {
			s.heroes.Select(i)
		}
	}
	s.refresh()
}

func (s *StartState) Exit() {}

func price(coins int) string {
	return fmt.Sprintf("$%d", coins)
}

// refresh перестраивает строки меню по профилю.
func (s *StartState) refresh() {
	p := s.ctx.Profile
	selected, upgrades := p.Hero()

	heroes := make([]ui.MenuItem, 0, len(defs.UnlockTable))
	for _, h := range defs.UnlockTable {
		it := ui.MenuItem{Label: h.Name, Active: h.Hero == selected}
		if !p.IsHeroUnlocked(h.Hero) {
			it.Detail = price(h.Coins)
		}
		heroes = append(heroes, it)
	}
	s.heroes.SetItems(heroes)

	var items []ui.MenuItem
	if info, ok := defs.HeroInfo(selected); ok {
		for _, u := range info.Unlocks {
			it := ui.MenuItem{Label: u.Name, Active: upgrades&u.Type != 0}
			switch {
			case p.IsUnlocked(u.Type):
			case u.Required != 0 && !p.IsUnlocked(u.Required):
				it.Disabled = true
				it.Detail = "LOCKED"
			default:
				it.Detail = price(u.Coins)
			}
			items = append(items, it)
		}
	}
	s.upgrades.SetItems(items)

	s.heroes.Focused = s.focus == focusHeroes
	s.upgrades.Focused = s.focus == focusUpgrades
}

func (s *StartState) menu() *ui.Menu {
	if s.focus == focusUpgrades {
		return s.upgrades
	}
	return s.heroes
}

// Activate покупает или выбирает строку под курсором.
func (s *StartState) Activate() error {
	p := s.ctx.Profile
	var err error
	switch s.focus {
	case focusHeroes:
		h := defs.UnlockTable[s.heroes.Selected()].Hero
		if !p.IsHeroUnlocked(h) {
			err = p.BuyHero(h)
		}
		if err == nil {
			err = p.SelectHero(h)
		}
	case focusUpgrades:
		selected, _ := p.Hero()
		info, ok := defs.HeroInfo(selected)
		if !ok || len(info.Unlocks) == 0 {
			return save.ErrUnknown
		}
		u := info.Unlocks[s.upgrades.Selected()].Type
		if !p.IsUnlocked(u) {
			err = p.Buy(u)
		} else {
			err = p.Toggle(u)
		}
	}

	s.message = ""
	if err != nil {
		switch {
		case errors.Is(err, save.ErrNotEnoughCoins):
			s.message = "NOT ENOUGH COINS"
		case errors.Is(err, save.ErrLocked):
			s.message = "LOCKED"
		default:
			s.message = "UNAVAILABLE"
		}
		logger.Log.WithError(err).Debug("Shop action rejected")
	}
	s.refresh()
	return err
}

// Focus переключает колонку. Пустая колонка улучшений не получает фокус.
func (s *StartState) Focus(column int) {
	if column == focusUpgrades && len(s.upgrades.Items) == 0 {
		return
	}
	s.focus = column
	s.refresh()
}

func (s *StartState) Update(deltaTime float64) {
	in := s.ctx.Input
	switch {
	case in.JustPressed(action.Jump):
		s.sm.SetState(NewGameState(s.sm, s.ctx))
	case in.JustPressed(action.Up):
		s.menu().Move(-1)
	case in.JustPressed(action.Down):
		s.menu().Move(1)
	case in.JustPressed(action.Left):
		s.Focus(focusHeroes)
	case in.JustPressed(action.Right):
		s.Focus(focusUpgrades)
	case in.JustPressed(action.Attack):
		_ = s.Activate()
	}
}

func (s *StartState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx := float64(w) / 2

	ui.DrawOutlined(screen, "DUNGEON RUNNER", cx, 12, config.TextLightColor, config.HitColor, 1, ui.AlignCenter)
	ui.DrawText(screen, ui.CoinsLabel(s.ctx.Profile.Coins()), cx, 28, config.CoinColor, ui.AlignCenter)

	s.heroes.Draw(screen)
	s.upgrades.Draw(screen)

	if s.message != "" {
		ui.DrawText(screen, s.message, cx, float64(h)-48, config.HitColor, ui.AlignCenter)
	}
	ui.DrawText(screen, "ENTER: BUY / EQUIP", cx, float64(h)-32, config.TextLightColor, ui.AlignCenter)
	ui.DrawText(screen, "SPACE: START", cx, float64(h)-18, config.TextLightColor, ui.AlignCenter)
}
