// internal/save/profile.go
package save

import (
	"errors"
	"fmt"

	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/defs"
	"go-dungeon-runner/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotEnoughCoins = errors.New("not enough coins")
	ErrLocked         = errors.New("not unlocked")
	ErrUnknown        = errors.New("unknown hero or upgrade")
)

// Profile — запись игрока плюс правила магазина. Читается один раз,
// пишется при каждом изменении. Ошибки хранилища только логируются.
type Profile struct {
	store  Store
	record Record
}

// LoadProfile читает запись. При ошибке используется запись по умолчанию.
func LoadProfile(store Store) *Profile {
	r, err := store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoRecord) {
			logger.Log.WithError(err).Warn("Failed to load save record, using defaults")
		}
		r = DefaultRecord()
	}
	r.Coins = min(max(r.Coins, 0), config.MaxCoins)
	r.UnlockedHeroes |= defs.HeroKnight
	if r.UnlockedHeroes&r.Hero == 0 {
		r.Hero = defs.HeroKnight
	}
	return &Profile{store: store, record: r}
}

// Record возвращает копию текущей записи.
func (p *Profile) Record() Record {
	return p.record
}

func (p *Profile) persist() {
	if err := p.store.Save(p.record); err != nil {
		logger.Log.WithError(err).Warn("Failed to write save record")
	}
}

func (p *Profile) Coins() int {
	return p.record.Coins
}

// AddCoins зачисляет монеты забега, итог ограничен MaxCoins.
func (p *Profile) AddCoins(n int) {
	if n <= 0 {
		return
	}
	p.record.Coins = min(config.MaxCoins, p.record.Coins+n)
	p.persist()
}

func (p *Profile) IsHeroUnlocked(hero defs.Hero) bool {
	return p.record.UnlockedHeroes&hero == hero
}

func (p *Profile) IsUnlocked(u defs.Unlockable) bool {
	return p.record.UnlockedUpgrades&u == u
}

// Hero — выбранный герой и его улучшения.
func (p *Profile) Hero() (defs.Hero, defs.Unlockable) {
	return p.record.Hero, p.record.Upgrades
}

func (p *Profile) spend(cost int) error {
	if p.record.Coins < cost {
		return fmt.Errorf("%w: need %d, have %d", ErrNotEnoughCoins, cost, p.record.Coins)
	}
	p.record.Coins -= cost
	return nil
}

// BuyHero открывает героя за монеты.
func (p *Profile) BuyHero(hero defs.Hero) error {
	info, ok := defs.HeroInfo(hero)
	if !ok {
		return ErrUnknown
	}
	if p.IsHeroUnlocked(hero) {
		return nil
	}
	if err := p.spend(info.Coins); err != nil {
		return err
	}
	p.record.UnlockedHeroes |= hero
	logger.Log.WithFields(logrus.Fields{"hero": info.Name, "coins": p.record.Coins}).Info("Hero unlocked")
	p.persist()
	return nil
}

// SelectHero выбирает открытого героя и сбрасывает улучшения.
func (p *Profile) SelectHero(hero defs.Hero) error {
	if _, ok := defs.HeroInfo(hero); !ok {
		return ErrUnknown
	}
	if !p.IsHeroUnlocked(hero) {
		return ErrLocked
	}
	if p.record.Hero != hero {
		p.record.Hero = hero
		p.record.Upgrades = 0
		p.persist()
	}
	return nil
}

func (p *Profile) upgradeInfo(u defs.Unlockable) (defs.UnlockableInfo, bool) {
	info, ok := defs.HeroInfo(p.record.Hero)
	if !ok {
		return defs.UnlockableInfo{}, false
	}
	for _, item := range info.Unlocks {
		if item.Type == u {
			return item, true
		}
	}
	return defs.UnlockableInfo{}, false
}

// Buy покупает улучшение выбранного героя. Нужны монеты и ранее купленные Required.
func (p *Profile) Buy(u defs.Unlockable) error {
	item, ok := p.upgradeInfo(u)
	if !ok {
		return ErrUnknown
	}
	if p.IsUnlocked(u) {
		return nil
	}
	if item.Required != 0 && !p.IsUnlocked(item.Required) {
		return fmt.Errorf("%s: %w", item.Name, ErrLocked)
	}
	if err := p.spend(item.Coins); err != nil {
		return err
	}
	p.record.UnlockedUpgrades |= u
	logger.Log.WithFields(logrus.Fields{"upgrade": item.Name, "coins": p.record.Coins}).Info("Upgrade unlocked")
	p.persist()
	return nil
}

// Toggle включает купленное улучшение, снимая исключаемые им, или выключает его.
func (p *Profile) Toggle(u defs.Unlockable) error {
	item, ok := p.upgradeInfo(u)
	if !ok {
		return ErrUnknown
	}
	if !p.IsUnlocked(u) {
		return ErrLocked
	}
	if p.record.Upgrades&u != 0 {
		p.record.Upgrades &^= u
	} else {
		p.record.Upgrades = p.record.Upgrades&^item.Exclude | u
	}
	p.persist()
	return nil
}
