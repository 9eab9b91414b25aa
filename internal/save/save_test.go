package save

import (
	"os"
	"path/filepath"
	"testing"

	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "save.json")
	store := NewFileStore(path)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoRecord)

	want := Record{Coins: 1200, UnlockedHeroes: defs.HeroKnight | defs.HeroMage, Hero: defs.HeroMage, UnlockedUpgrades: defs.UnlockPriest, Upgrades: defs.UnlockPriest}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"unlockedHeroes": 5`)
}

func TestCorruptSaveFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load()
	assert.Error(t, err)

	p := LoadProfile(NewFileStore(path))
	assert.Equal(t, DefaultRecord(), p.Record())
}

func TestLoadProfileSanitizes(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(Record{Coins: config.MaxCoins + 10, Hero: defs.HeroRogue}))

	p := LoadProfile(store)

	assert.Equal(t, config.MaxCoins, p.Coins())
	assert.True(t, p.IsHeroUnlocked(defs.HeroKnight))
	hero, _ := p.Hero()
	assert.Equal(t, defs.HeroKnight, hero, "locked hero is not selectable")
}

func TestAddCoinsPersistsAndCaps(t *testing.T) {
	store := NewMemoryStore()
	p := LoadProfile(store)

	p.AddCoins(250)
	p.AddCoins(0)
	assert.Equal(t, 250, p.Coins())
	assert.Equal(t, 1, store.Writes)

	p.AddCoins(config.MaxCoins)
	assert.Equal(t, config.MaxCoins, p.Coins())

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, config.MaxCoins, saved.Coins)
}

func TestBuyHero(t *testing.T) {
	p := LoadProfile(NewMemoryStore())
	p.AddCoins(3500)

	assert.ErrorIs(t, p.BuyHero(defs.HeroMage), ErrNotEnoughCoins)
	assert.ErrorIs(t, p.SelectHero(defs.HeroRogue), ErrLocked)

	require.NoError(t, p.BuyHero(defs.HeroRogue))
	assert.Equal(t, 500, p.Coins())
	require.NoError(t, p.BuyHero(defs.HeroRogue), "buying twice is free")
	assert.Equal(t, 500, p.Coins())

	require.NoError(t, p.SelectHero(defs.HeroRogue))
	hero, upgrades := p.Hero()
	assert.Equal(t, defs.HeroRogue, hero)
	assert.Zero(t, upgrades)
}

func TestBuyUpgradeRequiresPrerequisite(t *testing.T) {
	p := LoadProfile(NewMemoryStore())
	p.AddCoins(2000)

	assert.ErrorIs(t, p.Buy(defs.UnlockSteelShield), ErrLocked)
	assert.ErrorIs(t, p.Buy(defs.UnlockBow), ErrUnknown, "bow belongs to the rogue")

	require.NoError(t, p.Buy(defs.UnlockShield))
	require.NoError(t, p.Buy(defs.UnlockSteelShield))
	assert.Equal(t, 800, p.Coins())
	assert.True(t, p.IsUnlocked(defs.UnlockShield|defs.UnlockSteelShield))
}

func TestToggleExcludesConflictingUpgrades(t *testing.T) {
	p := LoadProfile(NewMemoryStore())
	p.AddCoins(5000)
	require.NoError(t, p.Buy(defs.UnlockShield))
	require.NoError(t, p.Buy(defs.UnlockSword))
	require.NoError(t, p.Buy(defs.UnlockSpear))

	assert.ErrorIs(t, p.Toggle(defs.UnlockArmor), ErrLocked)

	require.NoError(t, p.Toggle(defs.UnlockShield))
	require.NoError(t, p.Toggle(defs.UnlockSword))
	_, upgrades := p.Hero()
	assert.Equal(t, defs.UnlockShield|defs.UnlockSword, upgrades)

	require.NoError(t, p.Toggle(defs.UnlockSpear))
	_, upgrades = p.Hero()
	assert.Equal(t, defs.UnlockSpear, upgrades, "spear drops the sword and the shield")

	require.NoError(t, p.Toggle(defs.UnlockSpear))
	_, upgrades = p.Hero()
	assert.Zero(t, upgrades)
}
