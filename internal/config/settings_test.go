package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsEmptyPathUsesDefaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)

	min, max := s.Bounds()
	assert.Equal(t, WorldMin, min)
	assert.Equal(t, WorldMax, max)
}

func TestLoadSettingsOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte("band_size: 16\nseed: 42\nworld_min: [-10, 0, -5]\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 16.0, s.BandSize)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, BigSpawnPoint, s.BossBandPeriod)

	min, _ := s.Bounds()
	assert.Equal(t, mgl64.Vec3{-10, 0, -5}, min)
}

func TestLoadSettingsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSettings(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("band_size: [oops"), 0o644))
	_, err = LoadSettings(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("band_size: -1\n"), 0o644))
	_, err = LoadSettings(invalid)
	assert.ErrorContains(t, err, "band_size")
}
