// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Settings — параметры, которые можно переопределить YAML-файлом при старте.
type Settings struct {
	WorldMin         []float64 `yaml:"world_min"`
	WorldMax         []float64 `yaml:"world_max"`
	BandSize         float64   `yaml:"band_size"`
	BossBandPeriod   int       `yaml:"boss_band_period"`
	BandCycle        int       `yaml:"band_cycle"`
	DecisionInterval float64   `yaml:"decision_interval"`
	WindowScale      int       `yaml:"window_scale"`
	SavePath         string    `yaml:"save_path"`
	Seed             int64     `yaml:"seed"`
	Mute             bool      `yaml:"mute"`
}

// DefaultSettings возвращает значения из констант пакета.
func DefaultSettings() Settings {
	return Settings{
		WorldMin:         []float64{WorldMin[0], WorldMin[1], WorldMin[2]},
		WorldMax:         []float64{WorldMax[0], WorldMax[1], WorldMax[2]},
		BandSize:         SpawnPoint,
		BossBandPeriod:   BigSpawnPoint,
		BandCycle:        EndPoint,
		DecisionInterval: DecisionInterval,
		WindowScale:      WindowScale,
		SavePath:         DefaultSavePath,
	}
}

// LoadSettings читает YAML поверх значений по умолчанию. Пустой путь означает "только умолчания".
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return s, nil
}

// Validate проверяет согласованность значений.
func (s Settings) Validate() error {
	if len(s.WorldMin) != 3 || len(s.WorldMax) != 3 {
		return errors.New("world bounds must have three components")
	}
	for k := 0; k < 3; k++ {
		if s.WorldMin[k] > s.WorldMax[k] {
			return fmt.Errorf("world_min[%d] is greater than world_max[%d]", k, k)
		}
	}
	if s.BandSize <= 0 {
		return errors.New("band_size must be positive")
	}
	if s.BossBandPeriod <= 0 || s.BandCycle <= 0 {
		return errors.New("boss_band_period and band_cycle must be positive")
	}
	if s.DecisionInterval <= 0 {
		return errors.New("decision_interval must be positive")
	}
	if s.WindowScale <= 0 {
		return errors.New("window_scale must be positive")
	}
	return nil
}

// Bounds возвращает коробку мира в виде векторов.
func (s Settings) Bounds() (mgl64.Vec3, mgl64.Vec3) {
	return mgl64.Vec3{s.WorldMin[0], s.WorldMin[1], s.WorldMin[2]},
		mgl64.Vec3{s.WorldMax[0], s.WorldMax[1], s.WorldMax[2]}
}
