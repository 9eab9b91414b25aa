// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"go-dungeon-runner/pkg/logger"
)

//go:embed data/enemies.json
var embeddedEnemies []byte

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

func init() {
	if err := LoadEnemyDefinitions(embeddedEnemies); err != nil {
		panic(err)
	}
}

// LoadEnemyDefinitions разбирает JSON-таблицу и заменяет EnemyLibrary.
func LoadEnemyDefinitions(data []byte) error {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		if err := def.validate(); err != nil {
			return fmt.Errorf("invalid enemy definitions: %w", err)
		}
		library[def.ID] = def
	}

	EnemyLibrary = library
	logger.Log.Debugf("Loaded %d enemy definitions", len(EnemyLibrary))
	return nil
}

// LoadEnemyDefinitionsFile reads an enemy table from disk. Используется для балансировки без пересборки.
func LoadEnemyDefinitionsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	return LoadEnemyDefinitions(data)
}
