// internal/save/record.go
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go-dungeon-runner/internal/defs"
)

// Record — сохраняемое состояние игрока.
type Record struct {
	Coins            int             `json:"coins"`
	UnlockedHeroes   defs.Hero       `json:"unlockedHeroes"`
	UnlockedUpgrades defs.Unlockable `json:"unlockedUpgrades"`
	Hero             defs.Hero       `json:"hero"`
	Upgrades         defs.Unlockable `json:"upgrades"`
}

// DefaultRecord — новый игрок: открыт только рыцарь.
func DefaultRecord() Record {
	return Record{
		UnlockedHeroes: defs.HeroKnight,
		Hero:           defs.HeroKnight,
	}
}

// Store читает и пишет запись.
type Store interface {
	Load() (Record, error)
	Save(r Record) error
}

// ErrNoRecord — сохранения еще нет.
var ErrNoRecord = errors.New("save record not found")

// FileStore хранит запись в JSON-файле.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load() (Record, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultRecord(), ErrNoRecord
	}
	if err != nil {
		return DefaultRecord(), fmt.Errorf("failed to read save file: %w", err)
	}

	r := DefaultRecord()
	if err := json.Unmarshal(data, &r); err != nil {
		return DefaultRecord(), fmt.Errorf("failed to unmarshal save record: %w", err)
	}
	return r, nil
}

// Save пишет во временный файл и переименовывает его, чтобы не оставить обрезанную запись.
func (s *FileStore) Save(r Record) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal save record: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create save directory: %w", err)
		}
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

// MemoryStore держит запись в памяти. Используется в тестах и при -save "".
type MemoryStore struct {
	mu     sync.Mutex
	record *Record
	Writes int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return DefaultRecord(), ErrNoRecord
	}
	return *s.record, nil
}

func (s *MemoryStore) Save(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = &r
	s.Writes++
	return nil
}
