// internal/entity/world.go
package entity

// World хранит сущности экрана: героя, врагов и предметы (снаряды, сундуки).
// Порядок списков задает порядок обхода в физике. Ссылки между сущностями — ID,
// поиск идет через индекс, удаленная сущность просто не находится.
type World struct {
	NextID  ID
	Hero    *Character
	Enemies []*Enemy
	Items   []Entity

	index map[ID]Entity
}

func NewWorld() *World {
	return &World{
		NextID: 1,
		index:  make(map[ID]Entity),
	}
}

// NewEntity выдает следующий ID.
func (w *World) NewEntity() ID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) register(e Entity) ID {
	b := e.Base()
	if b.ID == 0 {
		b.ID = w.NewEntity()
	}
	w.index[b.ID] = e
	return b.ID
}

// SetHero заменяет героя.
func (w *World) SetHero(c *Character) ID {
	if w.Hero != nil {
		delete(w.index, w.Hero.ID)
	}
	w.Hero = c
	return w.register(c)
}

// AddEnemy добавляет врага в конец списка.
func (w *World) AddEnemy(e *Enemy) ID {
	w.Enemies = append(w.Enemies, e)
	return w.register(e)
}

// AddItem добавляет снаряд или сундук.
func (w *World) AddItem(e Entity) ID {
	w.Items = append(w.Items, e)
	return w.register(e)
}

// Lookup разрешает слабую ссылку.
func (w *World) Lookup(id ID) (Entity, bool) {
	if id == 0 {
		return nil, false
	}
	e, ok := w.index[id]
	return e, ok
}

// Character разрешает ссылку на героя или врага. Возвращает nil для висячей ссылки.
func (w *World) Character(id ID) *Character {
	e, ok := w.Lookup(id)
	if !ok {
		return nil
	}
	switch v := e.(type) {
	case *Character:
		return v
	case *Enemy:
		return &v.Character
	}
	return nil
}

// PruneEnemies удаляет врагов, для которых keep вернул false. Порядок не сохраняется.
func (w *World) PruneEnemies(keep func(*Enemy) bool) int {
	removed := 0
	for i := 0; i < len(w.Enemies); {
		e := w.Enemies[i]
		if keep(e) {
			i++
			continue
		}
		delete(w.index, e.ID)
		last := len(w.Enemies) - 1
		w.Enemies[i] = w.Enemies[last]
		w.Enemies[last] = nil
		w.Enemies = w.Enemies[:last]
		removed++
	}
	return removed
}

// PruneItems удаляет предметы, для которых keep вернул false. Порядок не сохраняется.
func (w *World) PruneItems(keep func(Entity) bool) int {
	removed := 0
	for i := 0; i < len(w.Items); {
		e := w.Items[i]
		if keep(e) {
			i++
			continue
		}
		delete(w.index, e.Base().ID)
		last := len(w.Items) - 1
		w.Items[i] = w.Items[last]
		w.Items[last] = nil
		w.Items = w.Items[:last]
		removed++
	}
	return removed
}

// Bodies собирает все сущности в порядке: герой, враги, предметы.
func (w *World) Bodies(dst []Entity) []Entity {
	dst = dst[:0]
	if w.Hero != nil {
		dst = append(dst, w.Hero)
	}
	for _, e := range w.Enemies {
		dst = append(dst, e)
	}
	return append(dst, w.Items...)
}

// Clear удаляет все сущности, счетчик ID не сбрасывается.
func (w *World) Clear() {
	w.Hero = nil
	w.Enemies = w.Enemies[:0]
	w.Items = w.Items[:0]
	w.index = make(map[ID]Entity)
}
