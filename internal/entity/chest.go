// internal/entity/chest.go
package entity

import "go-dungeon-runner/internal/config"

// Chest — сундук с монетами. Открывается один раз.
type Chest struct {
	Body

	IsOpen bool
	Coins  int
}

// NewChest создает закрытый сундук.
func NewChest(coins int) *Chest {
	return &Chest{
		Body: Body{
			Position:    config.Origin,
			FaceForward: true,
			Hitbox:      config.HitBoxChar,
			Friction:    config.CharacterFriction,
		},
		Coins: coins,
	}
}

func (c *Chest) Kind() Kind { return KindChest }

func (c *Chest) Update(dt float64) {
	c.Sensors = c.Sensors[:0]
}

// Open открывает сундук и возвращает монеты. Повторное открытие ничего не дает.
func (c *Chest) Open() (int, bool) {
	if c.IsOpen {
		return 0, false
	}
	c.IsOpen = true
	coins := c.Coins
	c.Coins = 0
	return coins, true
}
