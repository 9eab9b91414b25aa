// internal/app/game.go
package app

import (
	"image/color"
	"math"
	"sort"

	"go-dungeon-runner/internal/action"
	"go-dungeon-runner/internal/audio"
	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/defs"
	"go-dungeon-runner/internal/entity"
	"go-dungeon-runner/internal/event"
	"go-dungeon-runner/internal/save"
	"go-dungeon-runner/internal/system"
	"go-dungeon-runner/internal/utils"
	"go-dungeon-runner/pkg/logger"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

// SpriteRenderer принимает спрайты кадра. faceSign: 1 — лицом вперед, -1 — назад.
type SpriteRenderer interface {
	Submit(sprite entity.Sprite, position mgl64.Vec3, faceSign, alpha float64, tint color.RGBA)
}

// Game — игровой экран: мир, системы и исход забега.
type Game struct {
	World           *entity.World
	PhysicsSystem   *system.PhysicsSystem
	CombatSystem    *system.CombatSystem
	AISystem        *system.AISystem
	SpawnSystem     *system.SpawnSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Sounds          audio.Sink
	Profile         *save.Profile

	// Маска действий игрока, ее заполняет ввод.
	Actions action.Action

	Lost    bool
	started bool
	paused  bool

	gameTime      float64
	camera        float64
	footstepTimer float64
	bodies        []entity.Entity
	hero          *entity.Character
}

// NewGame собирает экран и связывает системы.
func NewGame(settings config.Settings, rng *utils.PRNGService, sounds audio.Sink, particles system.ParticleSink, profile *save.Profile) *Game {
	world := entity.NewWorld()
	dispatcher := event.NewDispatcher()
	min, max := settings.Bounds()

	g := &Game{
		World:           world,
		PhysicsSystem:   system.NewPhysicsSystem(min, max),
		CombatSystem:    system.NewCombatSystem(particles, sounds, dispatcher),
		AISystem:        system.NewAISystem(world, rng, settings.DecisionInterval),
		SpawnSystem:     system.NewSpawnSystem(world, rng, dispatcher, settings),
		EventDispatcher: dispatcher,
		Rng:             rng,
		Sounds:          sounds,
		Profile:         profile,
	}

	(&audio.Listener{Sink: sounds}).Subscribe(dispatcher)
	dispatcher.Subscribe(event.HeroDied, &GameEventListener{game: g})
	return g
}

// GameEventListener сохраняет монеты, когда забег закончен.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	if e.Type != event.HeroDied {
		return
	}
	coins := l.game.CombatSystem.Coins()
	l.game.Profile.AddCoins(coins)
	logger.Log.WithFields(logrus.Fields{
		"coins": coins,
		"total": l.game.Profile.Coins(),
		"band":  l.game.SpawnSystem.MaxSpawn(),
	}).Info("Run finished")
	l.game.EventDispatcher.Dispatch(event.Event{Type: event.RunFinished, Data: event.CoinsData{Delta: coins, Total: l.game.Profile.Coins()}})
}

// Start начинает новый забег выбранным героем.
func (g *Game) Start() {
	g.World.Clear()
	g.SpawnSystem.Reset()
	g.AISystem.Reset()
	g.CombatSystem.ResetCoins()
	g.Lost = false
	g.paused = false
	g.started = true
	g.gameTime = 0
	g.camera = 0
	g.footstepTimer = 0
	g.Actions = action.None

	heroType, upgrades := g.Profile.Hero()
	g.hero = defs.CreateHero(heroType, upgrades, config.Origin)
	g.World.SetHero(g.hero)

	for _, p := range defs.OpeningEnemies {
		e, err := defs.CreateEnemy(p.Enemy, mgl64.Vec3(p.Position), g.Rng, defs.WithTarget(g.hero.ID))
		if err != nil {
			logger.Log.WithError(err).Warn("Failed to place opening enemy")
			continue
		}
		g.World.AddEnemy(e)
	}

	g.Sounds.Play(audio.CueGame)
	logger.Log.WithFields(logrus.Fields{"hero": heroType, "upgrades": upgrades}).Info("Run started")
}

// Pause останавливает обновления, отрисовка продолжается.
func (g *Game) Pause() {
	if g.paused {
		return
	}
	g.paused = true
	g.Sounds.Stop(audio.CueGame)
	logger.Log.Info("Game paused")
}

func (g *Game) Resume() {
	if !g.paused {
		return
	}
	g.paused = false
	if !g.Lost {
		g.Sounds.Play(audio.CueGame)
	}
	logger.Log.Info("Game resumed")
}

func (g *Game) IsPaused() bool {
	return g.paused
}

// Destroy завершает экран. Незаконченный забег не приносит монет.
func (g *Game) Destroy() {
	g.Sounds.Stop(audio.CueGame)
	g.World.Clear()
	g.hero = nil
	g.started = false
	logger.Log.Info("Game destroyed")
}

// Hero — текущий герой, nil до Start.
func (g *Game) Hero() *entity.Character {
	return g.hero
}

// Coins — монеты забега.
func (g *Game) Coins() int {
	return g.CombatSystem.Coins()
}

// Band — номер последней открытой полосы.
func (g *Game) Band() int {
	return g.SpawnSystem.MaxSpawn()
}

// CameraX — центр камеры по X в мировых координатах.
func (g *Game) CameraX() float64 {
	return g.camera
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}

// Update выполняет один тик: чистка, снаряды, спавн, ИИ, обновление, физика.
func (g *Game) Update(deltaTime float64) {
	if g.paused || !g.started {
		return
	}
	dt := math.Min(deltaTime, config.MaxDeltaTime)
	g.gameTime += dt

	if !g.hero.IsDead {
		g.hero.Actions = g.Actions
	} else {
		g.hero.Actions = action.None
	}

	g.prune()
	g.collectProjectiles()
	g.SpawnSystem.Update(math.Max(0, g.hero.Position[0]), g.hero)
	g.AISystem.Update(dt)

	g.bodies = g.World.Bodies(g.bodies)
	for _, e := range g.bodies {
		e.Update(dt)
	}
	g.PhysicsSystem.Simulate(dt, g.bodies, g.CombatSystem.OnHit)

	g.camera = math.Max(0, g.hero.Position[0])
	g.footsteps(dt)

	if !g.Lost && g.hero.IsDead {
		g.Lost = true
		g.Sounds.Stop(audio.CueGame)
		g.EventDispatcher.Dispatch(event.Event{Type: event.HeroDied})
	}
}

func (g *Game) prune() {
	limit := g.camera - config.DespawnDistance
	g.World.PruneEnemies(func(e *entity.Enemy) bool {
		return !e.IsFullyDead() && e.Position[0] >= limit
	})
	g.World.PruneItems(func(e entity.Entity) bool {
		switch v := e.(type) {
		case *entity.Projectile:
			return v.IsLive()
		case *entity.Chest:
			return v.Position[0] >= limit
		}
		return true
	})
}

// collectProjectiles переносит выпущенные снаряды в мир.
func (g *Game) collectProjectiles() {
	if p := g.hero.TakeProjectile(); p != nil {
		g.World.AddItem(p)
	}
	for _, e := range g.World.Enemies {
		if p := e.TakeProjectile(); p != nil {
			g.World.AddItem(p)
		}
	}
}

func (g *Game) footsteps(dt float64) {
	if !g.hero.IsWalking {
		g.footstepTimer = 0
		return
	}
	g.footstepTimer -= dt
	if g.footstepTimer <= 0 {
		g.footstepTimer = config.FootstepInterval
		g.Sounds.Play(audio.CueFootstep)
	}
}

// Render отправляет спрайты мира, дальние по глубине первыми.
func (g *Game) Render(r SpriteRenderer) {
	if !g.started {
		return
	}
	g.bodies = g.World.Bodies(g.bodies)
	sort.SliceStable(g.bodies, func(i, j int) bool {
		return g.bodies[i].Base().Position[2] < g.bodies[j].Base().Position[2]
	})

	for _, e := range g.bodies {
		switch v := e.(type) {
		case *entity.Character:
			submitCharacter(r, v)
		case *entity.Enemy:
			submitCharacter(r, &v.Character)
		case *entity.Projectile:
			r.Submit(v.Sprite, v.Position, faceSign(v.FaceForward), 1, config.White)
		case *entity.Chest:
			sprite := defs.SpriteChest
			if v.IsOpen {
				sprite = defs.SpriteChestOpen
			}
			r.Submit(sprite, v.Position, 1, 1, config.White)
		}
	}
}

func faceSign(forward bool) float64 {
	if forward {
		return 1
	}
	return -1
}

// submitCharacter рисует тело, броню, щит и оружие персонажа.
func submitCharacter(r SpriteRenderer, c *entity.Character) {
	tint := config.White
	switch {
	case c.IsFrozen > 0:
		tint = config.IceHitColor
	case c.IsHit > 0:
		tint = config.HitColor
	}
	sign := faceSign(c.FaceForward)
	alpha := c.Alpha()

	r.Submit(c.Sprite, c.Position, sign, alpha, tint)
	if c.Armor != nil && c.Armor.Sprite != "" {
		r.Submit(c.Armor.Sprite, c.Position, sign, alpha, tint)
	}
	if c.Shield != nil && c.Shield.Sprite != "" {
		shieldTint := tint
		if c.ShieldBroken > 0 {
			shieldTint = config.BlockColor
		}
		r.Submit(c.Shield.Sprite, c.Position, sign, alpha, shieldTint)
	}
	if c.Weapon != nil && c.Weapon.Sprite != "" {
		r.Submit(c.Weapon.Sprite, c.Position, sign, alpha, tint)
	}
}
