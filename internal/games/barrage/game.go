// Package barrage implements the shooter simulation: avatar, beams,
// enemy and boss behavior, attack volleys, abilities and the per-frame
// collision pipeline. It has no terminal dependencies; the platform feeds
// it input frames and draws it through core.Screen.
package barrage

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
)

// ID is the game identifier used for score storage.
const ID = "barrage"

var _ core.Game = (*Game)(nil)

// Game is one shooter session. Step is single-threaded; a Game must not
// be shared between goroutines.
type Game struct {
	cfg      config.BarrageConfig
	runtime  core.RuntimeConfig
	levels   *config.LevelScaler
	resolver Resolver
	rng      *SimpleRNG
	logger   *log.Logger

	world    *World
	score    *Score
	schedule *BossSchedule

	runID      string
	tick       int
	level      int
	bossActive bool
	outcome    core.Outcome
	paused     bool
	lastReport Report
}

// New creates a game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultBarrageConfig())
}

// NewWithConfig creates a game with the given configuration.
func NewWithConfig(cfg config.BarrageConfig) *Game {
	return &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
}

// SetLogger routes the game's debug events to logger.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.logger = logger
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Barrage"
}

// RunID identifies the current run; it changes on every Reset.
func (g *Game) RunID() string {
	return g.runID
}

// Reset starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.levels = config.NewLevelScaler(g.cfg)
	g.resolver = NewResolver(g.cfg)
	g.rng = NewSimpleRNG(runtime.Seed)

	g.world = NewWorld(g.cfg)
	g.score = NewScore(g.cfg.Score.Start)
	g.schedule = NewBossSchedule(g.cfg.Boss.CycleFrames, g.cfg.Boss.ActiveFrames)

	g.runID = uuid.NewString()
	g.tick = 0
	g.level = 1
	g.bossActive = false
	g.outcome = core.OutcomeRunning
	g.paused = false
	g.lastReport = Report{}

	g.logger.Debug("run started", "run", g.runID, "seed", runtime.Seed)
}

// Step advances the session by one frame: input, spawning and firing
// decisions, collision resolution, then every entity's advance.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.outcome != core.OutcomeRunning {
		if g.outcome == core.OutcomeDestroyed && in.WasPressed(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.WasPressed(core.ActionQuit) {
		g.finish(core.OutcomeQuit)
		return core.StepResult{State: g.State()}
	}

	if in.WasPressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	g.spawn()
	g.fire()

	g.lastReport = g.resolver.Resolve(g.world, g.score)
	if g.lastReport.BossDestroyed {
		g.logger.Debug("boss destroyed", "tick", g.tick, "score", g.score.Value())
	}
	if g.lastReport.AvatarHit {
		g.finish(core.OutcomeDestroyed)
		return core.StepResult{State: g.State()}
	}

	g.advance(in)
	g.tick++

	if g.bossActive && g.world.Boss() == nil {
		g.bossActive = false
	}

	return core.StepResult{State: g.State()}
}

// handleInput fires beams while fire is held and triggers abilities.
func (g *Game) handleInput(in core.InputFrame) {
	if in.IsHeld(core.ActionFire) && g.tick%g.cfg.Avatar.FireInterval == 0 {
		g.world.Beams = append(g.world.Beams, g.world.Avatar.BeamVolley(g.cfg.Beam)...)
	}

	abilities := []struct {
		action core.Action
		kind   AbilityKind
	}{
		{core.ActionDisable, AbilityDisable},
		{core.ActionGravity, AbilityGravity},
		{core.ActionShield, AbilityShield},
	}
	for _, a := range abilities {
		if !in.WasPressed(a.action) {
			continue
		}
		if Activate(a.kind, g.world, g.score, g.cfg.Abilities) {
			g.logger.Debug("ability activated", "ability", a.kind, "score", g.score.Value())
		} else {
			g.logger.Debug("ability rejected", "ability", a.kind, "score", g.score.Value())
		}
	}
}

// spawn adds a grunt or the boss on the spawn timer while no boss is live.
func (g *Game) spawn() {
	if g.bossActive || g.tick%g.cfg.Enemy.SpawnInterval != 0 {
		return
	}

	level := g.levels.Level(g.tick)
	if level != g.level {
		g.logger.Debug("level up", "level", level, "tick", g.tick)
		g.level = level
	}

	if g.levels.IsBossLevel(level) {
		for _, e := range g.world.Enemies {
			e.Alive = false
		}
		g.world.Enemies = g.world.Enemies[:0]
		g.world.Enemies = append(g.world.Enemies, NewBoss(g.cfg, g.levels.BossHP(level)))
		g.schedule.Reset()
		g.bossActive = true
		g.logger.Debug("boss spawned", "level", level, "tick", g.tick)
		return
	}
	g.world.Enemies = append(g.world.Enemies, NewGrunt(g.cfg, g.levels.EnemyHP(level), g.rng))
}

// fire lets due grunts and the boss schedule emit volleys.
func (g *Game) fire() {
	target := g.world.Avatar.Rect
	for _, e := range g.world.Enemies {
		if !e.Alive {
			continue
		}
		switch e.Kind {
		case KindGrunt:
			if !e.CanFire(g.tick) {
				continue
			}
			pick := EnemyPatterns.Roll(g.rng)
			g.world.Projectiles = append(g.world.Projectiles, Volley(pick.Spec, e.Rect, target)...)
			e.Fired()
		case KindBoss:
			for _, spec := range g.schedule.Update(g.tick, g.rng) {
				g.world.Projectiles = append(g.world.Projectiles, Volley(spec, e.Rect, target)...)
			}
		}
	}
}

// advance moves every entity one frame and drops the ones that expired.
func (g *Game) advance(in core.InputFrame) {
	w := g.world

	dx, dy := 0, 0
	if in.IsHeld(core.ActionLeft) {
		dx--
	}
	if in.IsHeld(core.ActionRight) {
		dx++
	}
	if in.IsHeld(core.ActionUp) {
		dy--
	}
	if in.IsHeld(core.ActionDown) {
		dy++
	}
	w.Avatar.Move(dx, dy, w.Width, w.Height)
	w.Avatar.Tick()

	for _, b := range w.Beams {
		b.Advance(w.Width, w.Height)
	}
	for _, e := range w.Enemies {
		e.Update(g.cfg.Enemy, w.Width, g.rng)
	}
	for _, p := range w.Projectiles {
		p.Advance(w.Width, w.Height)
	}
	for _, eff := range w.Effects {
		eff.Advance()
	}
	for _, ex := range w.Explosions {
		ex.Advance()
	}

	w.Compact()
}

// finish records the terminal outcome once.
func (g *Game) finish(outcome core.Outcome) {
	g.outcome = outcome
	g.logger.Debug("run ended",
		"run", g.runID,
		"outcome", outcome,
		"score", g.score.Value(),
		"level", g.level,
		"tick", g.tick,
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.score == nil {
		return core.GameState{Level: 1}
	}
	return core.GameState{
		Score:    g.score.Value(),
		Level:    g.level,
		Tick:     g.tick,
		Outcome:  g.outcome,
		GameOver: g.outcome == core.OutcomeDestroyed,
		Paused:   g.paused,
	}
}

// World exposes the entity collections, mainly for tests and renderers.
func (g *Game) World() *World {
	return g.world
}

// Score exposes the session score.
func (g *Game) Score() *Score {
	return g.score
}

// LastReport returns what the most recent collision pass did.
func (g *Game) LastReport() Report {
	return g.lastReport
}
