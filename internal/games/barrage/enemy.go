package barrage

import (
	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
)

// Kind tags the two enemy variants.
type Kind int

const (
	KindGrunt Kind = iota // Descends, stops and fires on its own timer
	KindBoss              // Sweeps sideways; fired by the boss schedule
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindGrunt:
		return "grunt"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// EnemyState is a grunt's behavior state. A boss is always StateRoaming.
type EnemyState int

const (
	StateMoving  EnemyState = iota // Descending to its bound line
	StateStop                      // Waiting for its shot timer
	StateShoot                     // Just fired; arms the jitter
	StateOffset                    // Jittering after a shot
	StateRoaming                   // Boss lateral sweep
)

// String returns the state name.
func (s EnemyState) String() string {
	switch s {
	case StateMoving:
		return "moving"
	case StateStop:
		return "stop"
	case StateShoot:
		return "shoot"
	case StateOffset:
		return "offset"
	case StateRoaming:
		return "roaming"
	default:
		return "unknown"
	}
}

// Enemy is a grunt or the boss.
type Enemy struct {
	Kind  Kind
	Rect  core.Rect
	VX    int
	VY    int
	State EnemyState
	Alive bool

	HP    int
	MaxHP int

	// Grunt only
	Bound    int  // Center Y at which descent stops
	Interval int  // Frames between shots
	Disabled bool // Never fires again

	JitterX      int
	JitterY      int
	JitterFrames int
}

// NewGrunt spawns an ordinary enemy with hp hit points at the top edge.
func NewGrunt(cfg config.BarrageConfig, hp int, rng *SimpleRNG) *Enemy {
	ec := cfg.Enemy
	cx := rng.Range(0, cfg.Field.Width)
	return &Enemy{
		Kind:     KindGrunt,
		Rect:     core.RectAround(float64(cx), 0, ec.Width, ec.Height),
		VY:       ec.DescentSpeed,
		State:    StateMoving,
		Alive:    true,
		HP:       hp,
		MaxHP:    hp,
		Bound:    rng.Range(ec.BoundMin, cfg.EnemyBoundMax()),
		Interval: rng.Range(ec.IntervalMin, ec.IntervalMax),
	}
}

// NewBoss spawns the boss with hp hit points, centered horizontally.
func NewBoss(cfg config.BarrageConfig, hp int) *Enemy {
	bc := cfg.Boss
	return &Enemy{
		Kind:  KindBoss,
		Rect:  core.RectAround(float64(cfg.Field.Width/2), float64(bc.StartY), bc.Width, bc.Height),
		VX:    bc.Speed,
		State: StateRoaming,
		Alive: true,
		HP:    hp,
		MaxHP: hp,
	}
}

// Update advances the enemy by one frame.
func (e *Enemy) Update(cfg config.EnemyConfig, fieldW int, rng *SimpleRNG) {
	if e.Kind == KindBoss {
		e.Rect.X += e.VX
		if e.Rect.Right() >= fieldW || e.Rect.X <= 0 {
			e.VX = -e.VX
		}
		return
	}

	switch e.State {
	case StateMoving:
		e.Rect = e.Rect.Translate(e.VX, e.VY)
		if _, cy := e.Rect.Center(); cy >= e.Bound {
			e.VY = 0
			e.State = StateStop
		}
	case StateShoot:
		e.JitterFrames = cfg.JitterFrames
		e.JitterX = rng.Range(-cfg.JitterMax, cfg.JitterMax)
		e.JitterY = rng.Range(-cfg.JitterMax, cfg.JitterMax)
		e.State = StateOffset
	case StateOffset:
		if e.JitterFrames > 0 {
			e.Rect = e.Rect.Translate(e.JitterX, e.JitterY)
			e.JitterFrames--
		} else {
			e.State = StateStop
		}
	}
}

// CanFire reports whether a grunt's shot timer is due this frame.
func (e *Enemy) CanFire(tick int) bool {
	return e.Kind == KindGrunt &&
		e.Alive &&
		e.State == StateStop &&
		!e.Disabled &&
		e.Interval > 0 &&
		tick%e.Interval == 0
}

// Fired records that the grunt fired this frame.
func (e *Enemy) Fired() {
	e.State = StateShoot
}

// Disable stops the enemy from ever firing again.
func (e *Enemy) Disable() {
	e.Disabled = true
}

// Damage subtracts hit points and reports whether the enemy is destroyed.
func (e *Enemy) Damage(points int) bool {
	e.HP -= points
	return e.HP <= 0
}

// HealthRatio returns the remaining hit points as a fraction in [0, 1].
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHP <= 0 || e.HP <= 0 {
		return 0
	}
	return float64(e.HP) / float64(e.MaxHP)
}
