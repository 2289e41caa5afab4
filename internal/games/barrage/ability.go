package barrage

import (
	"math"

	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
)

// Score is the session's score, also spent as currency on abilities.
// It never goes negative through spending.
type Score struct {
	value int
}

// NewScore creates a score with a starting balance.
func NewScore(start int) *Score {
	return &Score{value: start}
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}

// Add increases the score.
func (s *Score) Add(points int) {
	s.value += points
}

// Spend deducts cost if the balance covers it.
func (s *Score) Spend(cost int) bool {
	if cost > s.value {
		return false
	}
	s.value -= cost
	return true
}

// AbilityKind identifies a special ability.
type AbilityKind int

const (
	AbilityDisable AbilityKind = iota // Area-Disable: grounds enemies, defuses projectiles
	AbilityShield                     // Directional shield beside the avatar
	AbilityGravity                    // Full-field clear while live
)

// String returns the ability name.
func (k AbilityKind) String() string {
	switch k {
	case AbilityDisable:
		return "disable"
	case AbilityShield:
		return "shield"
	case AbilityGravity:
		return "gravity"
	default:
		return "unknown"
	}
}

// Exclusive reports whether at most one effect of this kind may be live.
func (k AbilityKind) Exclusive() bool {
	return k != AbilityGravity
}

// settings returns the cost and lifetime for the ability.
func (k AbilityKind) settings(cfg config.AbilitiesConfig) config.AbilityConfig {
	switch k {
	case AbilityDisable:
		return cfg.Disable
	case AbilityShield:
		return cfg.Shield
	default:
		return cfg.Gravity
	}
}

// Effect is a live ability. Rect is only meaningful for shields; the
// other effects cover the whole field.
type Effect struct {
	Kind AbilityKind
	Rect core.Rect
	Life int
}

// Advance counts the effect down.
func (e *Effect) Advance() {
	e.Life--
}

// Alive reports whether the effect is still live.
func (e *Effect) Alive() bool {
	return e.Life > 0
}

// Activate spends score on an ability and spawns its effect. It returns
// false, changing nothing, when the score is short or an exclusive effect
// of the same kind is still live.
func Activate(kind AbilityKind, w *World, score *Score, cfg config.AbilitiesConfig) bool {
	set := kind.settings(cfg)
	if kind.Exclusive() && w.HasEffect(kind) {
		return false
	}
	if !score.Spend(set.Cost) {
		return false
	}

	effect := &Effect{Kind: kind, Life: set.Lifetime}
	switch kind {
	case AbilityDisable:
		for _, e := range w.Enemies {
			e.Disable()
		}
		for _, p := range w.Projectiles {
			p.Neutralize()
		}
	case AbilityShield:
		effect.Rect = ShieldRect(w.Avatar, cfg.ShieldThickness)
	}
	w.Effects = append(w.Effects, effect)
	return true
}

// ShieldRect places a shield of thickness x 2*avatar height across the
// avatar's facing, centered max(W, H) ahead of the avatar. Diagonal
// shields use the bounding box of the rotated bar.
func ShieldRect(a *Avatar, thickness int) core.Rect {
	w := float64(thickness)
	h := float64(2 * a.Rect.H)

	theta := math.Atan2(float64(-a.Facing.Y), float64(a.Facing.X))
	cos, sin := math.Abs(math.Cos(theta)), math.Abs(math.Sin(theta))
	bw := int(math.Round(w*cos + h*sin))
	bh := int(math.Round(w*sin + h*cos))

	offset := float64(max(a.Rect.W, a.Rect.H))
	cx, cy := a.Rect.CenterF()
	cx += float64(a.Facing.X) * offset
	cy += float64(a.Facing.Y) * offset
	return core.RectAround(cx, cy, bw, bh)
}
