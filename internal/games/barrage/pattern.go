package barrage

import (
	"math"

	"github.com/vovakirdan/tui-barrage/internal/core"
)

// AimMode selects how a volley's base angle is chosen.
type AimMode int

const (
	AimFixed   AimMode = iota // Straight down
	AimSeeking                // At the target's position when fired
)

// String returns the aim mode name.
func (m AimMode) String() string {
	switch m {
	case AimFixed:
		return "fixed"
	case AimSeeking:
		return "seeking"
	default:
		return "unknown"
	}
}

// FixedAngle is straight down. Angles are degrees counter-clockwise from
// east, with screen Y growing downward.
const FixedAngle = 270.0

// VolleySpec describes one volley: how many projectiles, how big, how
// fast and over how wide a fan.
type VolleySpec struct {
	Aim    AimMode
	Radius int
	Speed  float64
	Count  int
	Spread int // Degrees
}

// Fixed returns a straight-down volley spec.
func Fixed(radius int, speed float64, count, spread int) VolleySpec {
	return VolleySpec{Aim: AimFixed, Radius: radius, Speed: speed, Count: count, Spread: spread}
}

// Seeking returns a target-seeking volley spec.
func Seeking(radius int, speed float64, count, spread int) VolleySpec {
	return VolleySpec{Aim: AimSeeking, Radius: radius, Speed: speed, Count: count, Spread: spread}
}

// BaseAngle returns the volley's center angle in degrees. Seeking aim
// points from the origin center to the target center.
func BaseAngle(aim AimMode, origin, target core.Rect) float64 {
	if aim != AimSeeking {
		return FixedAngle
	}
	ox, oy := origin.CenterF()
	tx, ty := target.CenterF()
	return math.Atan2(oy-ty, tx-ox) * 180 / math.Pi
}

// VolleyAngles spreads count angles across spread degrees around base.
// The first is offset by exactly -spread/2 and each next one steps by the
// integer quotient spread/(count-1), so uneven spreads fall short of the
// far edge instead of being corrected.
func VolleyAngles(base float64, count, spread int) []float64 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []float64{base}
	}
	start := -float64(spread) / 2
	step := spread / (count - 1)
	angles := make([]float64, count)
	for i := range count {
		angles[i] = base + start + float64(step*i)
	}
	return angles
}

// projectileColors cycle across a volley so neighbours are distinguishable.
var projectileColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
}

// Volley generates the projectiles of one volley fired by origin at target.
// Every projectile spawns at the bottom-center of the origin and shares its
// radius and speed; only the angle differs.
func Volley(spec VolleySpec, origin, target core.Rect) []*Projectile {
	base := BaseAngle(spec.Aim, origin, target)
	angles := VolleyAngles(base, spec.Count, spec.Spread)

	cx, cy := origin.CenterF()
	cy += float64(origin.H / 2)

	out := make([]*Projectile, 0, len(angles))
	for i, deg := range angles {
		rad := deg * math.Pi / 180
		out = append(out, &Projectile{
			X:      cx,
			Y:      cy,
			VX:     spec.Speed * math.Cos(rad),
			VY:     -spec.Speed * math.Sin(rad),
			Radius: spec.Radius,
			Active: true,
			Alive:  true,
			Color:  projectileColors[i%len(projectileColors)],
		})
	}
	return out
}

// WeightedSpec is one row of a PatternTable.
type WeightedSpec struct {
	Name   string
	Weight int
	Spec   VolleySpec
}

// PatternTable is a weighted discrete choice over volley specs.
type PatternTable []WeightedSpec

// EnemyPatterns is what an ordinary enemy fires when its shot timer is due.
var EnemyPatterns = PatternTable{
	{Name: "fixed-fan", Weight: 20, Spec: Fixed(10, 5, 5, 60)},
	{Name: "seeking-fan", Weight: 40, Spec: Seeking(10, 5, 5, 60)},
	{Name: "fixed-narrow", Weight: 20, Spec: Fixed(20, 2, 3, 90)},
	{Name: "seeking-single", Weight: 20, Spec: Seeking(10, 10, 1, 0)},
}

// Total returns the sum of all weights.
func (t PatternTable) Total() int {
	total := 0
	for _, row := range t {
		total += row.Weight
	}
	return total
}

// Pick returns the row selected by roll, a value in [0, Total()).
func (t PatternTable) Pick(roll int) WeightedSpec {
	cumulative := 0
	for _, row := range t {
		cumulative += row.Weight
		if roll < cumulative {
			return row
		}
	}
	return t[len(t)-1]
}

// Roll draws one row using rng.
func (t PatternTable) Roll(rng *SimpleRNG) WeightedSpec {
	return t.Pick(rng.Intn(t.Total()))
}
