package barrage

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// testWorld returns an empty default world with the avatar at (900, 400).
func testWorld() *World {
	return NewWorld(config.DefaultBarrageConfig())
}

func projectileAt(x, y float64, active bool) *Projectile {
	return &Projectile{X: x, Y: y, VX: 2, VY: 4, Radius: 10, Active: active, Alive: true}
}

func gruntAt(x, y float64, hp int) *Enemy {
	return &Enemy{
		Kind:     KindGrunt,
		Rect:     core.RectAround(x, y, 70, 60),
		State:    StateStop,
		Alive:    true,
		HP:       hp,
		MaxHP:    hp,
		Interval: 50,
	}
}

func beamAt(x, y float64) *Beam {
	return &Beam{X: x, Y: y, VY: -1, Speed: 10, W: 12, H: 30, Attack: 1, Alive: true}
}

func TestAvatarStart(t *testing.T) {
	a := NewAvatar(config.DefaultBarrageConfig().Avatar)

	cx, cy := a.Rect.CenterF()
	if cx != 900 || cy != 400 {
		t.Errorf("avatar center = (%v, %v), expected (900, 400)", cx, cy)
	}
	if a.Facing != DirEast {
		t.Errorf("avatar should face east, got %+v", a.Facing)
	}
}

func TestAvatarMoveRollsBackPerAxis(t *testing.T) {
	tests := []struct {
		name   string
		rect   core.Rect
		dx, dy int
		want   core.Rect
	}{
		{"free move", core.NewRect(500, 300, 90, 70), 1, -1, core.NewRect(510, 290, 90, 70)},
		{"left edge blocks x only", core.NewRect(5, 300, 90, 70), -1, 1, core.NewRect(5, 310, 90, 70)},
		{"bottom edge blocks y only", core.NewRect(500, 575, 90, 70), 1, 1, core.NewRect(510, 575, 90, 70)},
		{"corner blocks both", core.NewRect(1005, 0, 90, 70), 1, -1, core.NewRect(1005, 0, 90, 70)},
		{"exact fit allowed", core.NewRect(1000, 300, 90, 70), 1, 0, core.NewRect(1010, 300, 90, 70)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := &Avatar{Rect: tc.rect, Facing: DirEast, Speed: 10}
			a.Move(tc.dx, tc.dy, 1100, 650)

			if a.Rect != tc.want {
				t.Errorf("Move(%d, %d) rect = %+v, expected %+v", tc.dx, tc.dy, a.Rect, tc.want)
			}
			if a.Facing != (Dir{tc.dx, tc.dy}) {
				t.Errorf("facing = %+v, expected {%d %d}", a.Facing, tc.dx, tc.dy)
			}
			if !core.FullyInBounds(a.Rect, 1100, 650) {
				t.Errorf("avatar left the field: %+v", a.Rect)
			}
		})
	}
}

func TestAvatarMoveZeroKeepsFacing(t *testing.T) {
	a := &Avatar{Rect: core.NewRect(500, 300, 90, 70), Facing: Dir{0, -1}, Speed: 10}
	a.Move(0, 0, 1100, 650)

	if a.Facing != (Dir{0, -1}) {
		t.Errorf("facing changed without movement: %+v", a.Facing)
	}
	if a.Rect.X != 500 || a.Rect.Y != 300 {
		t.Errorf("avatar moved without input: %+v", a.Rect)
	}
}

func TestBeamVolley(t *testing.T) {
	cfg := config.DefaultBarrageConfig()
	a := NewAvatar(cfg.Avatar)

	beams := a.BeamVolley(cfg.Beam)
	if len(beams) != 5 {
		t.Fatalf("expected 5 beams, got %d", len(beams))
	}

	for i, b := range beams {
		if b.VY >= 0 {
			t.Errorf("beam %d should travel upward, vy = %v", i, b.VY)
		}
		if !approx(math.Hypot(b.VX, b.VY), 1) {
			t.Errorf("beam %d direction should be a unit vector", i)
		}
		if b.Attack != 1 || b.Speed != 10 {
			t.Errorf("beam %d attack/speed = %d/%v, expected 1/10", i, b.Attack, b.Speed)
		}
	}

	// Fan runs from 60 degrees to 120 degrees: right-leaning first.
	if beams[0].VX <= 0 || beams[4].VX >= 0 {
		t.Errorf("volley should fan from right to left, got vx %v .. %v", beams[0].VX, beams[4].VX)
	}

	mid := beams[2]
	if math.Abs(mid.X-900) > 1e-6 || !approx(mid.Y, 330) {
		t.Errorf("straight beam spawns at (%v, %v), expected (900, 330)", mid.X, mid.Y)
	}
}

func TestBeamAdvance(t *testing.T) {
	b := beamAt(500, 25)
	b.Advance(1100, 650)
	if !b.Alive || !approx(b.Y, 15) {
		t.Errorf("beam should move to y=15 and stay alive, got y=%v alive=%v", b.Y, b.Alive)
	}

	b.Advance(1100, 650)
	if b.Alive {
		t.Error("beam should die once its top leaves the field")
	}
}

func TestProjectileAdvanceAndBounds(t *testing.T) {
	p := projectileAt(550, 300, true)
	p.Advance(1100, 650)
	if !approx(p.X, 552) || !approx(p.Y, 304) {
		t.Errorf("projectile at (%v, %v), expected (552, 304)", p.X, p.Y)
	}
	if !p.Alive {
		t.Error("projectile inside the field should stay alive")
	}

	edge := projectileAt(1089, 300, true)
	edge.Advance(1100, 650)
	if edge.Alive {
		t.Error("projectile crossing the right edge should die")
	}
}

func TestProjectileRect(t *testing.T) {
	p := projectileAt(100, 200, true)
	r := p.Rect()
	if r != core.NewRect(90, 190, 20, 20) {
		t.Errorf("Rect() = %+v, expected square of side 2*radius around center", r)
	}
}

func TestProjectileNeutralize(t *testing.T) {
	p := projectileAt(100, 100, true)
	p.Neutralize()

	if p.Active {
		t.Error("neutralized projectile should be inactive")
	}
	if !approx(p.VX, 1) || !approx(p.VY, 2) {
		t.Errorf("neutralized velocity = (%v, %v), expected (1, 2)", p.VX, p.VY)
	}
	if !p.Alive {
		t.Error("neutralized projectile stays in play")
	}
}

func TestExplosionLifetime(t *testing.T) {
	e := NewExplosion(core.NewRect(0, 0, 100, 50), 100)
	if e.X != 50 || e.Y != 25 {
		t.Errorf("explosion center = (%v, %v), expected (50, 25)", e.X, e.Y)
	}
	if e.Frame() != 0 {
		t.Errorf("Frame() at life 100 = %d, expected 0", e.Frame())
	}

	for range 10 {
		e.Advance()
	}
	if e.Frame() != 1 {
		t.Errorf("Frame() at life 90 = %d, expected 1", e.Frame())
	}

	for range 89 {
		e.Advance()
	}
	if !e.Alive() {
		t.Error("explosion should still show on its last frame")
	}
	e.Advance()
	if e.Alive() {
		t.Error("explosion should be gone after its lifetime")
	}
}

func TestWorldCompact(t *testing.T) {
	w := testWorld()
	dead := projectileAt(10, 10, true)
	dead.Alive = false
	w.Projectiles = append(w.Projectiles, projectileAt(1, 1, true), dead, projectileAt(2, 2, true))
	w.Explosions = append(w.Explosions, &Explosion{Life: 0}, &Explosion{Life: 5})

	w.Compact()

	if len(w.Projectiles) != 2 {
		t.Fatalf("expected 2 projectiles after compaction, got %d", len(w.Projectiles))
	}
	if w.Projectiles[0].X != 1 || w.Projectiles[1].X != 2 {
		t.Error("compaction should keep survivor order")
	}
	if len(w.Explosions) != 1 {
		t.Errorf("expected 1 explosion after compaction, got %d", len(w.Explosions))
	}
}

func TestSimpleRNG(t *testing.T) {
	a, b := NewSimpleRNG(42), NewSimpleRNG(42)
	for range 100 {
		if a.Next() != b.Next() {
			t.Fatal("same seed should produce the same sequence")
		}
	}

	r := NewSimpleRNG(7)
	seen := map[int]bool{}
	for range 1000 {
		v := r.Range(-3, 3)
		if v < -3 || v > 3 {
			t.Fatalf("Range(-3, 3) = %d, out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 7 {
		t.Errorf("Range(-3, 3) should reach every value, saw %v", seen)
	}

	if got := r.Range(5, 5); got != 5 {
		t.Errorf("Range(5, 5) = %d, expected 5", got)
	}
}
