package barrage

import (
	"math"

	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
)

// Dir is one of the eight compass directions as a unit grid step.
type Dir struct {
	X, Y int
}

// DirEast is the avatar's facing before it first moves.
var DirEast = Dir{X: 1, Y: 0}

// Avatar is the player-controlled ship.
type Avatar struct {
	Rect      core.Rect
	Facing    Dir
	Speed     int
	Celebrate int  // Frames left on the kill flash
	Destroyed bool // Hit by a live projectile
}

// NewAvatar places the avatar at its configured start.
func NewAvatar(cfg config.AvatarConfig) *Avatar {
	return &Avatar{
		Rect:   core.RectAround(float64(cfg.StartX), float64(cfg.StartY), cfg.Width, cfg.Height),
		Facing: DirEast,
		Speed:  cfg.Speed,
	}
}

// Move displaces the avatar by (dx, dy) grid steps. An axis whose move
// would leave the field is rolled back for this frame; the other axis
// still moves. A non-zero step updates the facing even when rolled back.
func (a *Avatar) Move(dx, dy, fieldW, fieldH int) {
	if dx == 0 && dy == 0 {
		return
	}
	moved := a.Rect.Translate(a.Speed*dx, a.Speed*dy)
	withinX, withinY := core.InBounds(moved, fieldW, fieldH)
	if !withinX {
		moved.X = a.Rect.X
	}
	if !withinY {
		moved.Y = a.Rect.Y
	}
	a.Rect = moved
	a.Facing = Dir{X: dx, Y: dy}
}

// BeamVolley builds one volley of beams fanned around straight up.
// The volley is not kept; callers append its beams to the world.
func (a *Avatar) BeamVolley(cfg config.BeamConfig) []*Beam {
	cx, cy := a.Rect.CenterF()
	angles := VolleyAngles(90, cfg.Count, cfg.Spread)
	beams := make([]*Beam, 0, len(angles))
	for _, deg := range angles {
		rad := deg * math.Pi / 180
		vx, vy := math.Cos(rad), -math.Sin(rad)
		beams = append(beams, &Beam{
			X:      cx + float64(a.Rect.W)*vx,
			Y:      cy + float64(a.Rect.H)*vy,
			VX:     vx,
			VY:     vy,
			Speed:  cfg.Speed,
			W:      cfg.Width,
			H:      cfg.Height,
			Attack: cfg.Attack,
			Alive:  true,
		})
	}
	return beams
}

// Tick counts down the celebrate flash.
func (a *Avatar) Tick() {
	if a.Celebrate > 0 {
		a.Celebrate--
	}
}

// Beam is a player-fired shot with a unit direction and fixed speed.
type Beam struct {
	X, Y   float64 // Center
	VX, VY float64 // Unit direction
	Speed  float64
	W, H   int
	Attack int
	Alive  bool
}

// Rect returns the beam's bounding box.
func (b *Beam) Rect() core.Rect {
	return core.RectAround(b.X, b.Y, b.W, b.H)
}

// Advance moves the beam and kills it once any part leaves the field.
func (b *Beam) Advance(fieldW, fieldH int) {
	b.X += b.Speed * b.VX
	b.Y += b.Speed * b.VY
	if !core.FullyInBounds(b.Rect(), fieldW, fieldH) {
		b.Alive = false
	}
}

// Projectile is an enemy shot. It keeps only its spawn-time data and
// never refers back to the actor that fired it.
type Projectile struct {
	X, Y   float64 // Center
	VX, VY float64
	Radius int
	Active bool // False once neutralized; a neutralized projectile is harmless
	Alive  bool
	Color  core.Color
}

// Rect returns the projectile's bounding square.
func (p *Projectile) Rect() core.Rect {
	return core.RectAround(p.X, p.Y, 2*p.Radius, 2*p.Radius)
}

// Advance moves the projectile and kills it once any part leaves the field.
func (p *Projectile) Advance(fieldW, fieldH int) {
	p.X += p.VX
	p.Y += p.VY
	if !core.FullyInBounds(p.Rect(), fieldW, fieldH) {
		p.Alive = false
	}
}

// Neutralize halves the projectile's velocity and makes it harmless.
func (p *Projectile) Neutralize() {
	p.VX /= 2
	p.VY /= 2
	p.Active = false
}

// Explosion is the cosmetic remains of a destroyed entity.
type Explosion struct {
	X, Y float64 // Center of the destroyed entity
	Life int
}

// NewExplosion creates an explosion centered on r.
func NewExplosion(r core.Rect, life int) *Explosion {
	cx, cy := r.CenterF()
	return &Explosion{X: cx, Y: cy, Life: life}
}

// Advance counts the explosion down.
func (e *Explosion) Advance() {
	e.Life--
}

// Alive reports whether the explosion still shows.
func (e *Explosion) Alive() bool {
	return e.Life > 0
}

// Frame returns which of the two alternating visuals to show.
func (e *Explosion) Frame() int {
	return (e.Life / 10) % 2
}

// World owns every entity collection of a session.
type World struct {
	Width, Height int

	Avatar      *Avatar
	Beams       []*Beam
	Projectiles []*Projectile
	Enemies     []*Enemy
	Explosions  []*Explosion
	Effects     []*Effect
}

// NewWorld creates an empty field with the avatar at its start.
func NewWorld(cfg config.BarrageConfig) *World {
	return &World{
		Width:       cfg.Field.Width,
		Height:      cfg.Field.Height,
		Avatar:      NewAvatar(cfg.Avatar),
		Beams:       make([]*Beam, 0, 64),
		Projectiles: make([]*Projectile, 0, 128),
		Enemies:     make([]*Enemy, 0, 16),
		Explosions:  make([]*Explosion, 0, 32),
		Effects:     make([]*Effect, 0, 4),
	}
}

// Boss returns the live boss, or nil.
func (w *World) Boss() *Enemy {
	for _, e := range w.Enemies {
		if e.Alive && e.Kind == KindBoss {
			return e
		}
	}
	return nil
}

// HasEffect reports whether a live effect of the given kind exists.
func (w *World) HasEffect(kind AbilityKind) bool {
	for _, e := range w.Effects {
		if e.Kind == kind && e.Alive() {
			return true
		}
	}
	return false
}

// Compact drops every dead entity from every collection.
func (w *World) Compact() {
	w.Beams = compact(w.Beams, func(b *Beam) bool { return b.Alive })
	w.Projectiles = compact(w.Projectiles, func(p *Projectile) bool { return p.Alive })
	w.Enemies = compact(w.Enemies, func(e *Enemy) bool { return e.Alive })
	w.Explosions = compact(w.Explosions, (*Explosion).Alive)
	w.Effects = compact(w.Effects, (*Effect).Alive)
}

// compact filters s in place, keeping the order of survivors.
func compact[T any](s []T, keep func(T) bool) []T {
	out := s[:0]
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	clear(s[len(out):])
	return out
}
