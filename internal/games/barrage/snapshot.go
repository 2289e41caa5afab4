package barrage

import "math"

// Snapshot is a primitive-typed copy of the session state, used to
// compare runs.
type Snapshot struct {
	Tick       uint64
	Level      int
	Score      int
	Outcome    int
	BossActive bool

	AvatarX      int
	AvatarY      int
	AvatarFacing int // Facing.X*3 + Facing.Y

	BeamCount       int
	ProjectileCount int
	EnemyCount      int
	ExplosionCount  int
	EffectCount     int

	// Each enemy is 5 ints: Kind, X, Y, HP, State
	EnemyData []int

	// Each projectile is 3 ints: X, Y, Active (positions rounded)
	ProjectileData []int

	RNGState uint64
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	enemyData := make([]int, 0, len(w.Enemies)*5)
	for _, e := range w.Enemies {
		enemyData = append(enemyData, int(e.Kind), e.Rect.X, e.Rect.Y, e.HP, int(e.State))
	}

	projectileData := make([]int, 0, len(w.Projectiles)*3)
	for _, p := range w.Projectiles {
		active := 0
		if p.Active {
			active = 1
		}
		projectileData = append(projectileData, int(math.Round(p.X)), int(math.Round(p.Y)), active)
	}

	return Snapshot{
		Tick:       uint64(g.tick), //#nosec G115 -- tick count is always positive
		Level:      g.level,
		Score:      g.score.Value(),
		Outcome:    int(g.outcome),
		BossActive: g.bossActive,

		AvatarX:      w.Avatar.Rect.X,
		AvatarY:      w.Avatar.Rect.Y,
		AvatarFacing: w.Avatar.Facing.X*3 + w.Avatar.Facing.Y,

		BeamCount:       len(w.Beams),
		ProjectileCount: len(w.Projectiles),
		EnemyCount:      len(w.Enemies),
		ExplosionCount:  len(w.Explosions),
		EffectCount:     len(w.Effects),

		EnemyData:      enemyData,
		ProjectileData: projectileData,

		RNGState: g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AvatarX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AvatarY)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AvatarFacing)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BeamCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ExplosionCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EffectCount)     //#nosec G115 -- hash computation
	if snap.BossActive {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
