package barrage

import (
	"github.com/vovakirdan/tui-barrage/internal/config"
)

// Report summarizes what one resolution pass did.
type Report struct {
	BeamsConsumed      int
	EnemiesDestroyed   int  // By beams
	BossDestroyed      bool // By beams or gravity
	AvatarHit          bool // A live projectile reached the avatar
	HarmlessHits       int  // Neutralized projectiles absorbed by the avatar
	GravityProjectiles int
	GravityEnemies     int
	ShieldBlocks       int
	ScoreGained        int
}

// Resolver turns overlaps into damage, destruction and score.
type Resolver struct {
	Score           config.ScoreConfig
	Explosion       config.ExplosionConfig
	CelebrateFrames int
}

// NewResolver creates a resolver from the game configuration.
func NewResolver(cfg config.BarrageConfig) Resolver {
	return Resolver{
		Score:           cfg.Score,
		Explosion:       cfg.Explosion,
		CelebrateFrames: cfg.Avatar.CelebrateFrames,
	}
}

// Resolve runs the frame's collision passes in order: beams against
// enemies, projectiles against the avatar, the gravity clear, then
// projectiles against shields. Entities removed by a pass are compacted
// out before the next pass runs. Resolution stops after the avatar pass
// if the avatar was destroyed.
func (r Resolver) Resolve(w *World, score *Score) Report {
	var rep Report

	r.beamsVersusEnemies(w, score, &rep)
	w.Compact()

	r.projectilesVersusAvatar(w, &rep)
	w.Compact()
	if rep.AvatarHit {
		return rep
	}

	r.gravityClear(w, score, &rep)
	w.Compact()

	r.projectilesVersusShields(w, &rep)
	w.Compact()

	return rep
}

// beamsVersusEnemies sums the damage of every beam touching each enemy.
// A beam is consumed by the first enemy it touches in collection order,
// and an enemy is destroyed at most once however many beams hit it.
func (r Resolver) beamsVersusEnemies(w *World, score *Score, rep *Report) {
	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		damage, hits := 0, 0
		for _, b := range w.Beams {
			if !b.Alive || !b.Rect().Intersects(e.Rect) {
				continue
			}
			b.Alive = false
			damage += b.Attack
			hits++
		}
		if hits == 0 {
			continue
		}
		rep.BeamsConsumed += hits
		if e.Damage(damage) {
			r.destroyEnemy(w, e, score, rep)
			rep.EnemiesDestroyed++
			w.Avatar.Celebrate = r.CelebrateFrames
		}
	}
}

// projectilesVersusAvatar consumes every projectile touching the avatar.
func (r Resolver) projectilesVersusAvatar(w *World, rep *Report) {
	a := w.Avatar
	for _, p := range w.Projectiles {
		if !p.Alive || !p.Rect().Intersects(a.Rect) {
			continue
		}
		p.Alive = false
		if p.Active {
			rep.AvatarHit = true
		} else {
			rep.HarmlessHits++
		}
	}
	if rep.AvatarHit {
		a.Destroyed = true
	}
}

// gravityClear destroys every projectile and enemy while a gravity
// field is live.
func (r Resolver) gravityClear(w *World, score *Score, rep *Report) {
	if !w.HasEffect(AbilityGravity) {
		return
	}
	for _, p := range w.Projectiles {
		if !p.Alive {
			continue
		}
		p.Alive = false
		w.Explosions = append(w.Explosions, NewExplosion(p.Rect(), r.Explosion.ProjectileLife))
		score.Add(r.Score.ProjectileClear)
		rep.ScoreGained += r.Score.ProjectileClear
		rep.GravityProjectiles++
	}
	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		r.destroyEnemy(w, e, score, rep)
		rep.GravityEnemies++
	}
}

// projectilesVersusShields consumes projectiles touching any live shield.
func (r Resolver) projectilesVersusShields(w *World, rep *Report) {
	for _, eff := range w.Effects {
		if eff.Kind != AbilityShield || !eff.Alive() {
			continue
		}
		for _, p := range w.Projectiles {
			if !p.Alive || !p.Rect().Intersects(eff.Rect) {
				continue
			}
			p.Alive = false
			w.Explosions = append(w.Explosions, NewExplosion(p.Rect(), r.Explosion.ProjectileLife))
			rep.ShieldBlocks++
		}
	}
}

// destroyEnemy removes e, leaves an explosion and pays the reward.
func (r Resolver) destroyEnemy(w *World, e *Enemy, score *Score, rep *Report) {
	e.Alive = false
	w.Explosions = append(w.Explosions, NewExplosion(e.Rect, r.Explosion.ActorLife))
	score.Add(r.Score.EnemyReward)
	rep.ScoreGained += r.Score.EnemyReward
	if e.Kind == KindBoss {
		rep.BossDestroyed = true
	}
}
