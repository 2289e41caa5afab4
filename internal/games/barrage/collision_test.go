package barrage

import (
	"testing"

	"github.com/vovakirdan/tui-barrage/internal/config"
)

func testResolver() Resolver {
	return NewResolver(config.DefaultBarrageConfig())
}

func TestBeamMultiHitDestroysOnce(t *testing.T) {
	tests := []struct {
		name  string
		hp    int
		beams int
	}{
		{"exactly zero", 3, 3},
		{"overkill", 3, 5},
		{"single beam kill", 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := testWorld()
			score := NewScore(0)
			w.Enemies = append(w.Enemies, gruntAt(300, 200, tc.hp))
			for i := range tc.beams {
				w.Beams = append(w.Beams, beamAt(290+float64(i)*5, 200))
			}

			rep := testResolver().Resolve(w, score)

			if rep.EnemiesDestroyed != 1 {
				t.Errorf("EnemiesDestroyed = %d, expected 1", rep.EnemiesDestroyed)
			}
			if score.Value() != 10 {
				t.Errorf("score = %d, expected 10", score.Value())
			}
			if len(w.Explosions) != 1 {
				t.Errorf("explosions = %d, expected 1", len(w.Explosions))
			}
			if len(w.Enemies) != 0 || len(w.Beams) != 0 {
				t.Errorf("enemy and all beams should be gone, left %d enemies %d beams", len(w.Enemies), len(w.Beams))
			}
			if rep.BeamsConsumed != tc.beams {
				t.Errorf("BeamsConsumed = %d, expected %d", rep.BeamsConsumed, tc.beams)
			}
			if w.Avatar.Celebrate != 10 {
				t.Errorf("avatar celebrate = %d, expected 10", w.Avatar.Celebrate)
			}
		})
	}
}

func TestBeamDamageWithoutKill(t *testing.T) {
	w := testWorld()
	score := NewScore(0)
	e := gruntAt(300, 200, 4)
	w.Enemies = append(w.Enemies, e)
	w.Beams = append(w.Beams, beamAt(300, 200), beamAt(305, 205), beamAt(700, 500))

	rep := testResolver().Resolve(w, score)

	if e.HP != 2 {
		t.Errorf("enemy HP = %d, expected 2", e.HP)
	}
	if rep.EnemiesDestroyed != 0 || score.Value() != 0 || len(w.Explosions) != 0 {
		t.Error("damaged enemy should not be destroyed")
	}
	if len(w.Beams) != 1 {
		t.Errorf("only the missing beam should remain, got %d beams", len(w.Beams))
	}
	if w.Avatar.Celebrate != 0 {
		t.Error("avatar should not celebrate without a kill")
	}
}

func TestBeamConsumedByFirstTarget(t *testing.T) {
	w := testWorld()
	first := gruntAt(300, 200, 4)
	second := gruntAt(310, 200, 4)
	w.Enemies = append(w.Enemies, first, second)
	w.Beams = append(w.Beams, beamAt(305, 200))

	testResolver().Resolve(w, NewScore(0))

	if first.HP != 3 || second.HP != 4 {
		t.Errorf("beam should only hit the first overlapping enemy, HP = %d/%d", first.HP, second.HP)
	}
}

func TestLiveProjectileDestroysAvatar(t *testing.T) {
	w := testWorld()
	score := NewScore(40)
	ax, ay := w.Avatar.Rect.CenterF()

	w.Projectiles = append(w.Projectiles,
		projectileAt(ax, ay, false),
		projectileAt(ax+10, ay, true),
		projectileAt(100, 100, true),
	)
	w.Effects = append(w.Effects, &Effect{Kind: AbilityGravity, Life: 100})

	rep := testResolver().Resolve(w, score)

	if !rep.AvatarHit || !w.Avatar.Destroyed {
		t.Fatal("an active projectile on the avatar should destroy it")
	}
	if rep.HarmlessHits != 1 {
		t.Errorf("HarmlessHits = %d, expected 1", rep.HarmlessHits)
	}
	if len(w.Projectiles) != 1 {
		t.Errorf("both overlapping projectiles should be consumed, %d left", len(w.Projectiles))
	}
	if score.Value() != 40 || rep.GravityProjectiles != 0 {
		t.Error("resolution should stop once the avatar is destroyed")
	}
}

func TestGravityClearsField(t *testing.T) {
	w := testWorld()
	score := NewScore(7)

	for i := range 4 {
		w.Projectiles = append(w.Projectiles, projectileAt(100+float64(i)*50, 500, true))
	}
	w.Enemies = append(w.Enemies, gruntAt(200, 100, 4), NewBoss(config.DefaultBarrageConfig(), 80))
	w.Effects = append(w.Effects, &Effect{Kind: AbilityGravity, Life: 400})

	rep := testResolver().Resolve(w, score)

	if len(w.Projectiles) != 0 || len(w.Enemies) != 0 {
		t.Fatalf("gravity should clear everything, left %d projectiles %d enemies", len(w.Projectiles), len(w.Enemies))
	}
	if want := 7 + 4*1 + 2*10; score.Value() != want {
		t.Errorf("score = %d, expected %d", score.Value(), want)
	}
	if len(w.Explosions) != 6 {
		t.Errorf("explosions = %d, expected one per cleared entity", len(w.Explosions))
	}
	if !rep.BossDestroyed {
		t.Error("boss cleared by gravity should be reported")
	}

	life := map[int]int{}
	for _, ex := range w.Explosions {
		life[ex.Life]++
	}
	if life[50] != 4 || life[100] != 2 {
		t.Errorf("explosion lifetimes = %v, expected 4x50 and 2x100", life)
	}
}

func TestBeamKillIsNotCountedAgainByGravity(t *testing.T) {
	w := testWorld()
	score := NewScore(0)
	w.Enemies = append(w.Enemies, gruntAt(300, 200, 1))
	w.Beams = append(w.Beams, beamAt(300, 200))
	w.Effects = append(w.Effects, &Effect{Kind: AbilityGravity, Life: 400})

	rep := testResolver().Resolve(w, score)

	if score.Value() != 10 || len(w.Explosions) != 1 {
		t.Errorf("score = %d explosions = %d, expected one kill", score.Value(), len(w.Explosions))
	}
	if rep.GravityEnemies != 0 {
		t.Error("enemy removed by beams should not reach the gravity pass")
	}
}

func TestShieldBlocksProjectiles(t *testing.T) {
	w := testWorld()
	shield := &Effect{Kind: AbilityShield, Rect: ShieldRect(w.Avatar, 20), Life: 400}
	w.Effects = append(w.Effects, shield)

	cx, cy := shield.Rect.CenterF()
	w.Projectiles = append(w.Projectiles,
		projectileAt(cx, cy, true),
		projectileAt(cx, cy-60, false),
		projectileAt(200, 200, true),
	)

	rep := testResolver().Resolve(w, NewScore(0))

	if rep.ShieldBlocks != 2 {
		t.Errorf("ShieldBlocks = %d, expected 2", rep.ShieldBlocks)
	}
	if len(w.Projectiles) != 1 || len(w.Explosions) != 2 {
		t.Errorf("left %d projectiles and %d explosions, expected 1 and 2", len(w.Projectiles), len(w.Explosions))
	}
	if !shield.Alive() {
		t.Error("shield should not be damaged by blocking")
	}
}
