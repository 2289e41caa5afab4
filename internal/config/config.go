// Package config provides YAML-based game configuration loading and the
// built-in level scaling for the shooter.
package config

import (
	"errors"
	"fmt"
)

// BarrageConfig contains all configuration for the shooter.
// Distances are field units, speeds are field units per frame and
// durations are frames.
type BarrageConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Avatar    AvatarConfig    `yaml:"avatar"`
	Beam      BeamConfig      `yaml:"beam"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Boss      BossConfig      `yaml:"boss"`
	Abilities AbilitiesConfig `yaml:"abilities"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Score     ScoreConfig     `yaml:"score"`
	Levels    LevelConfig     `yaml:"levels"`
	Input     InputConfig     `yaml:"input"`
}

// FieldConfig defines the logical playfield the simulation runs in.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AvatarConfig defines the player avatar.
type AvatarConfig struct {
	StartX          int `yaml:"start_x"` // Center X at spawn
	StartY          int `yaml:"start_y"` // Center Y at spawn
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	Speed           int `yaml:"speed"`
	FireInterval    int `yaml:"fire_interval"`    // Frames between volleys while fire is held
	CelebrateFrames int `yaml:"celebrate_frames"` // Flash duration after a kill
}

// BeamConfig defines player-fired beams and the volley they are fired in.
type BeamConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Attack int     `yaml:"attack"`
	Count  int     `yaml:"count"`  // Beams per volley
	Spread int     `yaml:"spread"` // Degrees covered by one volley
}

// EnemyConfig defines ordinary enemies.
type EnemyConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	DescentSpeed  int `yaml:"descent_speed"`
	BoundMin      int `yaml:"bound_min"` // Lowest stop line (center Y)
	BoundMax      int `yaml:"bound_max"` // Highest stop line; 0 means half the field height
	IntervalMin   int `yaml:"interval_min"`
	IntervalMax   int `yaml:"interval_max"`
	BaseHP        int `yaml:"base_hp"` // Max HP = base_hp + level
	JitterFrames  int `yaml:"jitter_frames"`
	JitterMax     int `yaml:"jitter_max"`
	SpawnInterval int `yaml:"spawn_interval"`
}

// BossConfig defines the boss and its attack cycle.
type BossConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	StartY       int `yaml:"start_y"` // Center Y at spawn
	Speed        int `yaml:"speed"`
	BaseHP       int `yaml:"base_hp"`
	HPPerLevel   int `yaml:"hp_per_level"`
	CycleFrames  int `yaml:"cycle_frames"`  // Attack pattern is re-rolled every cycle
	ActiveFrames int `yaml:"active_frames"` // Frames of each cycle during which the boss fires
}

// AbilityConfig defines one score-costed ability.
type AbilityConfig struct {
	Cost     int `yaml:"cost"`
	Lifetime int `yaml:"lifetime"`
}

// AbilitiesConfig defines the three special abilities.
type AbilitiesConfig struct {
	Disable         AbilityConfig `yaml:"disable"`
	Shield          AbilityConfig `yaml:"shield"`
	Gravity         AbilityConfig `yaml:"gravity"`
	ShieldThickness int           `yaml:"shield_thickness"`
}

// ExplosionConfig defines explosion lifetimes.
type ExplosionConfig struct {
	ActorLife      int `yaml:"actor_life"`
	ProjectileLife int `yaml:"projectile_life"`
}

// ScoreConfig defines score rewards and the starting balance.
type ScoreConfig struct {
	Start           int `yaml:"start"`
	EnemyReward     int `yaml:"enemy_reward"`
	ProjectileClear int `yaml:"projectile_clear"`
}

// LevelConfig defines the built-in level scaling.
type LevelConfig struct {
	FramesPerLevel int `yaml:"frames_per_level"`
	BossEvery      int `yaml:"boss_every"` // Boss levels are multiples of this
}

// InputConfig defines how terminal key events become held actions.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a movement key stays held after its last key event
}

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every size, speed and interval is usable.
func (c BarrageConfig) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"avatar.width", c.Avatar.Width},
		{"avatar.height", c.Avatar.Height},
		{"avatar.fire_interval", c.Avatar.FireInterval},
		{"beam.width", c.Beam.Width},
		{"beam.height", c.Beam.Height},
		{"beam.count", c.Beam.Count},
		{"enemy.width", c.Enemy.Width},
		{"enemy.height", c.Enemy.Height},
		{"enemy.interval_min", c.Enemy.IntervalMin},
		{"enemy.spawn_interval", c.Enemy.SpawnInterval},
		{"boss.width", c.Boss.Width},
		{"boss.height", c.Boss.Height},
		{"boss.cycle_frames", c.Boss.CycleFrames},
		{"abilities.shield_thickness", c.Abilities.ShieldThickness},
		{"levels.frames_per_level", c.Levels.FramesPerLevel},
		{"levels.boss_every", c.Levels.BossEvery},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.v)
		}
	}

	if c.Enemy.IntervalMax < c.Enemy.IntervalMin {
		return fmt.Errorf("%w: enemy.interval_max (%d) below interval_min (%d)",
			ErrInvalidConfig, c.Enemy.IntervalMax, c.Enemy.IntervalMin)
	}
	if c.Enemy.BoundMax != 0 && c.Enemy.BoundMax < c.Enemy.BoundMin {
		return fmt.Errorf("%w: enemy.bound_max (%d) below bound_min (%d)",
			ErrInvalidConfig, c.Enemy.BoundMax, c.Enemy.BoundMin)
	}
	if c.Boss.ActiveFrames > c.Boss.CycleFrames {
		return fmt.Errorf("%w: boss.active_frames (%d) exceeds cycle_frames (%d)",
			ErrInvalidConfig, c.Boss.ActiveFrames, c.Boss.CycleFrames)
	}
	if c.Avatar.Width > c.Field.Width || c.Avatar.Height > c.Field.Height {
		return fmt.Errorf("%w: avatar does not fit in the field", ErrInvalidConfig)
	}
	return nil
}

// EnemyBoundMax returns the effective highest stop line for enemies.
func (c BarrageConfig) EnemyBoundMax() int {
	if c.Enemy.BoundMax > 0 {
		return c.Enemy.BoundMax
	}
	return c.Field.Height / 2
}
