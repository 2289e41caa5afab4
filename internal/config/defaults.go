package config

import (
	_ "embed"
)

//go:embed defaults/barrage.yaml
var defaultBarrageYAML []byte

// DefaultBarrageConfig returns the default shooter configuration.
// It mirrors defaults/barrage.yaml and is used when the embedded file
// cannot be parsed.
func DefaultBarrageConfig() BarrageConfig {
	return BarrageConfig{
		Field: FieldConfig{
			Width:  1100,
			Height: 650,
		},
		Avatar: AvatarConfig{
			StartX:          900,
			StartY:          400,
			Width:           90,
			Height:          70,
			Speed:           10,
			FireInterval:    10,
			CelebrateFrames: 10,
		},
		Beam: BeamConfig{
			Width:  12,
			Height: 30,
			Speed:  10,
			Attack: 1,
			Count:  5,
			Spread: 60,
		},
		Enemy: EnemyConfig{
			Width:         70,
			Height:        60,
			DescentSpeed:  6,
			BoundMin:      50,
			BoundMax:      0,
			IntervalMin:   50,
			IntervalMax:   80,
			BaseHP:        3,
			JitterFrames:  20,
			JitterMax:     3,
			SpawnInterval: 200,
		},
		Boss: BossConfig{
			Width:        240,
			Height:       200,
			StartY:       100,
			Speed:        3,
			BaseHP:       50,
			HPPerLevel:   10,
			CycleFrames:  300,
			ActiveFrames: 200,
		},
		Abilities: AbilitiesConfig{
			Disable:         AbilityConfig{Cost: 20, Lifetime: 3},
			Shield:          AbilityConfig{Cost: 50, Lifetime: 400},
			Gravity:         AbilityConfig{Cost: 200, Lifetime: 400},
			ShieldThickness: 20,
		},
		Explosion: ExplosionConfig{
			ActorLife:      100,
			ProjectileLife: 50,
		},
		Score: ScoreConfig{
			Start:           0,
			EnemyReward:     10,
			ProjectileClear: 1,
		},
		Levels: LevelConfig{
			FramesPerLevel: 1000,
			BossEvery:      3,
		},
		Input: InputConfig{
			HoldTicks: 6,
		},
	}
}
