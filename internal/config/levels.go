package config

// LevelScaler derives the current level and level-scaled hit points from
// the frame counter. It is the only difficulty progression the game has.
type LevelScaler struct {
	levels LevelConfig
	enemy  EnemyConfig
	boss   BossConfig
}

// NewLevelScaler creates a level scaler from the game configuration.
func NewLevelScaler(cfg BarrageConfig) *LevelScaler {
	return &LevelScaler{
		levels: cfg.Levels,
		enemy:  cfg.Enemy,
		boss:   cfg.Boss,
	}
}

// Level returns the level for the given frame: 1 for the first
// frames_per_level frames, then 2, and so on.
func (l *LevelScaler) Level(ticks int) int {
	per := l.levels.FramesPerLevel
	if per <= 0 {
		per = 1 // Prevent division by zero
	}
	if ticks < 0 {
		ticks = 0
	}
	return ticks/per + 1
}

// IsBossLevel reports whether a spawn at this level should be a boss.
func (l *LevelScaler) IsBossLevel(level int) bool {
	if l.levels.BossEvery <= 0 {
		return false
	}
	return level%l.levels.BossEvery == 0
}

// EnemyHP returns an ordinary enemy's max hit points at the given level.
func (l *LevelScaler) EnemyHP(level int) int {
	return l.enemy.BaseHP + level
}

// BossHP returns the boss's max hit points at the given level.
func (l *LevelScaler) BossHP(level int) int {
	return l.boss.BaseHP + level*l.boss.HPPerLevel
}
