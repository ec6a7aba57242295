// Package balance holds every numeric tunable of a run. Values come from a
// YAML file decoded over the hardcoded defaults, so a missing key never
// leaves a stat unset.
package balance

type Config struct {
	World       WorldConfig            `yaml:"world"`
	Player      PlayerConfig           `yaml:"player"`
	Progression ProgressionConfig      `yaml:"progression"`
	Enemies     EnemiesConfig          `yaml:"enemies"`
	Spawning    SpawningConfig         `yaml:"spawning"`
	Scaling     ScalingConfig          `yaml:"scaling"`
	Orbs        OrbConfig              `yaml:"orbs"`
	Bonus       BonusConfig            `yaml:"bonus"`
	Upgrades    UpgradesConfig         `yaml:"upgrades"`
	Difficulty  map[string]Multipliers `yaml:"difficulty"`
}

type WorldConfig struct {
	MapWidth   float64 `yaml:"map_width"`
	MapHeight  float64 `yaml:"map_height"`
	ViewWidth  float64 `yaml:"view_width"`
	ViewHeight float64 `yaml:"view_height"`
	FixedStep  float64 `yaml:"fixed_step"`
	MaxBacklog float64 `yaml:"max_backlog"`
}

type PlayerConfig struct {
	Width          float64      `yaml:"width"`
	Height         float64      `yaml:"height"`
	Speed          float64      `yaml:"speed"`
	MaxHP          float64      `yaml:"max_hp"`
	RegenRate      float64      `yaml:"regen_rate"`
	AttackRange    float64      `yaml:"attack_range"`
	AttackCooldown float64      `yaml:"attack_cooldown"`
	AttackAngle    float64      `yaml:"attack_angle"`
	AttackDamage   float64      `yaml:"attack_damage"`
	AttackVisual   float64      `yaml:"attack_visual"`
	ContactInset   float64      `yaml:"contact_inset"`
	AnimInterval   float64      `yaml:"anim_interval"`
	MagnetDuration float64      `yaml:"magnet_duration"`
	Dash           DashConfig   `yaml:"dash"`
	Scream         ScreamConfig `yaml:"scream"`
}

type DashConfig struct {
	Cooldown float64 `yaml:"cooldown"`
	Duration float64 `yaml:"duration"`
	Speed    float64 `yaml:"speed"`
}

type ScreamConfig struct {
	Cooldown        float64 `yaml:"cooldown"`
	Damage          float64 `yaml:"damage"`
	RangeMultiplier float64 `yaml:"range_multiplier"`
	SlowDuration    float64 `yaml:"slow_duration"`
	ConeHalfAngle   float64 `yaml:"cone_half_angle"`
	ConeDisplay     float64 `yaml:"cone_display"`
}

type ProgressionConfig struct {
	FirstLevelXP      int     `yaml:"first_level_xp"`
	LevelXPMultiplier float64 `yaml:"level_xp_multiplier"`
	DamagePerLevel    float64 `yaml:"damage_per_level"`
	MaxHPPerLevel     float64 `yaml:"max_hp_per_level"`
	HealPerLevel      float64 `yaml:"heal_per_level"`
}

type TierConfig struct {
	HPMultiplier float64 `yaml:"hp_multiplier"`
	SizeScale    float64 `yaml:"size_scale"`
	XP           float64 `yaml:"xp"`
}

type TiersConfig struct {
	Normal TierConfig `yaml:"normal"`
	Rare   TierConfig `yaml:"rare"`
	Elite  TierConfig `yaml:"elite"`
}

type GoblinConfig struct {
	Size           float64     `yaml:"size"`
	BaseHP         float64     `yaml:"base_hp"`
	HPPerLevel     float64     `yaml:"hp_per_level"`
	BaseSpeed      float64     `yaml:"base_speed"`
	SpeedPerLevel  float64     `yaml:"speed_per_level"`
	Damage         float64     `yaml:"damage"`
	AttackCooldown float64     `yaml:"attack_cooldown"`
	PauseDuration  float64     `yaml:"pause_duration"`
	PauseFactor    float64     `yaml:"pause_factor"`
	SlowFactor     float64     `yaml:"slow_factor"`
	FlashDuration  float64     `yaml:"flash_duration"`
	Tiers          TiersConfig `yaml:"tiers"`
}

type ProjectileConfig struct {
	Size     float64 `yaml:"size"`
	Speed    float64 `yaml:"speed"`
	Damage   float64 `yaml:"damage"`
	Lifetime float64 `yaml:"lifetime"`
}

type MageConfig struct {
	Size         float64          `yaml:"size"`
	HP           float64          `yaml:"hp"`
	Speed        float64          `yaml:"speed"`
	XP           float64          `yaml:"xp"`
	FireCooldown float64          `yaml:"fire_cooldown"`
	BandMin      float64          `yaml:"band_min"`
	BandMax      float64          `yaml:"band_max"`
	Projectile   ProjectileConfig `yaml:"projectile"`
}

type BossConfig struct {
	Every             int     `yaml:"every"`
	HPMultiplier      float64 `yaml:"hp_multiplier"`
	BaseSpeed         float64 `yaml:"base_speed"`
	SizeScale         float64 `yaml:"size_scale"`
	AttackCooldown    float64 `yaml:"attack_cooldown"`
	LevelsPerDamage   int     `yaml:"levels_per_damage"`
	XPPerLevel        float64 `yaml:"xp_per_level"`
	SafeDistance      float64 `yaml:"safe_distance"`
	PlacementAttempts int     `yaml:"placement_attempts"`
}

type EnemiesConfig struct {
	Goblin GoblinConfig `yaml:"goblin"`
	Mage   MageConfig   `yaml:"mage"`
	Boss   BossConfig   `yaml:"boss"`
}

type SpawningConfig struct {
	BaseSpawnRate   float64 `yaml:"base_spawn_rate"`
	BaseMaxEnemies  int     `yaml:"base_max_enemies"`
	PerLevelEnemies int     `yaml:"per_level_enemies"`
	MageSpawnChance float64 `yaml:"mage_spawn_chance"`
	EdgeMargin      float64 `yaml:"edge_margin"`
	DespawnFactor   float64 `yaml:"despawn_factor"`
}

type ScalingConfig struct {
	EliteChancePerLevel   float64 `yaml:"elite_chance_per_level"`
	EliteChanceMax        float64 `yaml:"elite_chance_max"`
	RareChancePerLevel    float64 `yaml:"rare_chance_per_level"`
	RareChanceMax         float64 `yaml:"rare_chance_max"`
	TimeModifierDivisor   float64 `yaml:"time_modifier_divisor"`
	LevelModifierMin      float64 `yaml:"level_modifier_min"`
	LevelModifierPerLevel float64 `yaml:"level_modifier_per_level"`
	MinimumSpawnInterval  float64 `yaml:"minimum_spawn_interval"`
}

type OrbConfig struct {
	Size              float64 `yaml:"size"`
	AttractRadius     float64 `yaml:"attract_radius"`
	AttractSpeed      float64 `yaml:"attract_speed"`
	MagnetSpeedFactor float64 `yaml:"magnet_speed_factor"`
}

type BonusConfig struct {
	Size         float64 `yaml:"size"`
	CornerOffset float64 `yaml:"corner_offset"`
	RespawnDelay float64 `yaml:"respawn_delay"`
}

// Upgrade is one entry of the level-up catalog. MaxStacks caps how many
// times it can be taken in a run; 0 means unlimited.
type Upgrade struct {
	Value     float64 `yaml:"value"`
	MaxStacks int     `yaml:"max_stacks"`
}

type UpgradesConfig struct {
	StrengthBoost Upgrade `yaml:"strength_boost"`
	VitalitySurge Upgrade `yaml:"vitality_surge"`
	QuickReflexes Upgrade `yaml:"quick_reflexes"`
	Haste         Upgrade `yaml:"haste"`
	ExtendedReach Upgrade `yaml:"extended_reach"`
	XPBonus       Upgrade `yaml:"xp_bonus"`
}

// Multipliers is one difficulty preset.
type Multipliers struct {
	PlayerDamage float64 `yaml:"player_damage"`
	EnemyHP      float64 `yaml:"enemy_hp"`
	EnemyDamage  float64 `yaml:"enemy_damage"`
	XP           float64 `yaml:"xp"`
	SpawnRate    float64 `yaml:"spawn_rate"`
}

var neutral = Multipliers{PlayerDamage: 1, EnemyHP: 1, EnemyDamage: 1, XP: 1, SpawnRate: 1}
