package balance

// Default returns the built-in tuning. Load decodes over a copy of it.
func Default() Config {
	return Config{
		World: WorldConfig{
			MapWidth:   3200,
			MapHeight:  3200,
			ViewWidth:  800,
			ViewHeight: 600,
			FixedStep:  1.0 / 60.0,
			MaxBacklog: 0.25,
		},
		Player: PlayerConfig{
			Width:          96,
			Height:         128,
			Speed:          150,
			MaxHP:          10,
			RegenRate:      0.2,
			AttackRange:    150,
			AttackCooldown: 1.0,
			AttackAngle:    90,
			AttackDamage:   3,
			AttackVisual:   0.2,
			ContactInset:   25,
			AnimInterval:   0.2,
			MagnetDuration: 8,
			Dash: DashConfig{
				Cooldown: 4,
				Duration: 0.2,
				Speed:    800,
			},
			Scream: ScreamConfig{
				Cooldown:        10,
				Damage:          4,
				RangeMultiplier: 3,
				SlowDuration:    3,
				ConeHalfAngle:   45,
				ConeDisplay:     0.5,
			},
		},
		Progression: ProgressionConfig{
			FirstLevelXP:      20,
			LevelXPMultiplier: 1.18,
			DamagePerLevel:    1.2,
			MaxHPPerLevel:     0,
			HealPerLevel:      2,
		},
		Enemies: EnemiesConfig{
			Goblin: GoblinConfig{
				Size:           80,
				BaseHP:         5,
				HPPerLevel:     2,
				BaseSpeed:      60,
				SpeedPerLevel:  5,
				Damage:         1,
				AttackCooldown: 1,
				PauseDuration:  0.5,
				PauseFactor:    0,
				SlowFactor:     0.5,
				FlashDuration:  0.2,
				Tiers: TiersConfig{
					Normal: TierConfig{HPMultiplier: 1, SizeScale: 1, XP: 3.5},
					Rare:   TierConfig{HPMultiplier: 3, SizeScale: 1.3, XP: 10},
					Elite:  TierConfig{HPMultiplier: 9, SizeScale: 1.3, XP: 15},
				},
			},
			Mage: MageConfig{
				Size:         72,
				HP:           6,
				Speed:        80,
				XP:           12,
				FireCooldown: 5,
				BandMin:      3,
				BandMax:      4,
				Projectile: ProjectileConfig{
					Size:     16,
					Speed:    300,
					Damage:   2,
					Lifetime: 8,
				},
			},
			Boss: BossConfig{
				Every:             10,
				HPMultiplier:      5,
				BaseSpeed:         40,
				SizeScale:         2,
				AttackCooldown:    3,
				LevelsPerDamage:   5,
				XPPerLevel:        10,
				SafeDistance:      800,
				PlacementAttempts: 64,
			},
		},
		Spawning: SpawningConfig{
			BaseSpawnRate:   3.0,
			BaseMaxEnemies:  5,
			PerLevelEnemies: 2,
			MageSpawnChance: 0.1,
			EdgeMargin:      50,
			DespawnFactor:   2,
		},
		Scaling: ScalingConfig{
			EliteChancePerLevel:   0.005,
			EliteChanceMax:        0.1,
			RareChancePerLevel:    0.015,
			RareChanceMax:         0.3,
			TimeModifierDivisor:   60,
			LevelModifierMin:      0.2,
			LevelModifierPerLevel: 0.01,
			MinimumSpawnInterval:  0.05,
		},
		Orbs: OrbConfig{
			Size:              16,
			AttractRadius:     200,
			AttractSpeed:      300,
			MagnetSpeedFactor: 3,
		},
		Bonus: BonusConfig{
			Size:         64,
			CornerOffset: 200,
			RespawnDelay: 0,
		},
		Upgrades: UpgradesConfig{
			StrengthBoost: Upgrade{Value: 3},
			VitalitySurge: Upgrade{Value: 5},
			QuickReflexes: Upgrade{Value: 0.85},
			Haste:         Upgrade{Value: 30},
			ExtendedReach: Upgrade{Value: 30},
			XPBonus:       Upgrade{Value: 0.25},
		},
		Difficulty: map[string]Multipliers{
			"easy":   {PlayerDamage: 1.25, EnemyHP: 0.8, EnemyDamage: 0.75, XP: 1.25, SpawnRate: 0.8},
			"normal": neutral,
			"hard":   {PlayerDamage: 0.9, EnemyHP: 1.3, EnemyDamage: 1.5, XP: 0.9, SpawnRate: 1.3},
		},
	}
}
