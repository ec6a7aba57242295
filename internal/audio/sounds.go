package audio

import (
	"time"

	"github.com/gopxl/beep"

	"lasthuman/internal/sim"
)

type Sound int

const (
	SoundNone Sound = iota
	SoundSwing
	SoundScream
	SoundDash
	SoundLevelUp
	SoundOrb
	SoundBonus
	SoundHurt
	SoundKill
	SoundBoss
	SoundGameOver
	soundCount
)

var soundNames = [...]string{
	SoundNone:     "none",
	SoundSwing:    "swing",
	SoundScream:   "scream",
	SoundDash:     "dash",
	SoundLevelUp:  "levelup",
	SoundOrb:      "orb",
	SoundBonus:    "bonus",
	SoundHurt:     "hurt",
	SoundKill:     "kill",
	SoundBoss:     "boss",
	SoundGameOver: "gameover",
}

func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundFor maps a simulation event to the effect that plays for it.
func SoundFor(k sim.EventKind) Sound {
	switch k {
	case sim.AttackFired:
		return SoundSwing
	case sim.ScreamFired:
		return SoundScream
	case sim.DashStarted:
		return SoundDash
	case sim.LevelUp:
		return SoundLevelUp
	case sim.OrbPickup:
		return SoundOrb
	case sim.BonusPickup:
		return SoundBonus
	case sim.PlayerHit:
		return SoundHurt
	case sim.EnemyKilled:
		return SoundKill
	case sim.BossSpawned:
		return SoundBoss
	case sim.GameOver:
		return SoundGameOver
	}
	return SoundNone
}

// minGap is how soon the same sound may start again. Orbs arrive in
// bursts under the magnet and would otherwise stack into noise.
var minGap = [soundCount]time.Duration{
	SoundSwing: 60 * time.Millisecond,
	SoundOrb:   45 * time.Millisecond,
	SoundHurt:  120 * time.Millisecond,
	SoundKill:  50 * time.Millisecond,
}

// Synthesize builds a fresh streamer for s at rate. It returns nil for
// SoundNone.
func Synthesize(s Sound, rate beep.SampleRate) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	switch s {
	case SoundSwing:
		return withGain(tone(Noise, 0, 0, ms(90), rate), 0.35)
	case SoundScream:
		return beep.Take(rate.N(ms(450)), beep.Mix(
			tone(Saw, 520, 180, ms(450), rate),
			withGain(tone(Square, 260, 90, ms(450), rate), 0.4),
		))
	case SoundDash:
		return withGain(tone(Noise, 0, 0, ms(160), rate), 0.5)
	case SoundLevelUp:
		return beep.Seq(
			tone(Square, 523, 523, ms(90), rate),
			tone(Square, 659, 659, ms(90), rate),
			tone(Square, 784, 784, ms(180), rate),
		)
	case SoundOrb:
		return withGain(tone(Sine, 1320, 1760, ms(70), rate), 0.5)
	case SoundBonus:
		return beep.Seq(
			tone(Sine, 880, 880, ms(80), rate),
			tone(Sine, 1320, 1320, ms(160), rate),
		)
	case SoundHurt:
		return withGain(tone(Saw, 160, 90, ms(140), rate), 0.7)
	case SoundKill:
		return withGain(tone(Square, 330, 110, ms(80), rate), 0.4)
	case SoundBoss:
		return beep.Take(rate.N(ms(900)), beep.Mix(
			tone(Square, 70, 55, ms(900), rate),
			withGain(tone(Noise, 0, 0, ms(400), rate), 0.2),
		))
	case SoundGameOver:
		return beep.Seq(
			tone(Saw, 392, 392, ms(250), rate),
			tone(Saw, 330, 330, ms(250), rate),
			tone(Saw, 262, 196, ms(600), rate),
		)
	}
	return nil
}
