package sim

import "lasthuman/internal/geom"

type EventKind int

const (
	AttackFired EventKind = iota
	ScreamFired
	DashStarted
	LevelUp
	OrbPickup
	BonusPickup
	PlayerHit
	EnemyKilled
	BossSpawned
	GameOver
)

var eventNames = [...]string{
	AttackFired: "attack",
	ScreamFired: "scream",
	DashStarted: "dash",
	LevelUp:     "levelup",
	OrbPickup:   "orb",
	BonusPickup: "bonus",
	PlayerHit:   "hit",
	EnemyKilled: "kill",
	BossSpawned: "boss",
	GameOver:    "gameover",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is something an outside layer (audio, HUD effects) may react to.
// Value carries the kind-specific number: damage for PlayerHit, xp for
// OrbPickup, the new level for LevelUp.
type Event struct {
	Kind  EventKind
	Pos   geom.Vec
	Value float64
}

type EventSink interface {
	Emit(Event)
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

type nopSink struct{}

func (nopSink) Emit(Event) {}
