package loop

import "github.com/tomz197/logastroids/internal/object"

// EventKind identifies something that happened during a tick. Events feed
// presentation (audio cues, banners) and never affect the simulation.
type EventKind int

const (
	EventFire EventKind = iota
	EventRocket
	EventAsteroidHit
	EventAsteroidDestroyed
	EventShieldHit
	EventShipExploding
	EventShipDestroyed
	EventPowerUp
	EventLevelUp
	EventBossSpawned
	EventBossHit
	EventBossDefeated
	EventGameOver
	EventHighScore
)

var eventNames = [...]string{
	"fire", "rocket", "asteroid_hit", "asteroid_destroyed", "shield_hit",
	"ship_exploding", "ship_destroyed", "powerup", "level_up", "boss_spawned",
	"boss_hit", "boss_defeated", "game_over", "high_score",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is one tick outcome.
type Event struct {
	Kind    EventKind
	X, Y    float64
	PowerUp object.PowerUpType // EventPowerUp
	Level   int                // EventLevelUp, EventBossSpawned
	Score   int                // EventGameOver, EventHighScore
}
