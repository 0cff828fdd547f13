package loop

import (
	"github.com/tomz197/logastroids/internal/object"
)

// Mode is the session phase.
type Mode int

const (
	ModeStart     Mode = iota // title screen
	ModePlaying               // active gameplay
	ModePaused                // simulation frozen
	ModeGameOver              // ship destroyed, restart prompt
	ModeNameEntry             // game over with a qualifying score
)

var modeNames = [...]string{"start", "playing", "paused", "game_over", "name_entry"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// SessionState is the per-session bookkeeping a tick reads and updates:
// mode, score, level counters and the spawn timer.
type SessionState struct {
	Mode  Mode
	Score int
	Level int

	Spawned    int // asteroids spawned this level, children excluded
	Destroyed  int // asteroids destroyed this level, children included
	SpawnTimer int // frames since the last scheduled spawn

	// BossActive is set from boss entry until the boss is destroyed.
	BossActive bool
	// BossDefeated is set once this level's boss is destroyed.
	BossDefeated bool

	NameBuffer []rune
	Frame      uint64
}

// WorldState holds every live entity, grouped by kind. Entities created
// during a tick are queued with Spawn and join the lists in FlushSpawned.
type WorldState struct {
	Field      object.Field
	Ship       *object.Ship
	Boss       *object.Boss
	Asteroids  []*object.Asteroid
	Bullets    []*object.Projectile
	Rockets    []*object.Projectile
	Fireballs  []*object.Projectile
	PowerUps   []*object.PowerUp
	Explosions []*object.Explosion

	toSpawn []object.Entity
}

// NewWorldState creates an empty world.
func NewWorldState(f object.Field) *WorldState {
	return &WorldState{Field: f}
}

// Spawn queues an entity to be added after the current pass.
func (w *WorldState) Spawn(e object.Entity) {
	w.toSpawn = append(w.toSpawn, e)
}

// FlushSpawned adds all queued entities to the world and clears the queue.
func (w *WorldState) FlushSpawned() {
	for _, e := range w.toSpawn {
		w.add(e)
	}
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

func (w *WorldState) add(e object.Entity) {
	switch o := e.(type) {
	case *object.Ship:
		w.Ship = o
	case *object.Boss:
		w.Boss = o
	case *object.Asteroid:
		w.Asteroids = append(w.Asteroids, o)
	case *object.PowerUp:
		w.PowerUps = append(w.PowerUps, o)
	case *object.Explosion:
		w.Explosions = append(w.Explosions, o)
	case *object.Projectile:
		switch o.Kind() {
		case object.KindBullet:
			w.Bullets = append(w.Bullets, o)
		case object.KindRocket:
			w.Rockets = append(w.Rockets, o)
		case object.KindFireball:
			w.Fireballs = append(w.Fireballs, o)
		}
	}
}

// AsteroidCount is the live asteroid population, including asteroids queued
// this tick.
func (w *WorldState) AsteroidCount() int {
	n := 0
	for _, a := range w.Asteroids {
		if a.Alive() {
			n++
		}
	}
	for _, e := range w.toSpawn {
		if e.Kind() == object.KindAsteroid && e.Alive() {
			n++
		}
	}
	return n
}

// ExplosionCount is the number of explosions still playing.
func (w *WorldState) ExplosionCount() int {
	n := 0
	for _, e := range w.Explosions {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Advance runs one frame of motion and timers for every entity.
func (w *WorldState) Advance() {
	if w.Ship != nil {
		w.Ship.Advance(w.Field)
	}
	if w.Boss != nil {
		w.Boss.Advance(w.Field)
	}
	advanceAll(w.Asteroids, w.Field)
	advanceAll(w.Bullets, w.Field)
	advanceAll(w.Rockets, w.Field)
	advanceAll(w.Fireballs, w.Field)
	advanceAll(w.PowerUps, w.Field)
	advanceAll(w.Explosions, w.Field)
}

func advanceAll[T object.Entity](list []T, f object.Field) {
	for _, e := range list {
		if e.Alive() {
			e.Advance(f)
		}
	}
}

// Compact drops dead entities. It reports whether the ship was removed.
func (w *WorldState) Compact() (shipRemoved bool) {
	if w.Ship != nil && !w.Ship.Alive() {
		w.Ship = nil
		shipRemoved = true
	}
	if w.Boss != nil && !w.Boss.Alive() {
		w.Boss = nil
	}
	w.Asteroids = compact(w.Asteroids)
	w.Bullets = compact(w.Bullets)
	w.Rockets = compact(w.Rockets)
	w.Fireballs = compact(w.Fireballs)
	w.PowerUps = compact(w.PowerUps)
	w.Explosions = compact(w.Explosions)
	return shipRemoved
}

func compact[T object.Entity](list []T) []T {
	kept := list[:0] // reuse backing array
	for _, e := range list {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}

// Clear removes every entity, queued ones included.
func (w *WorldState) Clear() {
	w.Ship = nil
	w.Boss = nil
	w.Asteroids = w.Asteroids[:0]
	w.Bullets = w.Bullets[:0]
	w.Rockets = w.Rockets[:0]
	w.Fireballs = w.Fireballs[:0]
	w.PowerUps = w.PowerUps[:0]
	w.Explosions = w.Explosions[:0]
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// Poses returns the render view of every live entity, back to front.
func (w *WorldState) Poses() []object.Pose {
	n := len(w.Asteroids) + len(w.Bullets) + len(w.Rockets) + len(w.Fireballs) +
		len(w.PowerUps) + len(w.Explosions) + 2
	poses := make([]object.Pose, 0, n)
	poses = appendPoses(poses, w.Explosions)
	poses = appendPoses(poses, w.Asteroids)
	poses = appendPoses(poses, w.PowerUps)
	if w.Boss != nil && w.Boss.Alive() {
		poses = append(poses, w.Boss.Pose())
	}
	poses = appendPoses(poses, w.Fireballs)
	poses = appendPoses(poses, w.Bullets)
	poses = appendPoses(poses, w.Rockets)
	if w.Ship != nil && w.Ship.Alive() {
		poses = append(poses, w.Ship.Pose())
	}
	return poses
}

func appendPoses[T object.Entity](poses []object.Pose, list []T) []object.Pose {
	for _, e := range list {
		if e.Alive() {
			poses = append(poses, e.Pose())
		}
	}
	return poses
}
