package loop

import (
	"github.com/tomz197/logastroids/internal/object"
	"github.com/tomz197/logastroids/internal/score"
)

// Snapshot is the immutable per-frame view handed to renderers and audio.
type Snapshot struct {
	Mode  Mode
	Frame uint64
	Field object.Field

	Score     int
	Level     int
	Health    int
	MaxHealth int
	Rockets   int

	BossHealth    int
	BossMaxHealth int

	Entities []object.Pose
	Events   []Event

	// Banner is the description of the last collected power-up while it is
	// still on screen.
	Banner string

	HighScores score.Table
	NameBuffer string
	Quit       bool
}
