package loop

import (
	"math/rand"

	"github.com/tomz197/logastroids/internal/config"
	"github.com/tomz197/logastroids/internal/object"
)

// DropTable decides whether a destroyed asteroid leaves a power-up and of
// which type.
type DropTable struct {
	Chance float64

	health       float64
	invulnerable float64
	rockets      float64
}

// NewDropTable builds a table from configured chance and weights. The
// shields weight is implied: it takes whatever mass the other three leave.
func NewDropTable(p config.PowerUpConfig) DropTable {
	return DropTable{
		Chance:       p.DropChance,
		health:       p.WeightHealth,
		invulnerable: p.WeightInvulnerable,
		rockets:      p.WeightRockets,
	}
}

// Roll draws the drop gate and, when it passes, a second independent value
// for the type.
func (d DropTable) Roll(rng *rand.Rand) (object.PowerUpType, bool) {
	if rng.Float64() >= d.Chance {
		return 0, false
	}
	return d.Pick(rng.Float64()), true
}

// Pick maps r in [0,1) onto the cumulative buckets Health, Invulnerability,
// Rockets, Shields. Every r resolves to a type.
func (d DropTable) Pick(r float64) object.PowerUpType {
	switch {
	case r < d.health:
		return object.PowerUpHealth
	case r < d.health+d.invulnerable:
		return object.PowerUpInvulnerability
	case r < d.health+d.invulnerable+d.rockets:
		return object.PowerUpRockets
	default:
		return object.PowerUpShields
	}
}
