package object

import (
	"fmt"

	"github.com/tomz197/logastroids/internal/config"
)

// PowerUpType is the effect a power-up grants.
type PowerUpType int

const (
	PowerUpHealth PowerUpType = iota
	PowerUpInvulnerability
	PowerUpRockets
	PowerUpShields
)

// PowerUpTypes lists every type in drop-table order.
var PowerUpTypes = []PowerUpType{PowerUpHealth, PowerUpInvulnerability, PowerUpRockets, PowerUpShields}

func (t PowerUpType) String() string {
	switch t {
	case PowerUpHealth:
		return "health"
	case PowerUpInvulnerability:
		return "invulnerability"
	case PowerUpRockets:
		return "rockets"
	case PowerUpShields:
		return "shields"
	}
	return "unknown"
}

// Description is the pickup banner text for the configured effect sizes.
func (t PowerUpType) Description(p config.PowerUpConfig, fps int) string {
	switch t {
	case PowerUpHealth:
		return "Health: +1 max shield, fully restored"
	case PowerUpInvulnerability:
		if fps <= 0 {
			return "Invulnerability: untouchable"
		}
		return fmt.Sprintf("Invulnerability: %g seconds untouchable", float64(p.InvulnerableDuration)/float64(fps))
	case PowerUpRockets:
		return fmt.Sprintf("Rockets: +%d rockets (F to fire)", p.RocketsPerPickup)
	case PowerUpShields:
		return "Shields: fully restored"
	}
	return ""
}

// PowerUp falls toward the bottom edge and expires if not collected.
// It never wraps.
type PowerUp struct {
	Body

	Type     PowerUpType
	Age      int
	Lifetime int
}

// NewPowerUp drops a power-up of type t at (x, y).
func NewPowerUp(t PowerUpType, x, y float64, p config.PowerUpConfig) *PowerUp {
	return &PowerUp{
		Body:     Body{X: x, Y: y, VY: p.FallSpeed, Radius: p.Radius},
		Type:     t,
		Lifetime: p.Lifetime,
	}
}

// Kind implements Entity.
func (p *PowerUp) Kind() Kind { return KindPowerUp }

// Advance implements Entity.
func (p *PowerUp) Advance(f Field) {
	p.Y += p.VY
	p.Age++
	if p.Y-p.Radius > f.Height || p.Age > p.Lifetime {
		p.Kill()
	}
}

// Pose implements Entity.
func (p *PowerUp) Pose() Pose {
	return Pose{
		Kind:    KindPowerUp,
		X:       p.X,
		Y:       p.Y,
		Radius:  p.Radius,
		Scale:   1,
		PowerUp: p.Type,
	}
}
