package component

import "github.com/go-gl/mathgl/mgl64"

// Hologram is the gravity preview carried by the player. Pivot is stepped
// in 90° turns and its negated up axis is the pending gravity direction.
type Hologram struct {
	Pivot     mgl64.Quat
	Visible   bool
	LastInput mgl64.Vec2
	IdleTime  float64
}

func NewHologram() *Hologram {
	return &Hologram{Pivot: mgl64.QuatIdent()}
}

var HologramComponent = NewComponent[Hologram]()
