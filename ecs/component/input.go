package component

import "github.com/go-gl/mathgl/mgl64"

// Input stores the per-frame input snapshot for an entity.
type Input struct {
	Move mgl64.Vec2
	// RotatePreview is discretised to -1, 0 or 1 per axis.
	RotatePreview mgl64.Vec2

	JumpPressed          bool
	GravitySwitchPressed bool
}

var InputComponent = NewComponent[Input]()
