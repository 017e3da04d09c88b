package component

import "github.com/go-gl/mathgl/mgl64"

type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// NewTransform returns an identity transform at position.
func NewTransform(position mgl64.Vec3) *Transform {
	return &Transform{Position: position, Rotation: mgl64.QuatIdent(), Scale: mgl64.Vec3{1, 1, 1}}
}

var TransformComponent = NewComponent[Transform]()
