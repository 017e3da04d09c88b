package component

import "github.com/go-gl/mathgl/mgl64"

// Camera follows a target. It keeps its own yaw and copies the target's
// pitch and roll so the view tilts with gravity.
type Camera struct {
	TargetName string
	Offset     mgl64.Vec3
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
