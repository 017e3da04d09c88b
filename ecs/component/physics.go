package component

import "github.com/milk9111/gravityshift/physics"

// RigidBody links an entity to its dynamic body in the physics world.
type RigidBody struct {
	Body *physics.Body
}

var RigidBodyComponent = NewComponent[RigidBody]()

// StaticCollider is level geometry.
type StaticCollider struct {
	Box *physics.Box
}

var StaticColliderComponent = NewComponent[StaticCollider]()
