package physics

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultGravity is standard Earth gravity along -y.
var DefaultGravity = mgl64.Vec3{0, -9.81, 0}

// RaycastHit describes the closest surface found by World.Raycast.
type RaycastHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Box      *Box
}

// Contact records a body overlapping a trigger during the last step.
type Contact struct {
	Body    *Body
	Trigger *Trigger
}

// World steps dynamic bodies against static boxes and trigger volumes.
type World struct {
	Gravity mgl64.Vec3

	bodies   []*Body
	boxes    []*Box
	triggers []*Trigger
	contacts []Contact
}

func NewWorld() *World {
	return &World{Gravity: DefaultGravity}
}

func (w *World) AddBody(b *Body) {
	if b == nil {
		return
	}
	w.bodies = append(w.bodies, b)
}

func (w *World) RemoveBody(b *Body) {
	if b == nil {
		return
	}
	w.bodies = slices.DeleteFunc(w.bodies, func(o *Body) bool { return o == b })
}

func (w *World) AddBox(b *Box) {
	if b == nil {
		return
	}
	w.boxes = append(w.boxes, b)
}

func (w *World) RemoveBox(b *Box) {
	w.boxes = slices.DeleteFunc(w.boxes, func(o *Box) bool { return o == b })
}

func (w *World) AddTrigger(t *Trigger) {
	if t == nil {
		return
	}
	w.triggers = append(w.triggers, t)
}

func (w *World) RemoveTrigger(t *Trigger) {
	w.triggers = slices.DeleteFunc(w.triggers, func(o *Trigger) bool { return o == t })
}

func (w *World) Bodies() []*Body { return w.bodies }

func (w *World) Boxes() []*Box { return w.boxes }

func (w *World) Triggers() []*Trigger { return w.triggers }

// Contacts returns the trigger overlaps found by the last Step.
func (w *World) Contacts() []Contact { return w.contacts }

// Step integrates every body by dt, resolves penetration against static
// boxes and gathers trigger overlaps.
func (w *World) Step(dt float64) {
	w.contacts = w.contacts[:0]
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		b.integrate(w.Gravity, dt)
		w.resolve(b)
		w.collectContacts(b)
	}
}

func (w *World) resolve(b *Body) {
	for _, box := range w.boxes {
		normal, depth, ok := box.sphereOverlap(b.Center(), b.Radius)
		if !ok {
			continue
		}
		b.position = b.position.Add(normal.Mul(depth))
		if vn := b.velocity.Dot(normal); vn < 0 {
			b.velocity = b.velocity.Sub(normal.Mul(vn))
		}
	}
}

func (w *World) collectContacts(b *Body) {
	center := b.Center()
	for _, t := range w.triggers {
		if _, _, ok := t.sphereOverlap(center, b.Radius); ok {
			w.contacts = append(w.contacts, Contact{Body: b, Trigger: t})
		}
	}
}

// Raycast finds the nearest static box along direction within maxDistance.
// Boxes that contain origin are ignored.
func (w *World) Raycast(origin, direction mgl64.Vec3, maxDistance float64) (RaycastHit, bool) {
	lenSq := direction.Dot(direction)
	if lenSq < 1e-12 || maxDistance <= 0 {
		return RaycastHit{}, false
	}
	dir := direction.Mul(1 / math.Sqrt(lenSq))

	best := RaycastHit{Distance: math.Inf(1)}
	for _, box := range w.boxes {
		t, normal, ok := box.intersectRay(origin, dir)
		if !ok || t > maxDistance || t >= best.Distance {
			continue
		}
		best = RaycastHit{Point: origin.Add(dir.Mul(t)), Normal: normal, Distance: t, Box: box}
	}
	if best.Box == nil {
		return RaycastHit{}, false
	}
	return best, true
}
