package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is a static axis-aligned collider.
type Box struct {
	Tag string
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBox builds a box from its centre and half extents.
func NewBox(center, halfExtents mgl64.Vec3) *Box {
	return &Box{Min: center.Sub(halfExtents), Max: center.Add(halfExtents)}
}

func (b *Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b *Box) contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] <= b.Min[i] || p[i] >= b.Max[i] {
			return false
		}
	}
	return true
}

func (b *Box) closestPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(p[0], b.Min[0], b.Max[0]),
		mgl64.Clamp(p[1], b.Min[1], b.Max[1]),
		mgl64.Clamp(p[2], b.Min[2], b.Max[2]),
	}
}

// sphereOverlap returns the push-out normal and depth for a sphere touching
// the box, or ok=false when they are apart.
func (b *Box) sphereOverlap(center mgl64.Vec3, radius float64) (normal mgl64.Vec3, depth float64, ok bool) {
	if b.contains(center) {
		best := math.Inf(1)
		for i := 0; i < 3; i++ {
			if d := center[i] - b.Min[i]; d < best {
				best = d
				normal = mgl64.Vec3{}
				normal[i] = -1
			}
			if d := b.Max[i] - center[i]; d < best {
				best = d
				normal = mgl64.Vec3{}
				normal[i] = 1
			}
		}
		return normal, best + radius, true
	}

	diff := center.Sub(b.closestPoint(center))
	distSq := diff.Dot(diff)
	if distSq >= radius*radius {
		return mgl64.Vec3{}, 0, false
	}
	dist := math.Sqrt(distSq)
	return diff.Mul(1 / dist), radius - dist, true
}

// intersectRay returns the entry distance of a ray into the box. Rays that
// start inside the box do not hit it.
func (b *Box) intersectRay(origin, dir mgl64.Vec3) (t float64, normal mgl64.Vec3, ok bool) {
	tMin, tMax := math.Inf(-1), math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (b.Min[i] - origin[i]) * inv
		t2 := (b.Max[i] - origin[i]) * inv
		n := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			n = 1
		}
		if t1 > tMin {
			tMin = t1
			normal = mgl64.Vec3{}
			normal[i] = n
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, mgl64.Vec3{}, false
		}
	}
	if tMin < 0 {
		return 0, mgl64.Vec3{}, false
	}
	return tMin, normal, true
}

// Trigger is a non-solid volume that reports overlaps.
type Trigger struct {
	Box
	// Owner lets callers map a contact back to whatever spawned the trigger.
	Owner any
}

// NewTrigger builds a trigger volume from its centre and half extents.
func NewTrigger(tag string, center, halfExtents mgl64.Vec3) *Trigger {
	t := &Trigger{Box: *NewBox(center, halfExtents)}
	t.Tag = tag
	return t
}
