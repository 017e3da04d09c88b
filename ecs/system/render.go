package system

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gravityshift/common"
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/milk9111/gravityshift/physics"
	"golang.org/x/image/colornames"
)

const defaultPixelsPerUnit = 32.0

// boxEdges indexes the corners produced by boxCorners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// RenderSystem draws an orthographic wireframe of the scene as seen from the
// camera entity.
type RenderSystem struct {
	camEntity     ecs.Entity
	PixelsPerUnit float64
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{PixelsPerUnit: defaultPixelsPerUnit}
}

// View projects world points onto the screen.
type View struct {
	Origin mgl64.Vec3
	Right  mgl64.Vec3
	Up     mgl64.Vec3
	Scale  float64
	CX, CY float64
}

func (v View) Project(p mgl64.Vec3) (float32, float32) {
	d := p.Sub(v.Origin)
	return float32(v.CX + d.Dot(v.Right)*v.Scale), float32(v.CY - d.Dot(v.Up)*v.Scale)
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	view := r.view(w, screen)

	ecs.ForEach(w, component.StaticColliderComponent.Kind(), func(e ecs.Entity, sc *component.StaticCollider) {
		if sc.Box != nil {
			drawBox(screen, view, sc.Box.Center(), sc.Box.Max.Sub(sc.Box.Center()), mgl64.QuatIdent(), colornames.Slategray)
		}
	})

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pickup, t *component.Transform) {
		half := mgl64.Vec3{0.25, 0.25, 0.25}
		if p.Trigger != nil {
			half = p.Trigger.Max.Sub(p.Trigger.Center())
		}
		drawBox(screen, view, t.Position, half, t.Rotation, colornames.Gold)
	})

	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.RigidBodyComponent.Kind(), component.LocomotionComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, rb *component.RigidBody, loco *component.Locomotion) {
		if rb.Body == nil {
			return
		}
		drawPlayer(screen, view, rb.Body, loco)
		if holo, ok := ecs.Get(w, e, component.HologramComponent.Kind()); ok && holo.Visible {
			center := rb.Body.Center()
			drawArrow(screen, view, center, center.Add(loco.PendingGravityDirection.Mul(1.5)), colornames.Cyan)
		}
	})
}

func (r *RenderSystem) view(w *ecs.World, screen *ebiten.Image) View {
	bounds := screen.Bounds()
	scale := r.PixelsPerUnit
	if scale <= 0 {
		scale = defaultPixelsPerUnit
	}
	v := View{
		Right: common.Right,
		Up:    common.Up,
		Scale: scale,
		CX:    float64(bounds.Dx()) / 2,
		CY:    float64(bounds.Dy()) / 2,
	}

	if !ecs.IsAlive(w, r.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	if t, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		v.Origin = t.Position
		v.Right = common.RotationRight(t.Rotation)
		v.Up = common.RotationUp(t.Rotation)
	}
	return v
}

func boxCorners(center, half mgl64.Vec3, rot mgl64.Quat) [8]mgl64.Vec3 {
	var corners [8]mgl64.Vec3
	for i := range corners {
		local := mgl64.Vec3{half.X(), half.Y(), half.Z()}
		if i&1 == 0 {
			local[0] = -local[0]
		}
		if i&2 == 0 {
			local[1] = -local[1]
		}
		if i&4 == 0 {
			local[2] = -local[2]
		}
		corners[i] = center.Add(rot.Rotate(local))
	}
	return corners
}

func drawBox(screen *ebiten.Image, view View, center, half mgl64.Vec3, rot mgl64.Quat, clr color.Color) {
	corners := boxCorners(center, half, rot)
	for _, edge := range boxEdges {
		x0, y0 := view.Project(corners[edge[0]])
		x1, y1 := view.Project(corners[edge[1]])
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, true)
	}
}

func drawPlayer(screen *ebiten.Image, view View, body *physics.Body, loco *component.Locomotion) {
	center := body.Center()
	cx, cy := view.Project(center)
	clr := colornames.Lightgreen
	if loco.Dead {
		clr = colornames.Red
	}
	vector.StrokeCircle(screen, cx, cy, float32(body.Radius*view.Scale), 2, clr, true)

	facing := center.Add(common.RotationForward(body.Rotation()).Mul(body.Radius * 1.5))
	fx, fy := view.Project(facing)
	vector.StrokeLine(screen, cx, cy, fx, fy, 2, clr, true)

	drawArrow(screen, view, center, center.Add(loco.GravityDirection.Mul(body.Radius*2)), colornames.Orange)
}

func drawArrow(screen *ebiten.Image, view View, from, to mgl64.Vec3, clr color.Color) {
	x0, y0 := view.Project(from)
	x1, y1 := view.Project(to)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
	vector.FillRect(screen, x1-3, y1-3, 6, 6, clr, false)
}
