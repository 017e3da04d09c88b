package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
	"github.com/milk9111/gravityshift/physics"
	"golang.org/x/image/colornames"
)

const (
	debugMapSize  = 200
	debugMapScale = 8.0
	debugMargin   = 10
)

// DrawPhysicsDebug draws a top-down (x/z) map of the physics world in the
// top-right corner of the screen.
func DrawPhysicsDebug(pw *physics.World, screen *ebiten.Image) {
	if pw == nil || screen == nil {
		return
	}

	left := float32(screen.Bounds().Dx() - debugMapSize - debugMargin)
	top := float32(debugMargin)
	vector.FillRect(screen, left, top, debugMapSize, debugMapSize, colornames.Black, false)
	vector.StrokeRect(screen, left, top, debugMapSize, debugMapSize, 1, colornames.Dimgray, false)

	cx := left + debugMapSize/2
	cy := top + debugMapSize/2
	toMap := func(x, z float64) (float32, float32) {
		return cx + float32(x*debugMapScale), cy - float32(z*debugMapScale)
	}

	for _, box := range pw.Boxes() {
		x0, y0 := toMap(box.Min.X(), box.Max.Z())
		x1, y1 := toMap(box.Max.X(), box.Min.Z())
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colornames.Slategray, false)
	}
	for _, t := range pw.Triggers() {
		c := t.Center()
		x, y := toMap(c.X(), c.Z())
		vector.FillRect(screen, x-2, y-2, 4, 4, colornames.Gold, false)
	}
	for _, b := range pw.Bodies() {
		c := b.Center()
		x, y := toMap(c.X(), c.Z())
		vector.StrokeCircle(screen, x, y, float32(b.Radius*debugMapScale), 1, colornames.Lightgreen, false)
	}
	for _, contact := range pw.Contacts() {
		c := contact.Trigger.Center()
		x, y := toMap(c.X(), c.Z())
		vector.StrokeCircle(screen, x, y, 5, 1, colornames.Red, false)
	}
}

func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	loco, ok := ecs.Get(w, player, component.LocomotionComponent.Kind())
	if !ok {
		return
	}

	g := loco.GravityDirection
	p := loco.PendingGravityDirection
	text := fmt.Sprintf("Gravity: (%.2f, %.2f, %.2f)\nPending: (%.2f, %.2f, %.2f) [%s]\nGrounded: %v\nFallTimer: %.2f\nDead: %v",
		g.X(), g.Y(), g.Z(), p.X(), p.Y(), p.Z(), loco.SwitchState, loco.Grounded, loco.FallTimer, loco.Dead)
	if rb, ok := ecs.Get(w, player, component.RigidBodyComponent.Kind()); ok && rb.Body != nil {
		pos := rb.Body.Position()
		vel := rb.Body.Velocity()
		text += fmt.Sprintf("\nPos: (%.2f, %.2f, %.2f)\nVel: (%.2f, %.2f, %.2f)", pos.X(), pos.Y(), pos.Z(), vel.X(), vel.Y(), vel.Z())
	}
	if anim, ok := ecs.Get(w, player, component.AnimatorComponent.Kind()); ok {
		text += "\nAnim: " + anim.Current
	}
	ebitenutil.DebugPrintAt(screen, text, 10, 40)
}
