package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gravityshift/ecs"
	"github.com/milk9111/gravityshift/ecs/component"
)

type Action int

const (
	ActionMove Action = iota
	ActionRotatePreview
	ActionJump
	ActionGravitySwitch
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionRotatePreview:
		return "rotate_preview"
	case ActionJump:
		return "jump"
	case ActionGravitySwitch:
		return "gravity_switch"
	default:
		return "unknown"
	}
}

// InputSource is polled once per frame.
type InputSource interface {
	PollAxis(action Action) mgl64.Vec2
	PollEdgeTrigger(action Action) bool
}

// Toggleable sources are enabled and disabled with the input system.
type Toggleable interface {
	Enable()
	Disable()
}

const previewAxisThreshold = 0.5

// InputSystem copies the polled input into every Input component.
type InputSystem struct {
	source  InputSource
	enabled bool
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source, enabled: true}
}

func (i *InputSystem) Start() {
	if t, ok := i.source.(Toggleable); ok {
		t.Enable()
	}
	i.enabled = true
}

// Stop disables the source; snapshots resolve to zero until Start.
func (i *InputSystem) Stop() {
	if t, ok := i.source.(Toggleable); ok {
		t.Disable()
	}
	i.enabled = false
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var snapshot component.Input
	if i.enabled && i.source != nil {
		snapshot = component.Input{
			Move:                 clampAxis(i.source.PollAxis(ActionMove)),
			RotatePreview:        discretizeAxis(i.source.PollAxis(ActionRotatePreview)),
			JumpPressed:          i.source.PollEdgeTrigger(ActionJump),
			GravitySwitchPressed: i.source.PollEdgeTrigger(ActionGravitySwitch),
		}
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		if ecs.Has(w, e, component.DisabledComponent.Kind()) {
			*input = component.Input{}
			return
		}
		*input = snapshot
	})
}

func clampAxis(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{mgl64.Clamp(v.X(), -1, 1), mgl64.Clamp(v.Y(), -1, 1)}
}

func discretizeAxis(v mgl64.Vec2) mgl64.Vec2 {
	step := func(f float64) float64 {
		switch {
		case f >= previewAxisThreshold:
			return 1
		case f <= -previewAxisThreshold:
			return -1
		default:
			return 0
		}
	}
	return mgl64.Vec2{step(v.X()), step(v.Y())}
}

// KeyboardInput reads WASD, arrows, Space and E plus the first standard
// gamepad.
type KeyboardInput struct {
	disabled bool
}

func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

func (k *KeyboardInput) Enable()  { k.disabled = false }
func (k *KeyboardInput) Disable() { k.disabled = true }

const stickDeadzone = 0.2

func (k *KeyboardInput) PollAxis(action Action) mgl64.Vec2 {
	if k.disabled {
		return mgl64.Vec2{}
	}

	switch action {
	case ActionMove:
		v := keyAxis(ebiten.KeyA, ebiten.KeyD, ebiten.KeyS, ebiten.KeyW)
		if id, ok := firstGamepad(); ok {
			lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
			if math.Hypot(lx, ly) > stickDeadzone {
				// Gamepad vertical axes grow downwards.
				v = mgl64.Vec2{lx, -ly}
			}
		}
		return v
	case ActionRotatePreview:
		v := keyAxis(ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowDown, ebiten.KeyArrowUp)
		if id, ok := firstGamepad(); ok && v == (mgl64.Vec2{}) {
			v = buttonAxis(id,
				ebiten.StandardGamepadButtonLeftLeft, ebiten.StandardGamepadButtonLeftRight,
				ebiten.StandardGamepadButtonLeftBottom, ebiten.StandardGamepadButtonLeftTop)
		}
		return v
	default:
		return mgl64.Vec2{}
	}
}

func (k *KeyboardInput) PollEdgeTrigger(action Action) bool {
	if k.disabled {
		return false
	}

	id, hasPad := firstGamepad()
	switch action {
	case ActionJump:
		return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			(hasPad && inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom))
	case ActionGravitySwitch:
		return inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			(hasPad && inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight))
	default:
		return false
	}
}

func keyAxis(left, right, down, up ebiten.Key) mgl64.Vec2 {
	var v mgl64.Vec2
	if ebiten.IsKeyPressed(left) {
		v[0]--
	}
	if ebiten.IsKeyPressed(right) {
		v[0]++
	}
	if ebiten.IsKeyPressed(down) {
		v[1]--
	}
	if ebiten.IsKeyPressed(up) {
		v[1]++
	}
	return v
}

func buttonAxis(id ebiten.GamepadID, left, right, down, up ebiten.StandardGamepadButton) mgl64.Vec2 {
	var v mgl64.Vec2
	if ebiten.IsStandardGamepadButtonPressed(id, left) {
		v[0]--
	}
	if ebiten.IsStandardGamepadButtonPressed(id, right) {
		v[0]++
	}
	if ebiten.IsStandardGamepadButtonPressed(id, down) {
		v[1]--
	}
	if ebiten.IsStandardGamepadButtonPressed(id, up) {
		v[1]++
	}
	return v
}

func firstGamepad() (ebiten.GamepadID, bool) {
	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return 0, false
	}
	return gamepads[0], true
}
