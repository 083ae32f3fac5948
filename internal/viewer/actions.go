package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/arealight/internal/arealight"
	"github.com/Faultbox/arealight/internal/scene"
)

// Action is a discrete command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionSelectRectangle
	ActionSelectCylinder
	ActionSelectDisk
	ActionSelectSphere
	ActionReset
	ActionToggleMode
	ActionScreenshot
	ActionQuit
)

// rotationSpeed is how fast held arrow keys turn the selected light, in deg/s.
const rotationSpeed = 90

var keyBindings = map[sdl.Scancode]Action{
	sdl.SCANCODE_1:      ActionSelectRectangle,
	sdl.SCANCODE_2:      ActionSelectCylinder,
	sdl.SCANCODE_3:      ActionSelectDisk,
	sdl.SCANCODE_4:      ActionSelectSphere,
	sdl.SCANCODE_R:      ActionReset,
	sdl.SCANCODE_TAB:    ActionToggleMode,
	sdl.SCANCODE_F12:    ActionScreenshot,
	sdl.SCANCODE_ESCAPE: ActionQuit,
}

// actionFor returns the action bound to a key.
func actionFor(key sdl.Scancode) Action {
	return keyBindings[key]
}

// apply runs a discrete action. It returns false when the viewer should quit.
func (a *App) apply(action Action) (bool, error) {
	switch action {
	case ActionSelectRectangle:
		a.scene.Select(arealight.TypeRectangle)
	case ActionSelectCylinder:
		a.scene.Select(arealight.TypeCylinder)
	case ActionSelectDisk:
		a.scene.Select(arealight.TypeDisk)
	case ActionSelectSphere:
		a.scene.Select(arealight.TypeSphere)
	case ActionReset:
		if err := a.scene.Reset(); err != nil {
			return true, err
		}
	case ActionToggleMode:
		a.scene.ToggleMode()
		a.frameCamera()
	case ActionScreenshot:
		a.screenshotPending = true
	case ActionQuit:
		return false, nil
	}
	return true, nil
}

// rotate turns the selected light from the held arrow keys.
func (a *App) rotate(left, right, up, down bool, dt float64) {
	step := float32(rotationSpeed * dt)
	var dy, dz float32
	if left {
		dy -= step
	}
	if right {
		dy += step
	}
	if up {
		dz += step
	}
	if down {
		dz -= step
	}
	if dy != 0 || dz != 0 {
		a.scene.Rotate(dy, dz)
	}
}

func (a *App) frameCamera() {
	if a.scene.Mode == scene.ModeShowcase {
		a.camera.FrameShowcase()
	} else {
		a.camera.FrameSingle()
	}
}
