// Package viewer runs the interactive area light viewer.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/arealight/internal/arealight"
	"github.com/Faultbox/arealight/internal/config"
	"github.com/Faultbox/arealight/internal/engine/camera"
	"github.com/Faultbox/arealight/internal/engine/debug"
	"github.com/Faultbox/arealight/internal/engine/input"
	"github.com/Faultbox/arealight/internal/engine/lighting"
	"github.com/Faultbox/arealight/internal/engine/renderer"
	"github.com/Faultbox/arealight/internal/engine/window"
	"github.com/Faultbox/arealight/internal/logger"
	"github.com/Faultbox/arealight/internal/scene"
)

// App is the viewer instance.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	scene    *scene.State
	lights   *lighting.AreaLightBuffer

	screenshots       *debug.Screenshots
	screenshotPending bool

	dragging bool
	lastErr  string
}

// New creates the scene, window and renderer.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("mode", cfg.Scene.Mode),
		zap.String("light", cfg.Scene.Light),
	)

	s, err := scene.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	a := &App{
		config: cfg,
		scene:  s,
		camera: camera.NewOrbitCamera(),
		lights: lighting.NewAreaLightBuffer(),
		input:  input.New(),

		screenshots: debug.NewScreenshots("screenshots", "arealight"),
	}
	a.frameCamera()

	a.window, err = window.New(window.Config{
		Title:      a.title(),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.GetDrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:           width,
		Height:          height,
		PlaneHalfExtent: cfg.Scene.PlaneHalfExtent,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.camera.SetViewport(width, height)

	logger.Info("viewer initialized")
	return a, nil
}

// Run starts the main loop. It returns when the window closes, Esc is
// pressed, the frame limit is reached or a fatal light error occurs.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frames := 0
	fpsFrames := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop", zap.Int("frame_limit", a.config.Scene.Frames))

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			break
		}
		if err := a.handleInput(dt); err != nil {
			return err
		}

		if err := a.update(dt); err != nil {
			return err
		}
		a.render()
		if a.screenshotPending {
			a.saveScreenshot()
		}
		a.window.SwapBuffers()

		frames++
		if limit := a.config.Scene.Frames; limit > 0 && frames >= limit {
			logger.Info("frame limit reached", zap.Int("frames", frames))
			break
		}

		fpsFrames++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", fpsFrames),
				zap.Duration("dt", time.Duration(dt*float64(time.Second))),
				zap.Int("lights", a.lights.Count),
			)
			fpsFrames = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleInput(dt float64) error {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			width, height := a.window.GetDrawableSize()
			a.renderer.Resize(width, height)
			a.camera.SetViewport(width, height)

		case input.EventKeyDown:
			if event.Repeat {
				continue
			}
			keepRunning, err := a.apply(actionFor(event.Key))
			if err != nil {
				return fmt.Errorf("applying key %d: %w", event.Key, err)
			}
			if !keepRunning {
				a.running = false
			}
			a.window.SetTitle(a.title())

		case input.EventMouseDown:
			a.dragging = event.Button == sdl.BUTTON_LEFT
		case input.EventMouseUp:
			a.dragging = false
		case input.EventMouseMove:
			if a.dragging {
				a.camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
			}
		case input.EventMouseWheel:
			a.camera.HandleZoom(float32(event.DeltaY))
		}
	}

	a.rotate(
		a.input.IsKeyDown(sdl.SCANCODE_LEFT),
		a.input.IsKeyDown(sdl.SCANCODE_RIGHT),
		a.input.IsKeyDown(sdl.SCANCODE_UP),
		a.input.IsKeyDown(sdl.SCANCODE_DOWN),
		dt,
	)
	return nil
}

// update advances the scene and refills the light buffer. Invalid light
// geometry is logged and the light keeps its last points; a negative
// eigenvalue aborts.
func (a *App) update(dt float64) error {
	if err := a.scene.Update(dt); err != nil {
		if arealight.IsFatal(err) {
			return fmt.Errorf("scene update: %w", err)
		}
		if msg := err.Error(); msg != a.lastErr {
			logger.Warn("light update failed", zap.Error(err))
			a.lastErr = msg
		}
	} else {
		a.lastErr = ""
	}

	a.lights.SetLights(a.scene.Active())
	return nil
}

func (a *App) render() {
	a.renderer.Draw(renderer.Frame{
		View:     a.camera.ViewMatrix(),
		Proj:     a.camera.ProjectionMatrix(),
		Eye:      a.camera.Position(),
		Lights:   a.lights.Lights,
		Buffer:   a.lights,
		Material: a.scene.Material,
	})
}

func (a *App) saveScreenshot() {
	a.screenshotPending = false
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.Save(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (a *App) title() string {
	if a.scene.Mode == scene.ModeShowcase {
		return fmt.Sprintf("arealight | showcase | %d lights", len(a.scene.Active()))
	}
	return fmt.Sprintf("arealight | %s | rot y %.0f z %.0f", a.scene.Selected, a.scene.RotY, a.scene.RotZ)
}
