// Package scene owns the mutable state of the area light viewer: the light
// selection, its pose, the ground material and the animated showcase lights.
// The GUI and headless tools drive it through Update.
package scene

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/arealight/internal/arealight"
	"github.com/Faultbox/arealight/internal/config"
	"github.com/Faultbox/arealight/internal/logger"
	"github.com/Faultbox/arealight/pkg/math"
)

var (
	unitX = mgl32.Vec3{1, 0, 0}
	unitY = mgl32.Vec3{0, 1, 0}
	unitZ = mgl32.Vec3{0, 0, 1}
)

// State is the scene. It is owned by a single goroutine; Update fans out
// internally and returns once all lights are consistent.
type State struct {
	Mode     Mode
	Selected arealight.Type
	RotY     float32 // degrees
	RotZ     float32 // degrees
	Material config.MaterialConfig

	// Lights holds one light per type, indexed by type.
	Lights   [arealight.NumTypes]*arealight.Light
	Orbiters []*Orbiter
	Movers   []*MovingSphere

	// Elapsed is the simulated time in seconds.
	Elapsed float64

	cfg  *config.Config
	rng  *rand.Rand
	pool worker.DynamicWorkerPool
	// poses holds the normalized preset axes each light is rotated from.
	poses [arealight.NumTypes]mgl32.Mat3
}

// New builds the scene described by cfg. cfg should already be validated.
func New(cfg *config.Config) (*State, error) {
	mode, err := ParseMode(cfg.Scene.Mode)
	if err != nil {
		return nil, err
	}
	selected, err := arealight.ParseType(cfg.Scene.Light)
	if err != nil {
		return nil, err
	}

	s := &State{
		Mode:     mode,
		Selected: selected,
		cfg:      cfg,
		pool:     worker.NewDynamicWorkerPool(runtime.NumCPU(), 256, 1*time.Second),
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset restores lights, material, rotation and animation to the configured
// defaults. Mode and selection are kept.
func (s *State) Reset() error {
	lights, err := s.cfg.Lights.BuildAll()
	if err != nil {
		return err
	}
	s.Lights = lights
	for _, t := range arealight.Types {
		p := s.cfg.Lights.Preset(t)
		s.poses[t] = mgl32.Mat3FromCols(unit(p.AxisX), unit(p.AxisY), unit(p.AxisZ))
	}

	s.Material = s.cfg.Material
	s.RotY = s.cfg.Scene.RotationY
	s.RotZ = s.cfg.Scene.RotationZ
	s.Elapsed = 0
	s.rng = rand.New(rand.NewSource(s.cfg.Scene.Seed))

	if s.Orbiters, err = newOrbiters(s.rng); err != nil {
		return fmt.Errorf("orbiters: %w", err)
	}

	s.Movers = make([]*MovingSphere, s.cfg.Scene.MovingSpheres)
	for i := range s.Movers {
		if s.Movers[i], err = newMovingSphere(s.rng); err != nil {
			return fmt.Errorf("moving sphere %d: %w", i, err)
		}
	}

	logger.Debug("scene reset",
		zap.Stringer("mode", s.Mode),
		zap.Stringer("selected", s.Selected),
		zap.Int("movers", len(s.Movers)),
		zap.Int64("seed", s.cfg.Scene.Seed))
	return nil
}

// Select makes t the light shown in single mode.
func (s *State) Select(t arealight.Type) {
	s.Selected = t
}

// ToggleMode switches between single and showcase mode.
func (s *State) ToggleMode() {
	if s.Mode == ModeSingle {
		s.Mode = ModeShowcase
	} else {
		s.Mode = ModeSingle
	}
}

// Rotate adds to the pose angles of the selected light, in degrees.
func (s *State) Rotate(dy, dz float32) {
	s.RotY = wrapDegrees(s.RotY + dy)
	s.RotZ = wrapDegrees(s.RotZ + dz)
}

// ApplyRotation poses the selected light: its preset axes rotated about Y by
// RotY, then about Z by RotZ. Points are not recomputed.
func (s *State) ApplyRotation() {
	rot := math.RotationYZ(s.RotY, s.RotZ)
	pose := rot.Mul3(s.poses[s.Selected])
	x, y, z := pose.Col(0), pose.Col(1), pose.Col(2)

	l := s.Lights[s.Selected]
	switch s.Selected {
	case arealight.TypeRectangle, arealight.TypeDisk:
		rd, _ := l.RectDisk()
		rd.DirX, rd.DirY = x, y
	case arealight.TypeCylinder:
		c, _ := l.Cylinder()
		c.Tangent = x
	case arealight.TypeSphere:
		e, _ := l.Ellipsoid()
		e.DirX, e.DirY, e.DirZ = x, y, z
	}
}

// Update advances the scene by dt seconds and recomputes the points of every
// live light. The first failure is returned; lights that failed keep their
// previous points.
func (s *State) Update(dt float64) error {
	s.Elapsed += dt

	if s.Mode == ModeSingle {
		s.ApplyRotation()
		for _, l := range s.Lights {
			if err := l.UpdatePoints(); err != nil {
				return fmt.Errorf("%s light: %w", l.Type(), err)
			}
		}
		return nil
	}

	for _, o := range s.Orbiters {
		if err := o.pose(s.Elapsed); err != nil {
			return fmt.Errorf("orbiting %s light: %w", o.Light.Type(), err)
		}
	}
	return s.stepMovers(float32(dt))
}

// stepMovers advances the moving spheres in parallel, one task per sphere.
func (s *State) stepMovers(dt float32) error {
	limit := s.cfg.Scene.PlaneHalfExtent - moverMargin
	errs := make([]error, len(s.Movers))

	var wg sync.WaitGroup
	for i, m := range s.Movers {
		wg.Add(1)
		s.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				errs[i] = m.step(dt, limit)
				return nil, errs[i]
			},
		})
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("moving sphere %d: %w", i, err)
		}
	}
	return nil
}

// Active returns the lights the shading stage reads this frame.
func (s *State) Active() []*arealight.Light {
	if s.Mode == ModeSingle {
		return []*arealight.Light{s.Lights[s.Selected]}
	}

	active := make([]*arealight.Light, 0, len(s.Orbiters)+len(s.Movers))
	for _, o := range s.Orbiters {
		active = append(active, o.Light)
	}
	for _, m := range s.Movers {
		active = append(active, m.Light)
	}
	return active
}

func wrapDegrees(d float32) float32 {
	for d > 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}
	return d
}

func unit(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}
