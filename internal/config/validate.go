package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/arealight/internal/arealight"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Roughness bounds accepted by the GGX fit tables.
const (
	MinRoughness = 0.08
	MaxRoughness = 1.0
)

// MaxMovingSpheres is the upper bound for scene.moving_spheres.
const MaxMovingSpheres = 28

// Validate checks the config for values the scene cannot use.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		fail("graphics size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}

	switch c.Scene.Mode {
	case ModeSingle, ModeShowcase:
	default:
		fail("scene.mode %q", c.Scene.Mode)
	}
	if _, err := arealight.ParseType(c.Scene.Light); err != nil {
		fail("scene.light: %v", err)
	}
	if c.Scene.MovingSpheres < 0 || c.Scene.MovingSpheres > MaxMovingSpheres {
		fail("scene.moving_spheres %d outside [0, %d]", c.Scene.MovingSpheres, MaxMovingSpheres)
	}
	if c.Scene.PlaneHalfExtent <= 0 {
		fail("scene.plane_half_extent %g", c.Scene.PlaneHalfExtent)
	}

	m := c.Material
	if m.Roughness < MinRoughness || m.Roughness > MaxRoughness {
		fail("material.roughness %g outside [%g, %g]", m.Roughness, MinRoughness, MaxRoughness)
	}
	if m.Diffuse < 0 || m.Specular < 0 {
		fail("material.diffuse/specular must be non-negative")
	}

	for _, t := range arealight.Types {
		if err := c.Lights.Preset(t).validate(t); err != nil {
			fail("lights.%s: %v", t, err)
		}
	}

	return errors.Join(errs...)
}

func (p *LightPreset) validate(t arealight.Type) error {
	if p.Intensity < 0 {
		return fmt.Errorf("intensity %g", p.Intensity)
	}

	var extents []float32
	switch t {
	case arealight.TypeRectangle, arealight.TypeDisk:
		extents = []float32{p.HalfX, p.HalfY}
		if p.AxisX.Len() == 0 || p.AxisY.Len() == 0 {
			return errors.New("zero axis")
		}
	case arealight.TypeCylinder:
		extents = []float32{p.Length, p.Radius}
		if p.AxisX.Len() == 0 {
			return errors.New("zero tangent")
		}
	case arealight.TypeSphere:
		// Axis independence is checked by the reduction itself.
		extents = []float32{p.LengthX, p.LengthY, p.LengthZ}
	}

	for _, e := range extents {
		if !(e > 0) {
			return fmt.Errorf("non-positive extent %g", e)
		}
	}
	return nil
}
