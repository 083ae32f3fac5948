package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/arealight/internal/arealight"
)

// Preset returns the preset for a light type.
func (c *LightsConfig) Preset(t arealight.Type) *LightPreset {
	switch t {
	case arealight.TypeRectangle:
		return &c.Rectangle
	case arealight.TypeCylinder:
		return &c.Cylinder
	case arealight.TypeDisk:
		return &c.Disk
	default:
		return &c.Sphere
	}
}

// Build creates a light of type t from the preset. Axes are normalized.
func (p LightPreset) Build(t arealight.Type) (*arealight.Light, error) {
	x, y, z := unit(p.AxisX), unit(p.AxisY), unit(p.AxisZ)

	switch t {
	case arealight.TypeRectangle, arealight.TypeDisk:
		return arealight.New(t, p.Color, p.Center, p.Intensity, &arealight.RectDisk{
			DirX: x, DirY: y, HalfX: p.HalfX, HalfY: p.HalfY,
		})
	case arealight.TypeCylinder:
		return arealight.New(t, p.Color, p.Center, p.Intensity, &arealight.Cylinder{
			Tangent: x, Length: p.Length, Radius: p.Radius,
		})
	case arealight.TypeSphere:
		return arealight.New(t, p.Color, p.Center, p.Intensity, &arealight.Ellipsoid{
			DirX: x, DirY: y, DirZ: z,
			LengthX: p.LengthX, LengthY: p.LengthY, LengthZ: p.LengthZ,
		})
	}
	return nil, fmt.Errorf("%w: %v", arealight.ErrUnknownType, t)
}

// BuildAll creates one light per type, indexed by type.
func (c *LightsConfig) BuildAll() ([arealight.NumTypes]*arealight.Light, error) {
	var lights [arealight.NumTypes]*arealight.Light
	for _, t := range arealight.Types {
		l, err := c.Preset(t).Build(t)
		if err != nil {
			return lights, fmt.Errorf("lights.%s: %w", t, err)
		}
		lights[t] = l
	}
	return lights, nil
}

// unit normalizes v, leaving zero vectors alone so validation reports them.
func unit(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}
