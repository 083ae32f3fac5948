package scene

import (
	gomath "math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/arealight/internal/arealight"
)

// Orbit parameters for the showcase lights.
const (
	orbitStep      = 5.0 // radius increment per light
	orbitSpeed     = 0.5 // rad/s before the per-light factor
	orbitSpinSpeed = 30  // deg/s before the per-light factor
)

var orbitCenter = mgl32.Vec3{0, 10, 0}

// Orbiter moves a light on a horizontal circle around the orbit center while
// spinning it about a fixed axis.
type Orbiter struct {
	Light     *arealight.Light
	Radius    float32
	Speed     float32 // rad/s
	SpinSpeed float32 // deg/s
	SpinAxis  mgl32.Vec3
}

// newOrbiters creates one orbiter per light type, the sphere innermost.
func newOrbiters(rng *rand.Rand) ([]*Orbiter, error) {
	white := mgl32.Vec3{1, 1, 1}
	sphere, err := arealight.NewSphere(white, orbitCenter, 10, arealight.Ellipsoid{
		DirX: unitX, DirY: unitY, DirZ: unitZ,
		LengthX: 2, LengthY: 2, LengthZ: 2,
	})
	if err != nil {
		return nil, err
	}
	lights := []*arealight.Light{
		sphere,
		arealight.NewRect(mgl32.Vec3{1, 0, 0}, orbitCenter, 8, arealight.RectDisk{
			DirX: unitX, DirY: unitY, HalfX: 1, HalfY: 1,
		}),
		arealight.NewDisk(mgl32.Vec3{0, 1, 0}, orbitCenter, 8, arealight.RectDisk{
			DirX: unitX, DirY: unitY, HalfX: 1, HalfY: 1,
		}),
		arealight.NewCylinder(mgl32.Vec3{0, 0, 1}, orbitCenter, 20, arealight.Cylinder{
			Tangent: unitX, Length: 2, Radius: 0.05,
		}),
	}

	orbiters := make([]*Orbiter, len(lights))
	for i, l := range lights {
		orbiters[i] = &Orbiter{
			Light:     l,
			Radius:    float32(i) * orbitStep,
			Speed:     orbitSpeed * uniform(rng, 0.5, 1),
			SpinSpeed: orbitSpinSpeed * uniform(rng, 0.6, 1),
			SpinAxis: mgl32.Vec3{
				uniform(rng, 0.1, 1), uniform(rng, 0.1, 1), uniform(rng, 0.1, 1),
			}.Normalize(),
		}
	}
	return orbiters, nil
}

// pose places the light for time t and recomputes its points.
func (o *Orbiter) pose(t float64) error {
	angle := float64(o.Speed) * t
	o.Light.Center = orbitCenter.Add(mgl32.Vec3{
		float32(gomath.Sin(angle)) * o.Radius,
		0,
		float32(gomath.Cos(angle)) * o.Radius,
	})

	spin := mgl32.HomogRotate3D(mgl32.DegToRad(float32(float64(o.SpinSpeed)*t)), o.SpinAxis).Mat3()

	switch o.Light.Type() {
	case arealight.TypeSphere:
		o.Light.Color = mgl32.Vec3{
			cycle(0.3, t), cycle(0.7, t), cycle(0.5, t),
		}
	case arealight.TypeRectangle, arealight.TypeDisk:
		rd, _ := o.Light.RectDisk()
		rd.DirX = spin.Mul3x1(unitX)
		rd.DirY = spin.Mul3x1(unitY)
	case arealight.TypeCylinder:
		c, _ := o.Light.Cylinder()
		c.Tangent = spin.Mul3x1(unitX)
	}
	return o.Light.UpdatePoints()
}

func cycle(freq, t float64) float32 {
	return float32(gomath.Abs(gomath.Sin(freq*t)/2 + 0.5))
}
