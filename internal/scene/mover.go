package scene

import (
	gomath "math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/arealight/internal/arealight"
)

// Moving sphere parameters.
const (
	moverMinRadius = 0.3
	moverMaxRadius = 0.4
	moverStart     = 25.0
	moverMinSpeed  = 1.0
	moverMaxSpeed  = 2.0
	moverMinBounce = 1.0
	moverMaxBounce = 2.0
	// moverLift keeps the sphere clear of the ground viewpoint.
	moverLift = 0.1
	// moverMargin is kept between a sphere and the plane edge.
	moverMargin = 0.5
)

// MovingSphere is a small sphere light sliding across the ground plane and
// bouncing vertically. It reverses when it reaches the plane edge.
type MovingSphere struct {
	Light        *arealight.Light
	Origin       mgl32.Vec3 // position at the start of the current leg
	Dir          mgl32.Vec3 // unit direction in the xz plane
	Speed        float32
	BounceHeight float32
	Radius       float32
	Bounces      int

	t float32 // time along the current leg
	s float32 // bounce phase, runs backwards on odd legs
}

func newMovingSphere(rng *rand.Rand) (*MovingSphere, error) {
	r := uniform(rng, moverMinRadius, moverMaxRadius)
	origin := mgl32.Vec3{
		uniform(rng, -moverStart, moverStart),
		r + moverLift,
		uniform(rng, -moverStart, moverStart),
	}

	dir := mgl32.Vec3{uniform(rng, -1, 1), 0, uniform(rng, -1, 1)}
	if dir.Len() == 0 {
		dir = mgl32.Vec3{1, 0, 0}
	}
	dir = dir.Normalize()

	speed := uniform(rng, moverMinSpeed, moverMaxSpeed)
	bounce := uniform(rng, moverMinBounce, moverMaxBounce)
	color := mgl32.Vec3{uniform(rng, 0.3, 1), uniform(rng, 0.3, 1), uniform(rng, 0.3, 1)}
	intensity := uniform(rng, 1, 5)

	l, err := arealight.NewSphere(color, origin, intensity, arealight.Ellipsoid{
		DirX: unitX, DirY: unitY, DirZ: unitZ,
		LengthX: r, LengthY: r, LengthZ: r,
	})
	if err != nil {
		return nil, err
	}

	return &MovingSphere{
		Light:        l,
		Origin:       origin,
		Dir:          dir,
		Speed:        speed,
		BounceHeight: bounce,
		Radius:       r,
	}, nil
}

// step advances the sphere by dt and recomputes its points. Only the mover's
// own light is written.
func (m *MovingSphere) step(dt, limit float32) error {
	m.t += dt
	m.s += m.phaseStep(dt)

	center := m.position()
	if abs32(center.X()) >= limit || abs32(center.Z()) >= limit {
		m.Origin = m.Light.Center
		m.t = dt
		m.Dir = m.Dir.Mul(-1)
		m.Bounces++
		m.s += m.phaseStep(dt)
		center = m.position()
	}

	m.Light.Center = center
	return m.Light.UpdatePoints()
}

func (m *MovingSphere) phaseStep(dt float32) float32 {
	if m.Bounces%2 == 0 {
		return dt
	}
	return -dt
}

func (m *MovingSphere) position() mgl32.Vec3 {
	p := m.Origin.Add(m.Dir.Mul(m.Speed * m.t))
	p[1] = m.Radius + m.BounceHeight*abs32(float32(gomath.Sin(float64(m.s)))) + moverLift
	return p
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + (hi-lo)*rng.Float32()
}

func abs32(v float32) float32 {
	return float32(gomath.Abs(float64(v)))
}
