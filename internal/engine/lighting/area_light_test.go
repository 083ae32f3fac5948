package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/arealight/internal/arealight"
)

func testLights(t *testing.T) []*arealight.Light {
	t.Helper()
	white := mgl32.Vec3{1, 1, 1}
	rect := arealight.NewRect(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 0}, 8, arealight.RectDisk{
		DirX: mgl32.Vec3{1, 0, 0}, DirY: mgl32.Vec3{0, 1, 0}, HalfX: 2, HalfY: 3,
	})
	cyl := arealight.NewCylinder(white, mgl32.Vec3{0, 0, 0}, 10, arealight.Cylinder{
		Tangent: mgl32.Vec3{0, 0, 1}, Length: 4, Radius: 0.02,
	})
	return []*arealight.Light{rect, cyl}
}

func TestAreaLightBufferAdd(t *testing.T) {
	b := NewAreaLightBuffer()
	lights := testLights(t)

	for i := 0; i < MaxAreaLights; i++ {
		if !b.AddLight(lights[i%len(lights)]) {
			t.Fatalf("AddLight() = false at %d, want true", i)
		}
	}
	if b.AddLight(lights[0]) {
		t.Error("AddLight() on full buffer = true, want false")
	}
	if b.Count != MaxAreaLights {
		t.Errorf("Count = %d, want %d", b.Count, MaxAreaLights)
	}

	b.Clear()
	if b.Count != 0 || len(b.Lights) != 0 {
		t.Errorf("Clear() left Count=%d len=%d", b.Count, len(b.Lights))
	}
}

func TestAreaLightBufferSetLightsTruncates(t *testing.T) {
	lights := testLights(t)
	many := make([]*arealight.Light, 0, MaxAreaLights+5)
	for i := 0; i < MaxAreaLights+5; i++ {
		many = append(many, lights[0])
	}

	b := NewAreaLightBuffer()
	b.SetLights(many)
	if b.Count != MaxAreaLights {
		t.Errorf("Count = %d, want %d", b.Count, MaxAreaLights)
	}
}

func TestAreaLightBufferFlatten(t *testing.T) {
	b := NewAreaLightBuffer()
	b.SetLights(testLights(t))

	types := b.GetTypes()
	if types[0] != int32(arealight.TypeRectangle) || types[1] != int32(arealight.TypeCylinder) {
		t.Errorf("GetTypes() = %v, want [rect cylinder ...]", types[:2])
	}

	pts := b.GetPoints()
	if len(pts) != MaxAreaLights*PointsPerLight*3 {
		t.Fatalf("len(GetPoints()) = %d", len(pts))
	}
	wantRect := []float32{-2, -3, 0, 2, -3, 0, 2, 3, 0, -2, 3, 0}
	for i, want := range wantRect {
		if pts[i] != want {
			t.Errorf("rect points[%d] = %v, want %v", i, pts[i], want)
		}
	}
	// Cylinder: two endpoints, padded with the last one.
	wantCyl := []float32{0, 0, -2, 0, 0, 2, 0, 0, 2, 0, 0, 2}
	for i, want := range wantCyl {
		if got := pts[12+i]; got != want {
			t.Errorf("cylinder points[%d] = %v, want %v", i, got, want)
		}
	}

	colors := b.GetColors()
	if colors[0] != 1 || colors[1] != 0 || colors[2] != 0 {
		t.Errorf("GetColors()[0:3] = %v, want [1 0 0]", colors[:3])
	}

	intensities := b.GetIntensities()
	if intensities[0] != 8 || intensities[1] != 10 {
		t.Errorf("GetIntensities()[0:2] = %v, want [8 10]", intensities[:2])
	}

	radii := b.GetRadii()
	if radii[0] != 0 || radii[1] != 0.02 {
		t.Errorf("GetRadii()[0:2] = %v, want [0 0.02]", radii[:2])
	}
}
