// Package lighting packs area lights into flat arrays for GPU upload.
package lighting

import (
	"github.com/Faultbox/arealight/internal/arealight"
)

// MaxAreaLights is the maximum number of area lights supported in shaders.
const MaxAreaLights = 32

// PointsPerLight is the fixed stride of the points array. Cylinders only use
// the first two slots; the rest repeat the second endpoint.
const PointsPerLight = 4

// AreaLightBuffer holds lights for GPU upload.
type AreaLightBuffer struct {
	Lights []*arealight.Light
	Count  int
}

// NewAreaLightBuffer creates an empty area light buffer.
func NewAreaLightBuffer() *AreaLightBuffer {
	return &AreaLightBuffer{
		Lights: make([]*arealight.Light, 0, MaxAreaLights),
	}
}

// Clear removes all lights from the buffer.
func (b *AreaLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
	b.Count = 0
}

// AddLight adds a light to the buffer.
// Returns false if buffer is full.
func (b *AreaLightBuffer) AddLight(light *arealight.Light) bool {
	if b.Count >= MaxAreaLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	b.Count++
	return true
}

// SetLights replaces all lights in the buffer.
// Truncates to MaxAreaLights if necessary.
func (b *AreaLightBuffer) SetLights(lights []*arealight.Light) {
	b.Clear()
	count := len(lights)
	if count > MaxAreaLights {
		count = MaxAreaLights
	}
	b.Lights = append(b.Lights, lights[:count]...)
	b.Count = count
}

// GetTypes returns the light type indices, one per light.
func (b *AreaLightBuffer) GetTypes() []int32 {
	result := make([]int32, MaxAreaLights)
	for i, light := range b.Lights {
		result[i] = int32(light.Type())
	}
	return result
}

// GetPoints returns reference points as a flat float32 slice for GPU upload.
// Format: PointsPerLight xyz triples per light.
func (b *AreaLightBuffer) GetPoints() []float32 {
	result := make([]float32, MaxAreaLights*PointsPerLight*3)
	for i, light := range b.Lights {
		pts := light.Points()
		if len(pts) == 0 {
			continue
		}
		for j := 0; j < PointsPerLight; j++ {
			p := pts[min(j, len(pts)-1)]
			base := (i*PointsPerLight + j) * 3
			result[base+0] = p[0]
			result[base+1] = p[1]
			result[base+2] = p[2]
		}
	}
	return result
}

// GetColors returns colors as a flat float32 slice for GPU upload.
// Format: [r0, g0, b0, r1, g1, b1, ...]
func (b *AreaLightBuffer) GetColors() []float32 {
	result := make([]float32, MaxAreaLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Color[0]
		result[i*3+1] = light.Color[1]
		result[i*3+2] = light.Color[2]
	}
	return result
}

// GetIntensities returns intensities as a flat float32 slice for GPU upload.
func (b *AreaLightBuffer) GetIntensities() []float32 {
	result := make([]float32, MaxAreaLights)
	for i, light := range b.Lights {
		result[i] = light.Intensity
	}
	return result
}

// GetRadii returns cylinder radii as a flat float32 slice for GPU upload.
// Non-cylinder lights have radius 0.
func (b *AreaLightBuffer) GetRadii() []float32 {
	result := make([]float32, MaxAreaLights)
	for i, light := range b.Lights {
		result[i] = light.Radius()
	}
	return result
}
