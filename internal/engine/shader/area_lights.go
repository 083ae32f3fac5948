package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/arealight/internal/engine/lighting"
)

// Uniform names of the area light block shared by the lit programs.
const (
	UniformLightCount       = "uLightCount"
	UniformLightTypes       = "uLightTypes"
	UniformLightPoints      = "uLightPoints"
	UniformLightColors      = "uLightColors"
	UniformLightIntensities = "uLightIntensities"
	UniformLightRadii       = "uLightRadii"
)

// SetAreaLights uploads the buffer to the area light uniforms of p, which
// must be bound.
func SetAreaLights(p *Program, buf *lighting.AreaLightBuffer) {
	n := int32(lighting.MaxAreaLights)

	types := buf.GetTypes()
	points := buf.GetPoints()
	colors := buf.GetColors()
	intensities := buf.GetIntensities()
	radii := buf.GetRadii()

	gl.Uniform1i(p.Uniform(UniformLightCount), int32(buf.Count))
	gl.Uniform1iv(p.Uniform(UniformLightTypes), n, &types[0])
	gl.Uniform3fv(p.Uniform(UniformLightPoints), n*lighting.PointsPerLight, &points[0])
	gl.Uniform3fv(p.Uniform(UniformLightColors), n, &colors[0])
	gl.Uniform1fv(p.Uniform(UniformLightIntensities), n, &intensities[0])
	gl.Uniform1fv(p.Uniform(UniformLightRadii), n, &radii[0])
}

// SetMaterial uploads the GGX ground material.
func SetMaterial(p *Program, diffuse, specular, roughness float32) {
	p.SetFloat("uDiffuse", diffuse)
	p.SetFloat("uSpecular", specular)
	p.SetFloat("uRoughness", roughness)
}
