// Package renderer draws the ground plane lit by area lights and the light
// emitters themselves.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/arealight/internal/arealight"
	"github.com/Faultbox/arealight/internal/config"
	"github.com/Faultbox/arealight/internal/engine/lighting"
	"github.com/Faultbox/arealight/internal/engine/shader"
	"github.com/Faultbox/arealight/internal/logger"
)

// outlineSegments is the ellipse resolution for disk and sphere emitters.
const outlineSegments = 48

// Config holds renderer configuration.
type Config struct {
	Width           int
	Height          int
	PlaneHalfExtent float32
}

// Frame is everything needed to draw one frame.
type Frame struct {
	View     mgl32.Mat4
	Proj     mgl32.Mat4
	Eye      mgl32.Vec3
	Lights   []*arealight.Light
	Buffer   *lighting.AreaLightBuffer
	Material config.MaterialConfig
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	ground  *shader.Program
	emitter *shader.Program

	planeVAO   uint32
	planeVBO   uint32
	emitterVAO uint32
	emitterVBO uint32

	scratch []float32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0.02, 0.02, 0.03, 1.0)

	var err error
	if r.ground, err = shader.Compile("ground", groundVertexSource, groundFragmentSource); err != nil {
		return nil, err
	}
	if r.emitter, err = shader.Compile("emitter", emitterVertexSource, emitterFragmentSource); err != nil {
		r.ground.Delete()
		return nil, err
	}

	r.planeVAO, r.planeVBO = newVertexArray(PlaneVertices(cfg.PlaneHalfExtent), gl.STATIC_DRAW)
	r.emitterVAO, r.emitterVBO = newVertexArray(nil, gl.DYNAMIC_DRAW)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// newVertexArray creates a VAO with a single vec3 attribute at location 0.
func newVertexArray(vertices []float32, usage uint32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), usage)
	}

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("vertex array created", zap.Uint32("vao", vao), zap.Uint32("vbo", vbo))
	return vao, vbo
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, vao := range []*uint32{&r.planeVAO, &r.emitterVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
		}
	}
	for _, vbo := range []*uint32{&r.planeVBO, &r.emitterVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
		}
	}
	if r.ground != nil {
		r.ground.Delete()
	}
	if r.emitter != nil {
		r.emitter.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders the lit ground and the emitters.
func (r *Renderer) Draw(f Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.ground.Use()
	r.ground.SetMat4("uView", f.View)
	r.ground.SetMat4("uProj", f.Proj)
	r.ground.SetVec3("uEye", f.Eye)
	shader.SetMaterial(r.ground, f.Material.Diffuse, f.Material.Specular, f.Material.Roughness)
	shader.SetAreaLights(r.ground, f.Buffer)

	gl.BindVertexArray(r.planeVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	r.emitter.Use()
	r.emitter.SetMat4("uView", f.View)
	r.emitter.SetMat4("uProj", f.Proj)

	gl.BindVertexArray(r.emitterVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.emitterVBO)
	for _, l := range f.Lights {
		outline := Outline(l, f.Eye, outlineSegments)
		if len(outline) < 3 {
			continue
		}
		r.scratch = flatten(r.scratch, outline)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.scratch)*4, unsafe.Pointer(&r.scratch[0]), gl.DYNAMIC_DRAW)

		r.emitter.SetVec3("uColor", l.Color)
		gl.DrawArrays(gl.TRIANGLE_FAN, 0, int32(len(outline)))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
