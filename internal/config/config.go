// Package config handles viewer and scene configuration loading.
package config

import "github.com/go-gl/mathgl/mgl32"

// Scene modes.
const (
	ModeSingle   = "single"
	ModeShowcase = "showcase"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Material MaterialConfig `yaml:"material"`
	Lights   LightsConfig   `yaml:"lights"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds the initial scene state.
type SceneConfig struct {
	Mode            string  `yaml:"mode"`  // single or showcase
	Light           string  `yaml:"light"` // selected light type in single mode
	RotationY       float32 `yaml:"rotation_y"`
	RotationZ       float32 `yaml:"rotation_z"`
	MovingSpheres   int     `yaml:"moving_spheres"`
	Seed            int64   `yaml:"seed"`
	PlaneHalfExtent float32 `yaml:"plane_half_extent"`

	// Frames stops the viewer after this many frames when positive.
	Frames int `yaml:"-"`
}

// MaterialConfig holds the GGX ground material.
type MaterialConfig struct {
	Diffuse   float32 `yaml:"diffuse"`
	Specular  float32 `yaml:"specular"`
	Roughness float32 `yaml:"roughness"`
}

// LightsConfig holds one preset per light type.
type LightsConfig struct {
	Rectangle LightPreset `yaml:"rectangle"`
	Cylinder  LightPreset `yaml:"cylinder"`
	Disk      LightPreset `yaml:"disk"`
	Sphere    LightPreset `yaml:"sphere"`
}

// LightPreset describes a light. Which extents apply depends on the type:
// half_x/half_y for rectangles and disks, length/radius for cylinders
// (axis_x is the tangent) and length_x/y/z for spheres.
type LightPreset struct {
	Center    mgl32.Vec3 `yaml:"center,flow"`
	Color     mgl32.Vec3 `yaml:"color,flow"`
	Intensity float32    `yaml:"intensity"`

	AxisX mgl32.Vec3 `yaml:"axis_x,flow"`
	AxisY mgl32.Vec3 `yaml:"axis_y,flow"`
	AxisZ mgl32.Vec3 `yaml:"axis_z,flow"`

	HalfX float32 `yaml:"half_x,omitempty"`
	HalfY float32 `yaml:"half_y,omitempty"`

	Length float32 `yaml:"length,omitempty"`
	Radius float32 `yaml:"radius,omitempty"`

	LengthX float32 `yaml:"length_x,omitempty"`
	LengthY float32 `yaml:"length_y,omitempty"`
	LengthZ float32 `yaml:"length_z,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

var (
	white = mgl32.Vec3{1, 1, 1}
	unitX = mgl32.Vec3{1, 0, 0}
	unitY = mgl32.Vec3{0, 1, 0}
	unitZ = mgl32.Vec3{0, 0, 1}
)

// Default returns a Config with the stock scene.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Scene: SceneConfig{
			Mode:            ModeSingle,
			Light:           "rectangle",
			MovingSpheres:   20,
			Seed:            1,
			PlaneHalfExtent: 30,
		},
		Material: DefaultMaterial(),
		Lights:   DefaultLights(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultMaterial returns the stock ground material.
func DefaultMaterial() MaterialConfig {
	return MaterialConfig{
		Diffuse:   1,
		Specular:  0.23,
		Roughness: 0.25,
	}
}

// DefaultLights returns the stock light presets.
func DefaultLights() LightsConfig {
	flat := LightPreset{
		Center:    mgl32.Vec3{0, 1.5, 0},
		Color:     white,
		Intensity: 4,
		AxisX:     unitX,
		AxisY:     unitY,
		AxisZ:     unitZ,
		HalfX:     0.5,
		HalfY:     0.5,
	}
	return LightsConfig{
		Rectangle: flat,
		Disk:      flat,
		Cylinder: LightPreset{
			Center:    mgl32.Vec3{0, 0.3, 0},
			Color:     white,
			Intensity: 10,
			AxisX:     unitX,
			AxisY:     unitY,
			AxisZ:     unitZ,
			Length:    1,
			Radius:    0.02,
		},
		Sphere: LightPreset{
			Center:    mgl32.Vec3{0, 1.5, 0},
			Color:     white,
			Intensity: 10,
			AxisX:     unitX,
			AxisY:     unitY,
			AxisZ:     unitZ,
			LengthX:   0.4,
			LengthY:   0.4,
			LengthZ:   0.4,
		},
	}
}
