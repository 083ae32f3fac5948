package logger

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/arealight/internal/arealight"
)

// Vec3 is a field for a vector, rendered as an [x, y, z] array.
func Vec3(key string, v mgl32.Vec3) zap.Field {
	return zap.Array(key, vec3Array(v))
}

// LightFields describes a light for structured logging.
func LightFields(l *arealight.Light) []zap.Field {
	fields := []zap.Field{
		zap.Stringer("type", l.Type()),
		Vec3("center", l.Center),
		zap.Float32("intensity", l.Intensity),
		zap.Array("points", pointsArray(l.Points())),
	}
	if r := l.Radius(); r > 0 {
		fields = append(fields, zap.Float32("radius", r))
	}
	return fields
}

type vec3Array mgl32.Vec3

func (v vec3Array) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, c := range v {
		enc.AppendFloat32(c)
	}
	return nil
}

type pointsArray []mgl32.Vec3

func (p pointsArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, v := range p {
		if err := enc.AppendArray(vec3Array(v)); err != nil {
			return err
		}
	}
	return nil
}
