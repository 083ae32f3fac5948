package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/arealight/internal/arealight"
)

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "lights.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1, // smallest lumberjack allows
		MaxBackups: 2,
		MaxAgeDays: 1,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("InitWithFileConfig() error = %v", err)
	}
	defer Sync()

	pad := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("frame %d: %s", i, pad)
	}
	Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	var rotated []string
	found := false
	for _, e := range entries {
		switch {
		case e.Name() == "lights.log":
			found = true
		case strings.HasPrefix(e.Name(), "lights-"):
			rotated = append(rotated, e.Name())
		}
	}
	if !found {
		t.Error("active log file missing")
	}
	if len(rotated) == 0 {
		t.Errorf("no rotated files in %v", entries)
	}
	for _, name := range rotated {
		// lights-YYYY-MM-DDTHH-MM-SS.SSS.log
		if !strings.Contains(name, "-20") {
			t.Errorf("rotated file %s has no timestamp", name)
		}
	}
}

func TestLogLevels(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
		{"bogus", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(dir, tt.level+".log")
			if err := InitWithFileConfig(tt.level, FileConfig{Path: logFile, MaxSizeMB: 10}, false); err != nil {
				t.Fatalf("InitWithFileConfig() error = %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			out := string(content)

			for _, want := range tt.expected {
				if !strings.Contains(out, want) {
					t.Errorf("missing %s in output", want)
				}
			}
			for _, bad := range tt.excluded {
				if strings.Contains(out, bad) {
					t.Errorf("unexpected %s in output for level %s", bad, tt.level)
				}
			}
		})
	}
}

func TestNoSinksDiscards(t *testing.T) {
	if err := InitWithFileConfig("debug", FileConfig{}, false); err != nil {
		t.Fatalf("InitWithFileConfig() error = %v", err)
	}
	if Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger without sinks should be a no-op")
	}
	Info("dropped")
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/lights.log")
	want := FileConfig{Path: "/tmp/lights.log", MaxSizeMB: 20, MaxBackups: 3, MaxAgeDays: 7, Compress: true}
	if cfg != want {
		t.Errorf("DefaultFileConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLightFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	cyl := arealight.NewCylinder(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 0.3, 0}, 10, arealight.Cylinder{
		Tangent: mgl32.Vec3{1, 0, 0}, Length: 1, Radius: 0.02,
	})
	log.Info("light", LightFields(cyl)...)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()

	if ctx["type"] != "cylinder" {
		t.Errorf("type = %v, want cylinder", ctx["type"])
	}
	if ctx["intensity"] != float32(10) {
		t.Errorf("intensity = %v, want 10", ctx["intensity"])
	}
	if ctx["radius"] != float32(0.02) {
		t.Errorf("radius = %v, want 0.02", ctx["radius"])
	}
	pts, ok := ctx["points"].([]interface{})
	if !ok || len(pts) != 2 {
		t.Errorf("points = %#v, want 2 entries", ctx["points"])
	}

	rect := arealight.NewRect(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}, 4, arealight.RectDisk{
		DirX: mgl32.Vec3{1, 0, 0}, DirY: mgl32.Vec3{0, 1, 0}, HalfX: 0.5, HalfY: 0.5,
	})
	for _, f := range LightFields(rect) {
		if f.Key == "radius" {
			t.Error("rectangle light should not log a radius")
		}
	}
}
