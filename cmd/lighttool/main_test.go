package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/arealight/internal/arealight"
	"github.com/Faultbox/arealight/internal/config"
)

func TestRunUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	if err := run("explode", nil, &out); !errors.Is(err, errUsage) {
		t.Errorf("run(explode) error = %v, want errUsage", err)
	}
}

func TestPoints(t *testing.T) {
	var out bytes.Buffer
	if err := run("points", []string{"cylinder"}, &out); err != nil {
		t.Fatalf("points error = %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"cylinder center=(0.0000, 0.3000, 0.0000)",
		"radius=0.02",
		"p0 (-0.5000, 0.3000, 0.0000)",
		"p1 (0.5000, 0.3000, 0.0000)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "p2") {
		t.Errorf("cylinder printed more than two points:\n%s", got)
	}
}

func TestPointsAllTypes(t *testing.T) {
	var out bytes.Buffer
	if err := run("points", nil, &out); err != nil {
		t.Fatalf("points error = %v", err)
	}
	for _, typ := range arealight.Types {
		if !strings.Contains(out.String(), typ.String()+" center=") {
			t.Errorf("output missing %s", typ)
		}
	}
}

func TestPointsUnknownType(t *testing.T) {
	var out bytes.Buffer
	if err := run("points", []string{"spot"}, &out); !errors.Is(err, arealight.ErrUnknownType) {
		t.Errorf("points spot error = %v, want ErrUnknownType", err)
	}
}

func TestSimulate(t *testing.T) {
	var out bytes.Buffer
	if err := run("simulate", []string{"-spheres", "5", "120"}, &out); err != nil {
		t.Fatalf("simulate error = %v", err)
	}
	got := out.String()
	for _, want := range []string{"frames:   120", "lights:   9 (4 orbiting, 5 moving)", "failures: 0"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSimulateBadArgs(t *testing.T) {
	for _, args := range [][]string{nil, {"many"}, {"-spheres", "99", "10"}} {
		var out bytes.Buffer
		if err := run("simulate", args, &out); err == nil {
			t.Errorf("simulate %v succeeded, want error", args)
		}
	}
}

func TestCheck(t *testing.T) {
	var out bytes.Buffer
	if err := run("check", nil, &out); err != nil {
		t.Fatalf("check error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "config: ok") || !strings.Contains(got, "sphere: ok") {
		t.Errorf("unexpected output:\n%s", got)
	}
	if !strings.Contains(got, "anchor=") {
		t.Errorf("sphere reduction not printed:\n%s", got)
	}
}

func TestCheckRejectsInsideSphere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	yaml := "lights:\n  sphere:\n    center: [0, 0.2, 0]\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := run("check", []string{"-config", path}, &out)
	if !errors.Is(err, arealight.ErrViewpointInside) {
		t.Errorf("check error = %v, want ErrViewpointInside", err)
	}
}

func TestDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "arealight.yaml")

	var out bytes.Buffer
	if err := run("defaults", []string{path}, &out); err != nil {
		t.Fatalf("defaults error = %v", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Lights.Sphere != config.Default().Lights.Sphere {
		t.Errorf("sphere preset = %+v, want defaults", cfg.Lights.Sphere)
	}
}
