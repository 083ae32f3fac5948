// lighttool is a headless utility for inspecting area light configurations.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/arealight/internal/arealight"
	"github.com/Faultbox/arealight/internal/config"
	"github.com/Faultbox/arealight/internal/logger"
	"github.com/Faultbox/arealight/internal/scene"
)

// errUsage marks a malformed command line.
var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := logger.Init(os.Getenv("AREALIGHT_LOG"), ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
		}
		logger.Sync()
		os.Exit(1)
	}
}

func run(command string, args []string, w io.Writer) error {
	switch command {
	case "points", "p":
		return cmdPoints(args, w)
	case "simulate", "sim":
		return cmdSimulate(args, w)
	case "check":
		return cmdCheck(args, w)
	case "defaults":
		return cmdDefaults(args, w)
	case "help", "-h", "--help":
		printUsage(w)
		return nil
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, command)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `lighttool - area light inspection utility

Usage:
  lighttool <command> [options]

Commands:
  points [-config file] [type]             Print reference points of the configured lights
  simulate [-config file] [-spheres n] <frames>
                                           Step the showcase scene and summarize it
  check [-config file]                     Validate config and every light's geometry
  defaults <path>                          Write the default config as YAML

Examples:
  lighttool points sphere
  lighttool simulate -spheres 28 600
  lighttool check -config arealight.yaml
  lighttool defaults ./arealight.yaml`)
}

// loadConfig parses the shared -config flag and loads the file if given.
func loadConfig(fs *flag.FlagSet, args []string) (*config.Config, error) {
	path := fs.String("config", "", "Path to config file")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if *path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(*path)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func cmdPoints(args []string, w io.Writer) error {
	fs := newFlagSet("points")
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}

	types := arealight.Types
	if fs.NArg() > 0 {
		t, err := arealight.ParseType(fs.Arg(0))
		if err != nil {
			return err
		}
		types = []arealight.Type{t}
	}

	for _, t := range types {
		l, err := cfg.Lights.Preset(t).Build(t)
		if err != nil {
			return fmt.Errorf("lights.%s: %w", t, err)
		}
		fmt.Fprintf(w, "%s center=%s intensity=%g", t, fmtVec(l.Center), l.Intensity)
		if r := l.Radius(); r > 0 {
			fmt.Fprintf(w, " radius=%g", r)
		}
		fmt.Fprintln(w)
		for i, p := range l.Points() {
			fmt.Fprintf(w, "  p%d %s\n", i, fmtVec(p))
		}
	}
	return nil
}

func cmdSimulate(args []string, w io.Writer) error {
	fs := newFlagSet("simulate")
	spheres := fs.Int("spheres", -1, "Number of moving sphere lights")
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: simulate needs a frame count", errUsage)
	}
	frames, err := strconv.Atoi(fs.Arg(0))
	if err != nil || frames < 0 {
		return fmt.Errorf("%w: bad frame count %q", errUsage, fs.Arg(0))
	}

	cfg.Scene.Mode = config.ModeShowcase
	if *spheres >= 0 {
		cfg.Scene.MovingSpheres = *spheres
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s, err := scene.New(cfg)
	if err != nil {
		return err
	}

	const dt = 1.0 / 60
	failures := 0
	for i := 0; i < frames; i++ {
		if err := s.Update(dt); err != nil {
			if arealight.IsFatal(err) {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			failures++
		}
	}

	bounces := 0
	for _, m := range s.Movers {
		bounces += m.Bounces
	}

	fmt.Fprintf(w, "frames:   %d\n", frames)
	fmt.Fprintf(w, "elapsed:  %.2fs\n", s.Elapsed)
	fmt.Fprintf(w, "lights:   %d (%d orbiting, %d moving)\n", len(s.Active()), len(s.Orbiters), len(s.Movers))
	fmt.Fprintf(w, "bounces:  %d\n", bounces)
	fmt.Fprintf(w, "failures: %d\n", failures)
	return nil
}

func cmdCheck(args []string, w io.Writer) error {
	cfg, err := loadConfig(newFlagSet("check"), args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	fmt.Fprintln(w, "config: ok")

	for _, t := range arealight.Types {
		l, err := cfg.Lights.Preset(t).Build(t)
		if err != nil {
			return fmt.Errorf("lights.%s: %w", t, err)
		}
		fmt.Fprintf(w, "%s: ok\n", t)

		e, ok := l.Ellipsoid()
		if !ok {
			continue
		}
		r, err := e.Reduce(l.Center)
		if err != nil {
			return fmt.Errorf("lights.%s: %w", t, err)
		}
		fmt.Fprintf(w, "  anchor=%s half-angle=%.3f°\n", fmtVec(r.Anchor), mgl32.RadToDeg(float32(r.HalfAngle)))
		fmt.Fprintf(w, "  axis-x=%s |%.4f|\n", fmtVec(r.AxisX), r.AxisX.Len())
		fmt.Fprintf(w, "  axis-y=%s |%.4f|\n", fmtVec(r.AxisY), r.AxisY.Len())
	}
	return nil
}

func cmdDefaults(args []string, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: defaults needs an output path", errUsage)
	}
	if err := config.Default().SaveTo(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s\n", args[0])
	return nil
}

func fmtVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v[0], v[1], v[2])
}
