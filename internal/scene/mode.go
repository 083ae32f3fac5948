package scene

import (
	"fmt"

	"github.com/Faultbox/arealight/internal/config"
)

// Mode selects which lights are live.
type Mode int

const (
	// ModeSingle shows the selected light alone, posed by RotY and RotZ.
	ModeSingle Mode = iota
	// ModeShowcase shows orbiting lights of every type and moving spheres.
	ModeShowcase
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return config.ModeSingle
	case ModeShowcase:
		return config.ModeShowcase
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a config mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case config.ModeSingle:
		return ModeSingle, nil
	case config.ModeShowcase:
		return ModeShowcase, nil
	}
	return 0, fmt.Errorf("unknown scene mode %q", s)
}
