package input

import "fmt"

// Mode selects which fixture a solver reads.
type Mode int

const (
	// Example selects the small hand-verified fixture.
	Example Mode = iota
	// Real selects the full puzzle input.
	Real
)

// ValidModes lists the accepted textual forms of Mode.
var ValidModes = []string{"example", "real"}

// String returns the textual form used in config files and flags.
func (m Mode) String() string {
	switch m {
	case Example:
		return "example"
	case Real:
		return "real"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "example" or "real" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "example":
		return Example, nil
	case "real":
		return Real, nil
	default:
		return 0, fmt.Errorf("invalid mode %q: must be one of %v", s, ValidModes)
	}
}
