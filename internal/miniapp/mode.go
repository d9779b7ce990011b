package miniapp

import "strings"

// DisplayMode is the density every slot is rendered at.
type DisplayMode uint8

const (
	Compact DisplayMode = iota
	Medium
	Full
)

// Modes lists the supported densities in cycling order.
var Modes = []DisplayMode{Compact, Medium, Full}

// Fraction is the share of the available height one slot gets. Unknown
// values behave like Compact.
func (m DisplayMode) Fraction() float64 {
	switch m {
	case Medium:
		return 0.5
	case Full:
		return 1.0
	default:
		return 0.125
	}
}

func (m DisplayMode) String() string {
	switch m {
	case Compact:
		return "compact"
	case Medium:
		return "medium"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Next cycles Compact -> Medium -> Full -> Compact.
func (m DisplayMode) Next() DisplayMode {
	switch m {
	case Compact:
		return Medium
	case Medium:
		return Full
	default:
		return Compact
	}
}

// Known reports whether m is one of the three supported modes.
func (m DisplayMode) Known() bool {
	return m == Compact || m == Medium || m == Full
}

// ParseDisplayMode accepts compact|medium|full and the older
// oneEighth|half|fullScreen tokens. Anything else is Compact.
func ParseDisplayMode(s string) DisplayMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium", "half":
		return Medium
	case "full", "fullscreen":
		return Full
	default:
		return Compact
	}
}
