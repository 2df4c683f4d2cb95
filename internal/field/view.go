package field

import (
	"fmt"
	"strings"

	"github.com/iburimskiy/neural-canvas/internal/config"
)

// View identifies the page the host is showing.
type View string

const (
	ViewHome     View = "home"
	ViewMagazine View = "magazine"
	ViewEngine   View = "engine"
	ViewPrism    View = "prism"
	ViewAnalysis View = "analysis"
)

// Views lists every known view in navigation order.
var Views = []View{ViewHome, ViewMagazine, ViewEngine, ViewPrism, ViewAnalysis}

// ParseView maps a case-insensitive name to a known view.
func ParseView(name string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Views {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", name)
}

// Next returns the view after v, wrapping around.
func (v View) Next() View {
	for i, known := range Views {
		if known == v {
			return Views[(i+1)%len(Views)]
		}
	}
	return Views[0]
}

// TargetStructure is the structure level the field eases toward while v is
// shown. Anything that is not home or magazine is treated as analytical.
func TargetStructure(v View) float64 {
	switch v {
	case ViewHome:
		return config.HomeStructure
	case ViewMagazine:
		return config.MagazineStructure
	default:
		return config.AnalyticalStructure
	}
}
