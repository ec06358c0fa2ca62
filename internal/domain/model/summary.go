package model

import (
	"strconv"
	"strings"
)

const (
	// UnknownMaterial is used for spools whose filament has no material.
	UnknownMaterial = "Unknown"
	// MultiColorLabel is the color label of every multi-color group.
	MultiColorLabel = "Multi-color"
	// UnknownColorLabel is the color label of groups without color data.
	UnknownColorLabel = "Unknown"
)

// ColorKind tags the shape of a ColorSignature.
type ColorKind uint8

const (
	// ColorNone means the filament has neither a solid nor a multi-color value.
	ColorNone ColorKind = iota
	// ColorSolid means a single color_hex.
	ColorSolid
	// ColorMulti means multi_color_hexes plus a direction.
	ColorMulti
)

// String returns the tag name.
func (k ColorKind) String() string {
	switch k {
	case ColorSolid:
		return "solid"
	case ColorMulti:
		return "multi"
	default:
		return "none"
	}
}

// ColorSignature is the equality-determining representation of a filament's
// color. It is comparable, so it can be used directly inside map keys.
type ColorSignature struct {
	Kind      ColorKind
	Hex       string
	Hexes     string
	Direction string
}

// SolidColor returns the signature of a single-color filament.
func SolidColor(hex string) ColorSignature {
	return ColorSignature{Kind: ColorSolid, Hex: hex}
}

// MultiColor returns the signature of a multi-color filament.
func MultiColor(hexes, direction string) ColorSignature {
	return ColorSignature{Kind: ColorMulti, Hexes: hexes, Direction: direction}
}

// NoColor returns the signature of a filament without color data.
func NoColor() ColorSignature {
	return ColorSignature{Kind: ColorNone}
}

// String renders the signature unambiguously; every component is quoted.
func (s ColorSignature) String() string {
	switch s.Kind {
	case ColorSolid:
		return "solid:" + strconv.Quote(s.Hex)
	case ColorMulti:
		return "multi:" + strconv.Quote(s.Hexes) + ":" + strconv.Quote(s.Direction)
	default:
		return "none"
	}
}

// GroupKey identifies a FilamentGroup within one aggregation run.
type GroupKey struct {
	Material string
	Color    ColorSignature
}

// String is the serialized key exposed to clients.
func (k GroupKey) String() string {
	return strconv.Quote(k.Material) + "::" + k.Color.String()
}

// FilamentGroup combines non-archived spools sharing material and color signature.
//
// @Description Spools grouped by material and color
type FilamentGroup struct {
	Key                  string  `json:"key" example:"\"PLA\"::solid:\"FF0000\""`
	Material             string  `json:"material" example:"PLA"`
	ColorHex             string  `json:"color_hex,omitempty" example:"FF0000"`
	MultiColorHexes      string  `json:"multi_color_hexes,omitempty"`
	MultiColorDirection  string  `json:"multi_color_direction,omitempty"`
	Name                 string  `json:"name,omitempty" example:"Galaxy Black"`
	VendorName           string  `json:"vendor_name,omitempty" example:"Prusament"`
	SpoolCount           int     `json:"spool_count" example:"2"`
	TotalRemainingWeight float64 `json:"total_remaining_weight" example:"500"`
	TotalFilamentWeight  float64 `json:"total_filament_weight" example:"2000"`
} // @name FilamentGroup

// FilamentSummary is the result of one aggregation run.
type FilamentSummary struct {
	Groups               []FilamentGroup `json:"groups"`
	TotalRemainingWeight float64         `json:"total_remaining_weight"`
	TotalSpools          int             `json:"total_spools"`
}

// ColorLabel is the display label of the group's color. It only orders and
// presents groups; it never decides membership.
func (g FilamentGroup) ColorLabel() string {
	switch {
	case g.MultiColorHexes != "":
		return MultiColorLabel
	case g.ColorHex != "":
		return "#" + strings.ToUpper(strings.TrimPrefix(g.ColorHex, "#"))
	default:
		return UnknownColorLabel
	}
}

// Swatch describes how to render a color chip.
//
// @Description Renderable color swatch: a single hex or an ordered list of hexes
type Swatch struct {
	Hex      string   `json:"hex,omitempty" example:"FF0000"`
	Colors   []string `json:"colors,omitempty"`
	Vertical bool     `json:"vertical,omitempty"`
} // @name Swatch

// Swatch maps the group's color fields to a swatch, or nil when the group has
// no color data.
func (g FilamentGroup) Swatch() *Swatch {
	if g.MultiColorHexes != "" {
		parts := strings.Split(g.MultiColorHexes, ",")
		colors := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				colors = append(colors, p)
			}
		}
		return &Swatch{
			Colors:   colors,
			Vertical: g.MultiColorDirection == MultiColorLongitudinal,
		}
	}
	if g.ColorHex != "" {
		return &Swatch{Hex: g.ColorHex}
	}
	return nil
}
