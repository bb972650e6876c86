package browse

import (
	"fmt"
	"strings"
)

// Theme is one of the two fixed palettes.
type Theme int

const (
	Day Theme = iota
	Night
)

// Style property names the palette is applied through.
const (
	PropertyDark  = "--color-dark"
	PropertyLight = "--color-light"
)

func (t Theme) String() string {
	if t == Night {
		return "night"
	}
	return "day"
}

// ParseTheme accepts "day" or "night" (case-insensitive).
func ParseTheme(value string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "day":
		return Day, nil
	case "night":
		return Night, nil
	default:
		return Day, fmt.Errorf("unknown theme %q: must be day or night", value)
	}
}

// RGB is a colour triple.
type RGB struct {
	R, G, B uint8
}

// String renders the CSS channel list, e.g. "10, 10, 20".
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// Hex renders "#rrggbb" for terminal styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	ink   = RGB{R: 10, G: 10, B: 20}
	paper = RGB{R: 255, G: 255, B: 255}
)

// Palette is the pair of ink values a theme applies.
type Palette struct {
	Dark  RGB
	Light RGB
}

// Properties maps the style property names to their values.
func (p Palette) Properties() map[string]string {
	return map[string]string{
		PropertyDark:  p.Dark.String(),
		PropertyLight: p.Light.String(),
	}
}

// Palette returns the fixed colours for the theme.
func (t Theme) Palette() Palette {
	if t == Night {
		return Palette{Dark: paper, Light: ink}
	}
	return Palette{Dark: ink, Light: paper}
}

// ThemeInstruction tells a surface which colours to apply.
type ThemeInstruction struct {
	Theme   Theme
	Palette Palette
}

// ThemeController tracks the applied theme for the session.
type ThemeController struct {
	current Theme
}

// NewThemeController picks night when the host prefers a dark scheme.
func NewThemeController(prefersDark bool) *ThemeController {
	if prefersDark {
		return &ThemeController{current: Night}
	}
	return &ThemeController{current: Day}
}

// Apply switches to the given theme and reports whether anything changed.
func (c *ThemeController) Apply(t Theme) bool {
	if t != Day && t != Night {
		return false
	}
	changed := c.current != t
	c.current = t
	return changed
}

// Current returns the applied theme.
func (c *ThemeController) Current() Theme {
	return c.current
}

// Instruction returns the colours to apply.
func (c *ThemeController) Instruction() ThemeInstruction {
	return ThemeInstruction{Theme: c.current, Palette: c.current.Palette()}
}
