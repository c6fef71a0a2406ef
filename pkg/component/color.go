package component

// Color is one of the fixed named chat colors. NoColor means the node
// does not set a color and defers to its ancestors.
type Color uint8

const (
	NoColor Color = iota
	Black
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
	Reset
)

type colorInfo struct {
	name string
	code rune
	hex  string
}

var colorTable = [...]colorInfo{
	NoColor:     {},
	Black:       {"black", '0', "#000000"},
	DarkBlue:    {"dark_blue", '1', "#0000AA"},
	DarkGreen:   {"dark_green", '2', "#00AA00"},
	DarkAqua:    {"dark_aqua", '3', "#00AAAA"},
	DarkRed:     {"dark_red", '4', "#AA0000"},
	DarkPurple:  {"dark_purple", '5', "#AA00AA"},
	Gold:        {"gold", '6', "#FFAA00"},
	Gray:        {"gray", '7', "#AAAAAA"},
	DarkGray:    {"dark_gray", '8', "#555555"},
	Blue:        {"blue", '9', "#5555FF"},
	Green:       {"green", 'a', "#55FF55"},
	Aqua:        {"aqua", 'b', "#55FFFF"},
	Red:         {"red", 'c', "#FF5555"},
	LightPurple: {"light_purple", 'd', "#FF55FF"},
	Yellow:      {"yellow", 'e', "#FFFF55"},
	White:       {"white", 'f', "#FFFFFF"},
	Reset:       {"reset", 'r', ""},
}

// colorByName is built once and only read afterwards.
var colorByName = func() map[string]Color {
	m := make(map[string]Color, len(colorTable))
	for c := Black; c <= Reset; c++ {
		m[colorTable[c].name] = c
	}
	return m
}()

// ColorByName looks up a color by its exact, case-sensitive name.
func ColorByName(name string) (Color, bool) {
	c, ok := colorByName[name]
	return c, ok
}

// Colors returns every named color in table order.
func Colors() []Color {
	out := make([]Color, 0, len(colorTable)-1)
	for c := Black; c <= Reset; c++ {
		out = append(out, c)
	}
	return out
}

// Name returns the markup name of the color, or "" for NoColor.
func (c Color) Name() string {
	if int(c) >= len(colorTable) {
		return ""
	}
	return colorTable[c].name
}

// Code returns the legacy formatting code character.
func (c Color) Code() rune {
	if int(c) >= len(colorTable) {
		return 0
	}
	return colorTable[c].code
}

// Hex returns the RGB value used for terminal previews. Reset and
// NoColor have none.
func (c Color) Hex() string {
	if int(c) >= len(colorTable) {
		return ""
	}
	return colorTable[c].hex
}

func (c Color) String() string {
	if c == NoColor {
		return "inherit"
	}
	return c.Name()
}
