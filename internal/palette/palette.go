// Package palette holds ANSI SGR prefixes for the built-in themes.
package palette

// SGR attribute prefixes shared by all palettes.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette maps the semantic styles to color prefixes. An empty field
// means no color, only the shared attribute prefix (if any).
type Palette struct {
	Text string
	Bold string
}

func fg256(n string) string {
	return "\x1b[38;5;" + n + "m"
}

func fgRGB(r, g, b string) string {
	return "\x1b[38;2;" + r + ";" + g + ";" + b + "m"
}

var PaletteDefault = Palette{
	Text: "",
	Bold: fg256("215"),
}

var PaletteDoomGruvbox = Palette{
	Text: fgRGB("235", "219", "178"),
	Bold: fgRGB("250", "189", "47"),
}

var PaletteDoomDracula = Palette{
	Text: fgRGB("248", "248", "242"),
	Bold: fgRGB("255", "121", "198"),
}

var PaletteDoomNord = Palette{
	Text: fgRGB("216", "222", "233"),
	Bold: fgRGB("136", "192", "208"),
}

var PaletteTokyoNight = Palette{
	Text: fgRGB("192", "202", "245"),
	Bold: fgRGB("255", "158", "100"),
}

var PaletteSolarizedDark = Palette{
	Text: fgRGB("131", "148", "150"),
	Bold: fgRGB("181", "137", "0"),
}

var PaletteSolarizedLight = Palette{
	Text: fgRGB("101", "123", "131"),
	Bold: fgRGB("203", "75", "22"),
}

var PaletteCatppuccinMocha = Palette{
	Text: fgRGB("205", "214", "244"),
	Bold: fgRGB("250", "179", "135"),
}

var PaletteGithubDark = Palette{
	Text: fgRGB("201", "209", "217"),
	Bold: fgRGB("255", "123", "114"),
}

var PaletteGithubLight = Palette{
	Text: fgRGB("36", "41", "47"),
	Bold: fgRGB("207", "34", "46"),
}

var PaletteOneDark = Palette{
	Text: fgRGB("171", "178", "191"),
	Bold: fgRGB("229", "192", "123"),
}

var PaletteRosePine = Palette{
	Text: fgRGB("224", "222", "244"),
	Bold: fgRGB("235", "188", "186"),
}
