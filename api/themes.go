package api

// Theme defines the color palette charts are drawn with.
type Theme struct {
	Name       string
	Series     []string // fill colors cycled per series / slice
	Axis       string
	Text       string
	Background string
}

// DefaultTheme returns the default chart palette.
func DefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Series:     []string{"#4169E1", "#32CD32", "#FFD700", "#FF6347", "#00CED1", "#8A2BE2"},
		Axis:       "#808080",
		Text:       "#1F2937",
		Background: "#FFFFFF",
	}
}

// DarkTheme returns a dark chart palette.
func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Series:     []string{"#BB86FC", "#03DAC6", "#4CAF50", "#FF9800", "#2196F3", "#F44336"},
		Axis:       "#9E9E9E",
		Text:       "#ECEFF1",
		Background: "#263238",
	}
}

// LightTheme returns a light chart palette.
func LightTheme() Theme {
	return Theme{
		Name:       "light",
		Series:     []string{"#6200EA", "#00BCD4", "#388E3C", "#F57C00", "#1976D2", "#D32F2F"},
		Axis:       "#757575",
		Text:       "#212121",
		Background: "#FAFAFA",
	}
}

// ThemeByName resolves a theme name. Unknown names fall back to the default
// palette rather than failing.
func ThemeByName(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DefaultTheme()
	}
}

// SeriesColor returns the fill color for series index i, cycling the palette.
func (t Theme) SeriesColor(i int) string {
	if len(t.Series) == 0 {
		return "#000000"
	}
	return t.Series[i%len(t.Series)]
}
