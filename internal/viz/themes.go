package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color

	Bar     lipgloss.Color
	Range   lipgloss.Color
	Compare lipgloss.Color
	Swap    lipgloss.Color
	Pivot   lipgloss.Color
	Sorted  lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Primary: lipgloss.Color("#ff00ff"),
		Accent:  lipgloss.Color("#ffff00"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Error:   lipgloss.Color("#ff0000"),
		Bar:     lipgloss.Color("#00ffff"),
		Range:   lipgloss.Color("#0088aa"),
		Compare: lipgloss.Color("#ffff00"),
		Swap:    lipgloss.Color("#ff0066"),
		Pivot:   lipgloss.Color("#ff00ff"),
		Sorted:  lipgloss.Color("#00ff00"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Error:   lipgloss.Color("#ff0000"),
		Bar:     lipgloss.Color("#00cc00"),
		Range:   lipgloss.Color("#007700"),
		Compare: lipgloss.Color("#ccffcc"),
		Swap:    lipgloss.Color("#ffff00"),
		Pivot:   lipgloss.Color("#88ff88"),
		Sorted:  lipgloss.Color("#00ff00"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Error:   lipgloss.Color("#ff0000"),
		Bar:     lipgloss.Color("#cccccc"),
		Range:   lipgloss.Color("#888888"),
		Compare: lipgloss.Color("#0088ff"),
		Swap:    lipgloss.Color("#ffaa00"),
		Pivot:   lipgloss.Color("#ff00ff"),
		Sorted:  lipgloss.Color("#00ff00"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Error:   lipgloss.Color("#ff4444"),
		Bar:     lipgloss.Color("#00a8cc"),
		Range:   lipgloss.Color("#005f8a"),
		Compare: lipgloss.Color("#ffd700"),
		Swap:    lipgloss.Color("#ff4444"),
		Pivot:   lipgloss.Color("#ff9ff3"),
		Sorted:  lipgloss.Color("#00ff88"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Primary: lipgloss.Color("#ff6b6b"),
		Accent:  lipgloss.Color("#ff9ff3"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Error:   lipgloss.Color("#ff4757"),
		Bar:     lipgloss.Color("#feca57"),
		Range:   lipgloss.Color("#b08a3e"),
		Compare: lipgloss.Color("#ff9ff3"),
		Swap:    lipgloss.Color("#ff4757"),
		Pivot:   lipgloss.Color("#ff6b6b"),
		Sorted:  lipgloss.Color("#5fd068"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
