package theme

import "github.com/charmbracelet/lipgloss"

// Mode is the persisted theme preference.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Toggle flips between light and dark.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Palette is the color set screens build their styles from. Passing it
// explicitly keeps theme state out of package globals.
type Palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Income  lipgloss.Color
	Expense lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
}

func PaletteFor(m Mode) Palette {
	if m == Dark {
		return Palette{
			Text:    lipgloss.Color("#e5e7eb"),
			Muted:   lipgloss.Color("#9ca3af"),
			Accent:  lipgloss.Color("#60a5fa"),
			Income:  lipgloss.Color("#4ade80"),
			Expense: lipgloss.Color("#f87171"),
			Surface: lipgloss.Color("#1f2937"),
			Border:  lipgloss.Color("#374151"),
		}
	}
	return Palette{
		Text:    lipgloss.Color("#1f2937"),
		Muted:   lipgloss.Color("#6b7280"),
		Accent:  lipgloss.Color("#3b82f6"),
		Income:  lipgloss.Color("#16a34a"),
		Expense: lipgloss.Color("#dc2626"),
		Surface: lipgloss.Color("#ffffff"),
		Border:  lipgloss.Color("#e5e7eb"),
	}
}
