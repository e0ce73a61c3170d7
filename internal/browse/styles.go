package browse

import (
	"github.com/charmbracelet/lipgloss"

	"peruse/pkg/types"
)

// Styles holds the lipgloss styles for the listing table, built from a
// theme palette.
type Styles struct {
	Title    lipgloss.Style
	Dir      lipgloss.Style
	Muted    lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Emphasis lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles builds the style set from a theme palette (see config.GetTheme).
func NewStyles(theme map[string]string) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme["primary"])),
		Dir: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme["dir"])),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme["muted"])),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme["warning"])),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme["error"])),
		Emphasis: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme["emphasis"])),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme["muted"])),
	}
}

// nameStyle picks the style for an entry name by its tag.
func (s Styles) nameStyle(tag types.TypeTag) lipgloss.Style {
	switch tag {
	case types.TagDir, types.TagParent:
		return s.Dir
	case types.TagImage, types.TagAudio, types.TagVideo:
		return s.Emphasis
	case types.TagBackup, types.TagCoredump:
		return s.Warning
	case types.TagNotFound, types.TagSpecial:
		return s.Error
	case types.TagUnknown:
		return s.Muted
	default:
		return lipgloss.NewStyle()
	}
}
