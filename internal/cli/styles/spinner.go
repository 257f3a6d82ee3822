package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// NewDefaultSpinner creates the default themed spinner.
func NewDefaultSpinner(theme *Theme) spinner.Model {
	s := spinner.New()
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	s.Spinner = spinner.Dot
	return s
}

// LoadingModel wraps a spinner with a message.
type LoadingModel struct {
	Spinner spinner.Model
	Message string
	theme   *Theme
}

// NewLoading creates a loading indicator with message.
func NewLoading(theme *Theme, message string) LoadingModel {
	return LoadingModel{
		Spinner: NewDefaultSpinner(theme),
		Message: message,
		theme:   theme,
	}
}

// View renders the loading indicator.
func (m LoadingModel) View() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.Spinner.View(),
		" ",
		m.theme.Subtle.Render(m.Message),
	)
}

// Skeleton renders placeholder bars shown while a page has not settled.
func Skeleton(theme *Theme, width, lines int) string {
	if width <= 0 {
		width = 40
	}
	widths := []int{width * 3 / 4, width, width * 2 / 3, width * 5 / 6}
	out := make([]string, 0, lines)
	for i := 0; i < lines; i++ {
		w := widths[i%len(widths)]
		if w < 1 {
			w = 1
		}
		out = append(out, theme.Skeleton.Render(strings.Repeat("▀", w)))
	}
	return strings.Join(out, "\n\n")
}
