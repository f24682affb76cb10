package repl

import (
	"io"
	"os"

	"github.com/averycrespi/mathline/internal/config"
	"github.com/averycrespi/mathline/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Styles holds the look of each kind of line the shell prints
type Styles struct {
	Title  lipgloss.Style
	Hint   lipgloss.Style
	Prompt lipgloss.Style
	Result lipgloss.Style
	Set    lipgloss.Style
	Solved lipgloss.Style
	Error  lipgloss.Style
	Meme   lipgloss.Style
}

// PlainStyles renders every line unchanged
func PlainStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle(),
		Hint:   lipgloss.NewStyle(),
		Prompt: lipgloss.NewStyle(),
		Result: lipgloss.NewStyle(),
		Set:    lipgloss.NewStyle(),
		Solved: lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
		Meme:   lipgloss.NewStyle(),
	}
}

// ColorStyles renders through r, so the color profile follows r's output
func ColorStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Hint:   r.NewStyle().Faint(true),
		Prompt: r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Result: r.NewStyle().Foreground(lipgloss.Color("42")),
		Set:    r.NewStyle().Foreground(lipgloss.Color("111")),
		Solved: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Error:  r.NewStyle().Foreground(lipgloss.Color("196")),
		Meme:   r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}

// StylesFor picks styles for out according to the color mode:
// never is plain, always forces ANSI colors, and auto colors only
// when out is a terminal.
func StylesFor(out io.Writer, mode string) Styles {
	switch mode {
	case config.ColorNever:
		return PlainStyles()
	case config.ColorAlways:
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI256)
		return ColorStyles(r)
	default:
		if !IsTerminal(out) {
			return PlainStyles()
		}
		return ColorStyles(lipgloss.NewRenderer(out))
	}
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// outcomeStyle selects the style for a processed line
func (s Styles) outcomeStyle(kind types.OutcomeKind) lipgloss.Style {
	switch kind {
	case types.OutcomeAssignment:
		return s.Set
	case types.OutcomeEquation:
		return s.Solved
	case types.OutcomeError:
		return s.Error
	default:
		return s.Result
	}
}
