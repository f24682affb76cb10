// Package repl implements the interactive calculator shell.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/averycrespi/mathline/internal/config"
	"github.com/averycrespi/mathline/internal/value"
	"github.com/averycrespi/mathline/pkg/types"
)

// Shell commands
const (
	CommandQuit = "quit"
	CommandExit = "exit"
	CommandMeme = "meme"
	CommandVars = "vars"
)

// NoVariables is printed by the vars command when the store is empty
const NoVariables = "No variables set"

var bannerLines = []string{
	"Set variables: x=5",
	"Use in math: x+3, 2*x, etc.",
	"Solve equations: 6+x=7, 2*x-3=5",
	"Functions: sqrt(16), 9**2, sin(pi/2)",
	"Natural language: '9 squared', 'sqrt of 16', '5 cubed'",
	"Fractions: 1/2 + 1/3, 2 1/2 + 3/4",
	"Type 'meme' to toggle meme mode!",
}

const bannerTitle = "Simple Calculator - Type math expressions or 'quit'"

// Options configures a Shell
type Options struct {
	Prompt   string
	MemeMode bool
	Styles   Styles
}

// Shell reads one line per turn and prints one result per turn
type Shell struct {
	calc   types.Calculator
	in     io.Reader
	out    io.Writer
	prompt string
	meme   bool
	styles Styles
}

// New creates a shell reading from in and writing to out
func New(calc types.Calculator, in io.Reader, out io.Writer, opts Options) *Shell {
	if opts.Prompt == "" {
		opts.Prompt = config.DefaultPrompt
	}
	return &Shell{
		calc:   calc,
		in:     in,
		out:    out,
		prompt: opts.Prompt,
		meme:   opts.MemeMode,
		styles: opts.Styles,
	}
}

// MemeMode reports whether meme mode is on
func (s *Shell) MemeMode() bool {
	return s.meme
}

// Run prints the banner and processes lines until quit, end of input or
// ctx is done. Only a write failure is returned as an error.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.writeBanner(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		if _, err := fmt.Fprint(s.out, "\n"+s.styles.Prompt.Render(s.prompt)); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		var line string
		select {
		case <-ctx.Done():
			slog.Debug("Shell interrupted", "error", ctx.Err())
			return nil
		case l, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						slog.Warn("Failed to read input", "error", err)
					}
				default:
				}
				return nil
			}
			line = l
		}

		output, quit := s.Turn(ctx, line)
		if quit {
			return nil
		}
		if output == "" {
			continue
		}
		if _, err := fmt.Fprintln(s.out, output); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
}

func (s *Shell) writeBanner() error {
	var b strings.Builder
	b.WriteString(s.styles.Title.Render(bannerTitle))
	b.WriteString("\n")
	for _, line := range bannerLines {
		b.WriteString(s.styles.Hint.Render(line))
		b.WriteString("\n")
	}
	if _, err := io.WriteString(s.out, b.String()); err != nil {
		return fmt.Errorf("failed to write banner: %w", err)
	}
	return nil
}

// Turn handles a single line and returns the styled output, which is
// empty for blank lines. quit is true when the line ends the session.
func (s *Shell) Turn(ctx context.Context, line string) (output string, quit bool) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return "", false
	case CommandQuit, CommandExit:
		return "", true
	case CommandMeme:
		s.meme = !s.meme
		slog.Debug("Toggled meme mode", "meme_mode", s.meme)
		return s.styles.Meme.Render(memeStatus(s.meme)), false
	case CommandVars:
		return s.listVariables(), false
	}

	if s.meme && !strings.Contains(line, "=") {
		if answer, ok := memeAnswer(line); ok {
			return s.styles.Meme.Render(answer), false
		}
	}

	out := s.calc.Process(ctx, line)
	text := s.styles.outcomeStyle(out.Kind).Render(out.Text)
	if s.meme && strings.HasPrefix(out.Text, "= ") {
		if note := memeAnnotation(line); note != "" {
			text += s.styles.Meme.Render(note)
		}
	}
	return text, false
}

func (s *Shell) listVariables() string {
	vs := s.calc.Variables()
	if len(vs) == 0 {
		return s.styles.Hint.Render(NoVariables)
	}
	lines := make([]string, 0, len(vs))
	for _, v := range vs {
		lines = append(lines, s.styles.Set.Render(v.Name+" = "+value.FormatFloat(v.Value)))
	}
	return strings.Join(lines, "\n")
}
