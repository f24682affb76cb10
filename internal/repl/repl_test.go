package repl

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/averycrespi/mathline/internal/calc"
	"github.com/averycrespi/mathline/internal/config"
	"github.com/averycrespi/mathline/internal/vars"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShell(in io.Reader, out io.Writer) *Shell {
	engine := calc.New(vars.NewStore(), time.Second)
	return New(engine, in, out, Options{Styles: PlainStyles()})
}

type turn struct {
	input    string
	expected string
}

// readTranscript parses a session file: "> " lines are input and the
// lines up to the next input are the expected output.
func readTranscript(t *testing.T, path string) []turn {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var turns []turn
	var output []string
	flush := func() {
		if len(turns) > 0 {
			turns[len(turns)-1].expected = strings.Join(output, "\n")
		}
		output = nil
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "#"):
		case strings.HasPrefix(line, ">"):
			flush()
			turns = append(turns, turn{input: strings.TrimSpace(strings.TrimPrefix(line, ">"))})
		default:
			output = append(output, line)
		}
	}
	require.NoError(t, scanner.Err())
	flush()
	return turns
}

func TestSessions(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "sessions", "*.txt"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			shell := newShell(strings.NewReader(""), io.Discard)
			for i, tt := range readTranscript(t, path) {
				output, quit := shell.Turn(context.Background(), tt.input)
				assert.False(t, quit)
				assert.Equal(t, tt.expected, output, "turn %d: %q", i+1, tt.input)
			}
		})
	}
}

func TestRun(t *testing.T) {
	in := strings.NewReader("x=5\nx+3\n\nquit\n2+2\n")
	var out bytes.Buffer

	shell := newShell(in, &out)
	require.NoError(t, shell.Run(context.Background()))

	expected := bannerTitle + "\n" +
		strings.Join(bannerLines, "\n") + "\n" +
		"\n> Set x = 5\n" +
		"\n> = 8.0\n" +
		"\n> " +
		"\n> "
	assert.Equal(t, expected, out.String())
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	shell := New(calc.New(vars.NewStore(), time.Second), strings.NewReader("exit"), &out, Options{
		Prompt: ">>> ",
		Styles: PlainStyles(),
	})
	require.NoError(t, shell.Run(context.Background()))
	assert.True(t, strings.HasSuffix(out.String(), "\n>>> "))

	out.Reset()
	shell = newShell(strings.NewReader("1+1"), &out)
	require.NoError(t, shell.Run(context.Background()))
	assert.True(t, strings.HasSuffix(out.String(), "\n> = 2\n\n> "))
}

func TestRunStopsWhenCancelled(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- newShell(in, io.Discard).Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("shell did not stop after cancel")
	}
}

func TestMemeToggle(t *testing.T) {
	shell := newShell(strings.NewReader(""), io.Discard)
	assert.False(t, shell.MemeMode())

	output, _ := shell.Turn(context.Background(), "meme")
	assert.Equal(t, MemeOn, output)
	assert.True(t, shell.MemeMode())

	// Equations and assignments are never answered with a joke
	output, _ = shell.Turn(context.Background(), "x+41=42")
	assert.Equal(t, "x = 1", output)

	output, _ = shell.Turn(context.Background(), "meme")
	assert.Equal(t, MemeOff, output)
}

func TestStylesFor(t *testing.T) {
	var buf bytes.Buffer

	plain := StylesFor(&buf, config.ColorAuto)
	assert.Equal(t, "= 5", plain.Result.Render("= 5"))

	plain = StylesFor(&buf, config.ColorNever)
	assert.Equal(t, "= 5", plain.Result.Render("= 5"))

	colored := StylesFor(&buf, config.ColorAlways)
	rendered := colored.Error.Render("Invalid - Syntax error")
	assert.Contains(t, rendered, "Invalid - Syntax error")
	assert.Contains(t, rendered, "\x1b[")

	assert.False(t, IsTerminal(&buf))
}
