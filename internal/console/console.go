// internal/console/console.go
//
// Line-oriented operator I/O.
// Responsibilities:
//   - Write prompts and messages to the display.
//   - Read one answer per prompt.
//   - Turn the quit token and end of input into errors, so callers never
//     special-case them.
//   - Clear the screen when the display is a terminal.
//
// Input is read by a single pump goroutine feeding a channel; Ask selects on
// it and on ctx, so a cancelled context unwinds even while a read is pending.
// Close releases the pump; it exits at its next line instead of blocking on
// an answer nobody will ask for.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
)

// QuitToken ends the program from any prompt (case-insensitive).
const QuitToken = "q"

var (
	ErrQuit        = errors.New("quit requested")
	ErrInputClosed = errors.New("input closed")
)

// clearSequence moves the cursor home and erases the display.
const clearSequence = "\033[H\033[2J"

// Console reads answers from an input stream and writes to a display.
type Console struct {
	in     io.Reader
	out    io.Writer
	tty    bool
	once   sync.Once
	lines  chan string
	done   chan struct{} // closed by Close
	exited chan struct{} // closed when the pump returns
	closer sync.Once
}

// New builds a Console over arbitrary streams. Clear is a no-op unless out is
// a terminal.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:     in,
		out:    out,
		tty:    isTerminal(out),
		lines:  make(chan string),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

// NewStd builds a Console over the process's stdin and stdout.
func NewStd() *Console {
	return New(os.Stdin, os.Stdout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Ask writes prompt and returns the next line without its line ending.
// Errors: ErrQuit for the quit token, ErrInputClosed at end of input or after
// Close, or ctx.Err() when ctx is done first.
func (c *Console) Ask(ctx context.Context, prompt string) (string, error) {
	c.once.Do(c.startPump)
	select {
	case <-c.done:
		return "", ErrInputClosed
	default:
	}

	if _, err := io.WriteString(c.out, prompt); err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.done:
		return "", ErrInputClosed
	case line, ok := <-c.lines:
		if !ok {
			return "", ErrInputClosed
		}
		if strings.EqualFold(strings.TrimSpace(line), QuitToken) {
			return "", ErrQuit
		}
		return line, nil
	}
}

func (c *Console) startPump() {
	go func() {
		defer close(c.exited)
		defer close(c.lines)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case c.lines <- strings.TrimRight(sc.Text(), "\r"):
			case <-c.done:
				return
			}
		}
		if err := sc.Err(); err != nil {
			log.Debug().Err(err).Msg("console input stopped")
		}
	}()
}

// Close stops the console. Pending and later Asks return ErrInputClosed.
// A read already blocked on the input stream finishes when that stream
// yields a line or ends.
func (c *Console) Close() error {
	c.closer.Do(func() { close(c.done) })
	return nil
}

// Write sends p to the display, so a Console can be used as an io.Writer.
func (c *Console) Write(p []byte) (int, error) { return c.out.Write(p) }

// Printf writes a formatted message to the display.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes its arguments followed by a newline.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Clear erases the display. It does nothing when output is not a terminal,
// keeping piped transcripts free of escape codes.
func (c *Console) Clear() {
	if c.tty {
		_, _ = io.WriteString(c.out, clearSequence)
	}
}
