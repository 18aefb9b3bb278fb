// internal/terminal/terminal.go
//
// Line-based terminal I/O for the game loop.
// Reads one line per prompt and writes whole frames, optionally clearing
// the screen with an ANSI sequence first. No game logic lives here.

package terminal

import (
	"bufio"
	"io"
	"strings"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

// IO is what the game loop needs from a terminal.
type IO interface {
	// ReadLine writes prompt and blocks for one line of input.
	ReadLine(prompt string) (string, error)
	// WriteFrame replaces the screen with text.
	WriteFrame(text string) error
	// Message prints text below whatever is on screen.
	Message(text string) error
}

// Terminal implements IO over a reader/writer pair.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool
}

// New wraps in and out. With clear set, every frame starts on a blank screen.
func New(in io.Reader, out io.Writer, clear bool) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out, clear: clear}
}

// ReadLine returns the line without its terminator but otherwise untrimmed.
// A final line lacking a newline is returned; after it io.EOF is.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(t.out, prompt); err != nil {
		return "", err
	}
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (t *Terminal) WriteFrame(text string) error {
	if t.clear {
		if _, err := io.WriteString(t.out, clearScreen); err != nil {
			return err
		}
	}
	_, err := io.WriteString(t.out, text)
	return err
}

func (t *Terminal) Message(text string) error {
	_, err := io.WriteString(t.out, text+"\n")
	return err
}
