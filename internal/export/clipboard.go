package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"github.com/chmouel/lazycollect/internal/log"
)

// ClipboardMethod tells how a copy reached the clipboard.
type ClipboardMethod string

// Clipboard methods.
const (
	ClipboardNative ClipboardMethod = "system clipboard"
	ClipboardOSC52  ClipboardMethod = "terminal (OSC 52)"
)

// Clipboard copies text to the system clipboard. When no native clipboard
// tool is available it writes an OSC 52 sequence to Output so the terminal
// emulator sets the clipboard, which also works over ssh.
type Clipboard struct {
	Output io.Writer

	writeNative func(string) error
	unsupported func() bool
	getenv      func(string) string
}

// NewClipboard returns a clipboard falling back to OSC 52 on out.
func NewClipboard(out io.Writer) *Clipboard {
	if out == nil {
		out = os.Stderr
	}
	return &Clipboard{
		Output:      out,
		writeNative: clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
		getenv:      os.Getenv,
	}
}

// Copy places text on the clipboard.
func (c *Clipboard) Copy(text string) (ClipboardMethod, error) {
	if text == "" {
		return "", ErrNoSelection
	}

	if !c.unsupported() {
		err := c.writeNative(text)
		if err == nil {
			log.Printf("export: copied %d bytes to the system clipboard", len(text))
			return ClipboardNative, nil
		}
		log.Printf("export: system clipboard failed, trying OSC 52: %v", err)
	}

	seq := osc52.New(text)
	switch {
	case c.getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(c.getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.Output); err != nil {
		return "", fmt.Errorf("copy to clipboard: %w", err)
	}
	log.Printf("export: copied %d bytes through OSC 52", len(text))
	return ClipboardOSC52, nil
}
