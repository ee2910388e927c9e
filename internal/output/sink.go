// Package output reports a resolved colour name to the user.
package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/hashicorp/go-hclog"
)

// CopiedNotice is written after the name has been placed on the clipboard.
const CopiedNotice = "(This has been copied to the clipboard for you)"

// ErrClipboard means the system clipboard could not be written.
var ErrClipboard = errors.New("clipboard unavailable")

// Clipboard is the destination for the resolved name.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteAll replaces the clipboard contents with text.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available on this system")
	}
	return clipboard.WriteAll(text)
}

// Sink prints a colour name and copies it to a clipboard.
type Sink struct {
	out       io.Writer
	notice    io.Writer
	clipboard Clipboard
	logger    hclog.Logger
}

// NewSink creates a Sink. The name line goes to out and the clipboard
// notice to notice; a nil logger discards diagnostics.
func NewSink(out, notice io.Writer, cb Clipboard, logger hclog.Logger) *Sink {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Sink{
		out:       out,
		notice:    notice,
		clipboard: cb,
		logger:    logger,
	}
}

// Emit prints "Name: <name>" and copies name to the clipboard.
func (s *Sink) Emit(name string) error {
	if _, err := fmt.Fprintf(s.out, "Name: %s\n", name); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := s.clipboard.WriteAll(name); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	s.logger.Debug("copied name to clipboard", "name", name)

	_, _ = fmt.Fprintln(s.notice, CopiedNotice)
	return nil
}
