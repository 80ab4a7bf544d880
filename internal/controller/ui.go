// Package controller provides the terminal front-ends for sequence.
package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"sequence.dev/pkg/sequence/internal/domain"
)

// NewUI returns the interactive TUI when attached to a terminal and the
// plain SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) domain.UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
