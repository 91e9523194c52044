package outwriter

import (
	"io"
	"os"

	"github.com/huangsam/git-commit-helper/internal/contract"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// GetMaxDescriptionWidth calculates the maximum width for tool descriptions in
// table output based on terminal width.
func GetMaxDescriptionWidth(cfg *contract.Config, w io.Writer) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 {
		termWidth = 80 // Conservative default for pipes and CI
		if f, ok := w.(*os.File); ok {
			if detected, _, err := term.GetSize(int(f.Fd())); err == nil && detected > 0 {
				termWidth = detected
			}
		}
	}

	// Reserve space for the Tool and Parameters columns with borders/padding
	available := termWidth - 60
	if available < 20 {
		return 20
	}
	if available > 100 {
		return 100
	}
	return available
}
