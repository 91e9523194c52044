package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/git-commit-helper/internal/contract"
)

// writeFailureText writes a failed tool result with an error marker.
func writeFailureText(w io.Writer, text string, useColors bool) error {
	label := "error:"
	if useColors {
		label = contract.ErrorColor.Sprint(label)
	}
	_, err := fmt.Fprintf(w, "%s %s\n", label, strings.TrimRight(text, "\n"))
	return err
}
