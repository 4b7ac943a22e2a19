package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs a small banner with the tool version.
func PrintBanner(w io.Writer, version string, opts ...termenv.OutputOption) {
	out := termenv.NewOutput(w, opts...)
	name := out.String("  ( dialsim )").Bold().Foreground(out.Color("#a78bfa"))
	ver := out.String(" " + version).Faint()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s%s\n", name, ver)
	fmt.Fprintln(out)
}
