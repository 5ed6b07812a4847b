package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/common-nighthawk/go-figure"
)

func printBanner(out io.Writer, appName string) {
	fmt.Fprintln(out, figure.NewFigure(appName, "cybermedium", true).String())
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}
