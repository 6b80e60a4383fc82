package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/eduardolat/quickgen/internal/translate"
)

func (a *app) runLanguages(_ context.Context, _ []string) int {
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tLANGUAGE")
	for _, l := range translate.Languages() {
		fmt.Fprintf(tw, "%s\t%s\n", l.Code(), l.Name)
	}
	if err := tw.Flush(); err != nil {
		a.logger.Error("failed to write language list", "error", err)
		return ExitFailure
	}
	return ExitSuccess
}
