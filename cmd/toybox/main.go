package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"toybox/internal/cli"
)

const (
	cmdName = "toybox"

	shortDesc = "An interactive terminal dashboard."
	longDesc  = `toybox renders a sample dashboard in the terminal: four metric cards,
a click counter, an animated progress bar and bar, line and pie charts.

The charts can also be exported as PNG or SVG images.
`
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		stop()
		os.Exit(1)
	}
}
