// main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/browser"
	"github.com/urfave/cli/v3"
)

func main() {
	// The TUI owns the terminal; the browser helper must not print into it.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	app := &cli.Command{
		Name:  "playlist-sorter",
		Usage: "Sort and reorder playlists through the playlist sorter service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (default: config.yaml in the config dir or .)",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Base URL of the playlist sorter service",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "channel",
				Usage: "Channel ID to prefill",
			},
		},
		Action: runTUI,
		Commands: []*cli.Command{
			playlistsCommand(),
			sortCommand(),
			themeCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
