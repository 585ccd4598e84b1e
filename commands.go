package main

import (
	"TUI_playlist_sorter/internal/core/domain"
	"TUI_playlist_sorter/internal/handler/tui"
	"context"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/pkg/browser"
	"github.com/urfave/cli/v3"
)

// consoleAlerts prints alerts raised by the use cases when running headless.
type consoleAlerts struct {
	out *log.Logger
}

func newConsoleAlerts() consoleAlerts {
	return consoleAlerts{out: log.NewWithOptions(os.Stderr, log.Options{Prefix: "playlist-sorter"})}
}

func (c consoleAlerts) Alert(msg string) {
	c.out.Print(msg)
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	alerts := tui.NewAlertBox()
	app, err := newApplication(cmd, alerts)
	if err != nil {
		return err
	}
	defer app.Close()

	model := tui.NewAppModel(tui.Deps{
		Session: app.session,
		Browser: app.browser,
		Engine:  app.engine,
		Theme:   app.theme,
		Alerts:  alerts,
		Logger:  app.logger,
	}, tui.Options{
		RefreshCooldown: app.cfg.UI.RefreshCooldown,
		OpenURL:         browser.OpenURL,
		InitialChannel:  cmd.String("channel"),
		ServiceURL:      app.provider.BaseURL(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		app.logger.Error("Error running TUI program", err)
		return err
	}
	return nil
}

func playlistsCommand() *cli.Command {
	return &cli.Command{
		Name:  "playlists",
		Usage: "List the playlists of a channel",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "channel",
				Usage:    "Channel ID or channel URL",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := newApplication(cmd, newConsoleAlerts())
			if err != nil {
				return err
			}
			defer app.Close()

			channelID, err := tui.ParseChannelInput(cmd.String("channel"))
			if err != nil {
				return err
			}
			if err := app.ensureSession(ctx); err != nil {
				return err
			}
			if err := app.browser.FetchPlaylists(ctx, channelID); err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "TITLE", "VIDEOS")
			for _, p := range app.browser.Playlists() {
				t.Row(p.ID, p.Title, strconv.FormatInt(p.ItemCount, 10))
			}
			fmt.Println(t)
			return nil
		},
	}
}

func sortCommand() *cli.Command {
	return &cli.Command{
		Name:  "sort",
		Usage: "Create a sorted copy of a playlist",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "playlist",
				Usage:    "Playlist ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "by",
				Usage: "Sort field: title, date or channel",
				Value: string(domain.SortByTitle),
			},
			&cli.StringFlag{
				Name:  "order",
				Usage: "Sort order: asc or desc",
				Value: string(domain.Ascending),
			},
			&cli.StringFlag{
				Name:     "name",
				Usage:    "Name of the new playlist",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the new playlist in the browser",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			field, err := domain.ParseSortField(cmd.String("by"))
			if err != nil {
				return err
			}
			direction, err := domain.ParseSortDirection(cmd.String("order"))
			if err != nil {
				return err
			}

			app, err := newApplication(cmd, newConsoleAlerts())
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.ensureSession(ctx); err != nil {
				return err
			}

			playlist := domain.PlaylistSummary{ID: cmd.String("playlist")}
			if err := app.engine.LoadItems(ctx, playlist); err != nil {
				return err
			}
			if err := app.engine.ApplySort(field, direction); err != nil {
				return err
			}

			id, err := app.engine.Submit(ctx, cmd.String("name"))
			if err != nil {
				return err
			}

			link := "https://www.youtube.com/playlist?list=" + id
			fmt.Println(link)
			if cmd.Bool("open") {
				if err := browser.OpenURL(link); err != nil {
					app.logger.Error("Failed to open browser", err, "url", link)
				}
			}
			return nil
		},
	}
}

func themeCommand() *cli.Command {
	return &cli.Command{
		Name:  "theme",
		Usage: "Toggle between the dark and light theme",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "show",
				Usage: "Print the current theme without toggling",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := newApplication(cmd, newConsoleAlerts())
			if err != nil {
				return err
			}
			defer app.Close()

			theme := app.theme.Theme()
			if !cmd.Bool("show") {
				if theme, err = app.theme.Toggle(); err != nil {
					return err
				}
			}
			fmt.Println(theme.Mode())
			return nil
		},
	}
}
