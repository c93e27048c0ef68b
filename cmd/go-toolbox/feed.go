package main

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
	"github.com/tartampluch/go-toolbox/internal/present"
	"github.com/tartampluch/go-toolbox/internal/server"
	"github.com/tartampluch/go-toolbox/internal/ui"
	"golang.org/x/sync/errgroup"
)

// sourceFlags override the vCard source of the settings file.
type sourceFlags struct {
	path string
	url  string
	user string
}

func (f *sourceFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, config.FlagPath, "", config.FlagDescPath)
	cmd.Flags().StringVar(&f.url, config.FlagURL, "", config.FlagDescURL)
	cmd.Flags().StringVar(&f.user, config.FlagUser, "", config.FlagDescUser)
}

// apply replaces the configured source when a path or URL is given.
func (f *sourceFlags) apply(s *config.Settings) {
	switch {
	case f.path != "":
		s.Source = config.SourceConfig{Mode: config.SourceModeLocal, LocalPath: f.path}
	case f.url != "":
		s.Source = config.SourceConfig{Mode: config.SourceModeWeb, WebURL: f.url, WebUser: f.user}
	}
}

func newContactsCmd(c *cli) *cobra.Command {
	var (
		src  sourceFlags
		lang string
	)

	cmd := &cobra.Command{
		Use:   config.CmdContacts,
		Short: config.ShortContacts,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, err := c.settings()
			if err != nil {
				return err
			}
			src.apply(&s)
			p := c.presenter(lang, s)

			gen := &engine.Generator{
				Clock:         c.clock,
				Fetcher:       c.fetcher,
				FormatSummary: p.SummaryFormatter(),
			}
			feed, err := gen.RunSync(cmd.Context(), c.syncConfig(s))
			if err != nil {
				return err
			}

			renderEntries(cmd.OutOrStdout(), p, feed.Entries)
			return nil
		},
	}

	src.bind(cmd)
	cmd.Flags().StringVar(&lang, config.FlagLang, "", config.FlagDescLang)
	return cmd
}

// renderEntries prints entries as a table, next occurrence first.
func renderEntries(w io.Writer, p *present.Presenter, entries []engine.AnniversaryEntry) {
	slices.SortStableFunc(entries, func(a, b engine.AnniversaryEntry) int {
		if n := a.NextOccurrence.Compare(b.NextOccurrence); n != 0 {
			return n
		}
		return cmp.Compare(a.Name, b.Name)
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(p.Msg(config.TKeyColName), p.Msg(config.TKeyColKind), p.Msg(config.TKeyColDate), p.Msg(config.TKeyColAge)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return labelStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, e := range entries {
		t.Row(e.Name, p.Kind(e.Kind), p.Date(e.NextOccurrence), p.AgeTransition(e))
	}
	fmt.Fprintln(w, t.Render())
}

func newServeCmd(c *cli) *cobra.Command {
	var (
		src  sourceFlags
		port string
	)

	cmd := &cobra.Command{
		Use:   config.CmdServe,
		Short: config.ShortServe,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, path, err := c.settings()
			if err != nil {
				return err
			}
			src.apply(&s)
			if port != "" {
				s.Port = port
			}
			if err := config.ValidatePort(s.Port); err != nil {
				return err
			}

			var current atomic.Pointer[config.Settings]
			current.Store(&s)

			srv := server.New(s.Port, c.bundle, c.clock)
			gen := &engine.Generator{Clock: c.clock, Fetcher: c.fetcher}
			worker := server.NewFeedWorker(gen, srv,
				func() engine.SyncConfig {
					st := current.Load()
					gen.FormatSummary = present.New(c.bundle, st.Language).SummaryFormatter()
					return c.syncConfig(*st)
				},
				func() time.Duration { return current.Load().RefreshInterval() },
			)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error { return srv.Start(ctx) })
			g.Go(func() error {
				worker.Run(ctx)
				return nil
			})
			// Flags pin the source, so edits to the file only matter
			// without them.
			if path != "" && src.path == "" && src.url == "" {
				g.Go(func() error {
					err := config.WatchSettings(ctx, path, func(next config.Settings) {
						current.Store(&next)
						worker.Reschedule()
						worker.Refresh(false)
					})
					if err != nil {
						slog.Warn(config.ErrWatch,
							config.LogKeyComponent, config.CompMain,
							config.LogKeyError, err)
					}
					return nil
				})
			}
			return g.Wait()
		},
	}

	src.bind(cmd)
	cmd.Flags().StringVar(&port, config.FlagPort, "", config.FlagDescPort)
	return cmd
}

func newGUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdGUI,
		Short: config.ShortGUI,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, path, err := c.settings()
			if err != nil {
				return err
			}

			a := app.NewWithID(config.AppID)
			srv := server.New(s.Port, c.bundle, c.clock)
			gui := ui.NewToolboxApp(cmd.Context(), a, s, c.bundle, srv, c.fetcher)
			gui.SettingsPath = path

			// Blocks until the app quits or the context ends.
			gui.Run()

			slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
			return nil
		},
	}
}
