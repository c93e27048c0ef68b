package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
	"github.com/tartampluch/go-toolbox/internal/present"
	"github.com/zalando/go-keyring"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	valueStyle = lipgloss.NewStyle().PaddingLeft(2)
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// cli carries the dependencies shared by every command. Tests replace the
// clock, the fetcher and the logging setup.
type cli struct {
	debug      bool
	configPath string

	clock   engine.Clock
	fetcher engine.SourceFetcher
	bundle  *i18n.Bundle

	logging func(level slog.Level, debug bool) io.Closer
	closer  io.Closer
}

func newCLI() *cli {
	bundle, _ := present.LoadBundle()
	return &cli{
		clock:   engine.RealClock{},
		fetcher: engine.NewHTTPFetcher(),
		bundle:  bundle,
		logging: setupLogging,
	}
}

func (c *cli) close() {
	if c.closer != nil {
		_ = c.closer.Close()
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           config.CmdRoot,
		Short:         config.ShortRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// serve and gui log at Info, one-shot commands only warn.
			level := slog.LevelWarn
			if cmd.Name() == config.CmdServe || cmd.Name() == config.CmdGUI {
				level = slog.LevelInfo
			}
			c.closer = c.logging(level, c.debug)
			logStartupInfo(cmd.CommandPath())
		},
	}

	root.PersistentFlags().BoolVar(&c.debug, config.FlagDebug, c.debug, config.FlagDescDebug)
	root.PersistentFlags().StringVar(&c.configPath, config.FlagConfig, c.configPath, config.FlagDescConfig)

	root.AddCommand(
		newAgeCmd(c),
		newLiveCmd(c),
		newContactsCmd(c),
		newServeCmd(c),
		newGUICmd(c),
		newToolCmd(c),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdVersion,
		Short: config.ShortVersion,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

// settings loads the settings file named by --config, or the default one.
// The returned path is empty when no location could be determined.
func (c *cli) settings() (config.Settings, string, error) {
	path := c.configPath
	if path == "" {
		p, err := config.DefaultSettingsPath()
		if err != nil {
			slog.Warn(config.ErrConfigDir,
				config.LogKeyComponent, config.CompMain,
				config.LogKeyError, err)
			return config.Defaults(), "", nil
		}
		path = p
	}
	s, err := config.LoadSettings(path)
	return s, path, err
}

// presenter picks lang when given, else the configured language.
func (c *cli) presenter(lang string, s config.Settings) *present.Presenter {
	if lang == "" {
		lang = s.Language
	}
	return present.New(c.bundle, lang)
}

// syncConfig maps the settings to an engine configuration, reading the
// web password from the keyring.
func (c *cli) syncConfig(s config.Settings) engine.SyncConfig {
	cfg := engine.SyncConfig{
		Mode:            s.Source.Mode,
		LocalPath:       s.Source.LocalPath,
		WebURL:          s.Source.WebURL,
		WebUser:         s.Source.WebUser,
		ReminderTrigger: s.ReminderTrigger,
	}
	if cfg.Mode == config.SourceModeWeb && cfg.WebUser != "" {
		pass, err := keyring.Get(config.KeyringService, cfg.WebUser)
		if err != nil {
			slog.Debug(config.MsgPassFail,
				config.LogKeyComponent, config.CompMain,
				config.LogKeyUser, cfg.WebUser,
				config.LogKeyError, err)
		}
		cfg.WebPass = pass
	}
	return cfg
}

// warn prints the localized message for an engine error on w and returns
// err unchanged.
func warn(w io.Writer, p *present.Presenter, err error) error {
	key := config.TKeyErrInput
	if errors.Is(err, engine.ErrInvalidRange) {
		key = config.TKeyErrRange
	}
	fmt.Fprintln(w, warnStyle.Render(p.Msg(key)))
	return err
}
