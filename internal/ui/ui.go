// Package ui is the desktop front end: a system tray menu, the live age
// window, the anniversaries table and the settings dialog.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
	"github.com/tartampluch/go-toolbox/internal/present"
	"github.com/tartampluch/go-toolbox/internal/server"
	"github.com/zalando/go-keyring"
)

// ToolboxApp holds the UI state and the services it drives.
type ToolboxApp struct {
	App          fyne.App
	Ctx          context.Context
	SettingsPath string

	Bundle    *i18n.Bundle
	Languages []string

	// stateMut guards settings and presenter, read by the worker goroutine.
	stateMut  sync.RWMutex
	settings  config.Settings
	presenter *present.Presenter

	Server  *server.Server
	Worker  *server.FeedWorker
	Fetcher engine.SourceFetcher
	Clock   engine.Clock

	Tray desktop.App
	Menu *fyne.Menu

	TrayStatusItem   *fyne.MenuItem
	TrayAgeItem      *fyne.MenuItem
	TrayContactsItem *fyne.MenuItem
	TrayRefreshItem  *fyne.MenuItem
	TraySettingsItem *fyne.MenuItem

	ContactsMut sync.RWMutex
	Contacts    []engine.AnniversaryEntry

	ageWindow      fyne.Window
	contactsWindow fyne.Window
	settingsWindow fyne.Window
}

// NewToolboxApp wires the application. The worker is created here so the
// tray and the settings dialog can trigger refreshes.
func NewToolboxApp(ctx context.Context, a fyne.App, settings config.Settings, bundle *i18n.Bundle, srv *server.Server, fetcher engine.SourceFetcher) *ToolboxApp {
	a.SetIcon(theme.HistoryIcon())

	app := &ToolboxApp{
		App:       a,
		Ctx:       ctx,
		Bundle:    bundle,
		Languages: config.SupportedLanguages,
		settings:  settings,
		presenter: present.New(bundle, settings.Language),
		Server:    srv,
		Fetcher:   fetcher,
		Clock:     engine.RealClock{},
		Contacts:  make([]engine.AnniversaryEntry, 0),
	}

	gen := &engine.Generator{Fetcher: fetcher}
	interval := func() time.Duration { return app.Settings().RefreshInterval() }
	app.Worker = server.NewFeedWorker(gen, srv, app.loadSyncConfig, interval)
	app.Worker.OnSync = app.onSync
	return app
}

// Settings returns the settings in effect.
func (app *ToolboxApp) Settings() config.Settings {
	app.stateMut.RLock()
	defer app.stateMut.RUnlock()
	return app.settings
}

// Presenter returns the formatter for the current language.
func (app *ToolboxApp) Presenter() *present.Presenter {
	app.stateMut.RLock()
	defer app.stateMut.RUnlock()
	return app.presenter
}

// Run starts the server, the tray and the feed worker, then blocks in the
// fyne event loop.
func (app *ToolboxApp) Run() {
	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
			app.App.SendNotification(fyne.NewNotification(config.AppName,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupported, config.LogKeyComponent, config.CompUI)
		app.ShowAgeWindow()
	}

	go func() {
		<-app.Ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
		fyne.Do(app.App.Quit)
	}()

	go app.Worker.Run(app.Ctx)
	if app.SettingsPath != "" {
		go app.watchSettings()
	}
	app.App.Run()
}

// watchSettings applies edits made to the settings file while running.
func (app *ToolboxApp) watchSettings() {
	err := config.WatchSettings(app.Ctx, app.SettingsPath, func(s config.Settings) {
		fyne.Do(func() { app.applySettings(s) })
	})
	if err != nil {
		slog.Warn(config.ErrWatch,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
	}
}

// setupTrayMenu builds the tray menu. The status line opens the table.
func (app *ToolboxApp) setupTrayMenu() {
	app.TrayStatusItem = fyne.NewMenuItem(app.trayStatusLabel(0, nil), app.ShowContactsWindow)
	app.TrayAgeItem = fyne.NewMenuItem("", app.ShowAgeWindow)
	app.TrayContactsItem = fyne.NewMenuItem("", app.ShowContactsWindow)
	app.TrayRefreshItem = fyne.NewMenuItem("", func() {
		app.Worker.Refresh(true)
	})
	app.TraySettingsItem = fyne.NewMenuItem("", app.ShowSettingsWindow)

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayStatusItem,
		fyne.NewMenuItemSeparator(),
		app.TrayAgeItem,
		app.TrayContactsItem,
		fyne.NewMenuItemSeparator(),
		app.TrayRefreshItem,
		app.TraySettingsItem,
	)
	app.RefreshTrayMenu()
	app.Tray.SetSystemTrayMenu(app.Menu)
}

// RefreshTrayMenu re-applies the localized labels.
func (app *ToolboxApp) RefreshTrayMenu() {
	if app.Menu == nil {
		return
	}
	p := app.Presenter()
	app.TrayAgeItem.Label = p.Msg(config.TKeyMenuAge)
	app.TrayContactsItem.Label = p.Msg(config.TKeyMenuContacts)
	app.TrayRefreshItem.Label = p.Msg(config.TKeyMenuRefresh)
	app.TraySettingsItem.Label = p.Msg(config.TKeyMenuSettings)
	app.Menu.Refresh()
}

// onSync receives every worker result.
func (app *ToolboxApp) onSync(feed engine.Feed, err error, manual bool) {
	if err == nil {
		app.ContactsMut.Lock()
		app.Contacts = feed.Entries
		app.ContactsMut.Unlock()
	}

	fyne.Do(func() {
		app.updateTrayStatus(feed.Today, err)
	})

	if !manual {
		return
	}
	msg := app.Presenter().Msg(config.TKeyNotifSuccess)
	if err != nil {
		msg = app.Presenter().Msg(config.TKeyNotifError)
	}
	app.App.SendNotification(fyne.NewNotification(config.AppName, msg))
}

func (app *ToolboxApp) updateTrayStatus(today int, err error) {
	if app.Menu == nil || app.TrayStatusItem == nil {
		return
	}
	app.TrayStatusItem.Label = app.trayStatusLabel(today, err)
	app.Menu.Refresh()
}

// trayStatusLabel tells how many anniversaries fall today.
func (app *ToolboxApp) trayStatusLabel(today int, err error) string {
	p := app.Presenter()
	switch {
	case err != nil:
		return p.Msg(config.TKeyNotifError)
	case today == 0:
		return p.Msg(config.TKeyTrayZero)
	default:
		return p.Count(config.TKeyTrayStatus, int64(today))
	}
}

// loadSyncConfig assembles the engine configuration from the settings and
// the keyring.
func (app *ToolboxApp) loadSyncConfig() engine.SyncConfig {
	s := app.Settings()
	cfg := engine.SyncConfig{
		Mode:            s.Source.Mode,
		LocalPath:       s.Source.LocalPath,
		WebURL:          s.Source.WebURL,
		WebUser:         s.Source.WebUser,
		ReminderTrigger: s.ReminderTrigger,
	}

	if cfg.Mode == config.SourceModeWeb && cfg.WebUser != "" {
		if p, err := keyring.Get(config.KeyringService, cfg.WebUser); err == nil {
			cfg.WebPass = p
		} else {
			slog.Debug(config.MsgPassFail,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyUser, cfg.WebUser,
				config.LogKeyError, err)
		}
	}

	// The generator follows the injected clock and the current language.
	app.Worker.Generator.Clock = app.Clock
	app.Worker.Generator.FormatSummary = app.Presenter().SummaryFormatter()
	return cfg
}

// applySettings switches to new settings: language, schedule and source.
// Settings equal to the current ones are ignored, so a save followed by
// the file watcher's reload refreshes once.
func (app *ToolboxApp) applySettings(s config.Settings) {
	app.stateMut.Lock()
	if s == app.settings {
		app.stateMut.Unlock()
		return
	}
	app.settings = s
	app.presenter = present.New(app.Bundle, s.Language)
	app.stateMut.Unlock()

	app.RefreshTrayMenu()
	app.Worker.Reschedule()
	app.Worker.Refresh(true)
}

// snapshotContacts copies the entries of the last sync.
func (app *ToolboxApp) snapshotContacts() []engine.AnniversaryEntry {
	app.ContactsMut.RLock()
	defer app.ContactsMut.RUnlock()
	out := make([]engine.AnniversaryEntry, len(app.Contacts))
	copy(out, app.Contacts)
	return out
}
