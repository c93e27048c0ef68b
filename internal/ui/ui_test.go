package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
	"github.com/tartampluch/go-toolbox/internal/present"
	"github.com/tartampluch/go-toolbox/internal/server"
	"github.com/zalando/go-keyring"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockFetcher simulates engine.SourceFetcher using testify/mock.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, url, user, pass string) (io.ReadCloser, error) {
	args := m.Called(ctx, url, user, pass)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

// MockTray implements minimal system tray functionality for headless testing.
type MockTray struct {
	Menu *fyne.Menu
}

func (m *MockTray) SetSystemTrayMenu(menu *fyne.Menu) {
	m.Menu = menu
}

func (m *MockTray) SetSystemTrayIcon(icon fyne.Resource) {}
func (m *MockTray) SetSystemTrayWindow(w fyne.Window)    {}

var testNow = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

// setupTestApp builds a headless app with a fixed clock, the in-memory
// keyring and a tray mock.
func setupTestApp(t *testing.T) (*ToolboxApp, *MockFetcher, *MockTray) {
	t.Helper()
	keyring.MockInit()

	a := test.NewApp()
	t.Cleanup(a.Quit)

	bundle, _ := present.LoadBundle()
	clock := engine.FixedClock{At: testNow}
	srv := server.New("0", bundle, clock)
	srv.Location = time.UTC
	fetcher := new(MockFetcher)
	tray := &MockTray{}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	app := NewToolboxApp(ctx, a, config.Defaults(), bundle, srv, fetcher)
	app.Tray = tray
	app.Clock = clock
	return app, fetcher, tray
}

func webSettings(user string) config.Settings {
	s := config.Defaults()
	s.Source = config.SourceConfig{
		Mode:    config.SourceModeWeb,
		WebURL:  "https://dav.example.com/contacts",
		WebUser: user,
	}
	return s
}

// -----------------------------------------------------------------------------
// Localization
// -----------------------------------------------------------------------------

func TestApplySettings_SwitchesLanguage(t *testing.T) {
	app, _, tray := setupTestApp(t)
	app.setupTrayMenu()
	require.NotNil(t, tray.Menu)

	assert.Equal(t, "Settings…", app.TraySettingsItem.Label)

	s := config.Defaults()
	s.Language = "fr"
	app.applySettings(s)

	assert.Equal(t, "fr", app.Settings().Language)
	assert.Equal(t, "fr", app.Presenter().Lang)
	assert.Equal(t, "Paramètres…", app.TraySettingsItem.Label)
}

func TestApplySettings_IgnoresUnchanged(t *testing.T) {
	app, _, _ := setupTestApp(t)
	before := app.Presenter()

	app.applySettings(app.Settings())
	assert.Same(t, before, app.Presenter())
}

// -----------------------------------------------------------------------------
// Tray status
// -----------------------------------------------------------------------------

func TestTrayStatusLabel(t *testing.T) {
	app, _, _ := setupTestApp(t)

	tests := []struct {
		name  string
		today int
		err   error
		want  string
	}{
		{"zero", 0, nil, "No anniversary today"},
		{"one", 1, nil, "1 anniversary today"},
		{"many", 3, nil, "3 anniversaries today"},
		{"error", 2, errors.New("boom"), "Synchronization failed. Check the logs."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, app.trayStatusLabel(tt.today, tt.err))
		})
	}
}

func TestUpdateTrayStatus(t *testing.T) {
	app, _, tray := setupTestApp(t)

	// Without a menu there is nothing to update.
	app.updateTrayStatus(5, nil)
	assert.Nil(t, app.TrayStatusItem)

	app.setupTrayMenu()
	assert.Equal(t, "No anniversary today", app.TrayStatusItem.Label)

	app.updateTrayStatus(10, nil)
	assert.Contains(t, app.TrayStatusItem.Label, "10")
	assert.Same(t, app.Menu, tray.Menu)
}

// -----------------------------------------------------------------------------
// Sync configuration
// -----------------------------------------------------------------------------

func TestLoadSyncConfig_Mapping(t *testing.T) {
	app, _, _ := setupTestApp(t)

	s := webSettings("admin")
	s.ReminderTrigger = "-P2D"
	app.applySettings(s)
	require.NoError(t, keyring.Set(config.KeyringService, "admin", "s3cret"))

	cfg := app.loadSyncConfig()

	assert.Equal(t, config.SourceModeWeb, cfg.Mode)
	assert.Equal(t, "https://dav.example.com/contacts", cfg.WebURL)
	assert.Equal(t, "admin", cfg.WebUser)
	assert.Equal(t, "s3cret", cfg.WebPass)
	assert.Equal(t, "-P2D", cfg.ReminderTrigger)
	assert.Equal(t, app.Clock, app.Worker.Generator.Clock)
	require.NotNil(t, app.Worker.Generator.FormatSummary)
	assert.Equal(t, "Anniversary: Ann (3)", app.Worker.Generator.FormatSummary("Ann", 3, true))
}

func TestLoadSyncConfig_MissingPassword(t *testing.T) {
	app, _, _ := setupTestApp(t)
	app.applySettings(webSettings("nobody"))

	cfg := app.loadSyncConfig()
	assert.Equal(t, "nobody", cfg.WebUser)
	assert.Empty(t, cfg.WebPass)
}

// -----------------------------------------------------------------------------
// Sync results
// -----------------------------------------------------------------------------

func TestSync_Success(t *testing.T) {
	app, fetcher, _ := setupTestApp(t)
	app.setupTrayMenu()
	app.applySettings(webSettings(""))

	vcard := "BEGIN:VCARD\nVERSION:3.0\nFN:Success User\nBDAY:19900101\nEND:VCARD"
	fetcher.On("Fetch", mock.Anything, "https://dav.example.com/contacts", "", "").
		Return(io.NopCloser(bytes.NewBufferString(vcard)), nil)

	feed, err := app.Worker.Sync(context.Background(), false)
	require.NoError(t, err)
	fetcher.AssertExpectations(t)
	assert.Equal(t, 1, feed.Today)

	contacts := app.snapshotContacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, "Success User", contacts[0].Name)
	assert.Equal(t, 35, contacts[0].AgeNext)
}

func TestSync_FailureKeepsContacts(t *testing.T) {
	app, fetcher, _ := setupTestApp(t)
	app.applySettings(webSettings(""))

	previous := []engine.AnniversaryEntry{{Name: "Kept"}}
	app.Contacts = previous

	fetcher.On("Fetch", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := app.Worker.Sync(context.Background(), false)
	require.Error(t, err)
	fetcher.AssertExpectations(t)
	assert.Equal(t, previous, app.snapshotContacts())
}

func TestSnapshotContacts_IsACopy(t *testing.T) {
	app, _, _ := setupTestApp(t)
	app.Contacts = []engine.AnniversaryEntry{{Name: "A"}}

	snap := app.snapshotContacts()
	snap[0].Name = "B"
	assert.Equal(t, "A", app.Contacts[0].Name)
}
