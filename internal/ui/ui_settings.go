package ui

import (
	"errors"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/zalando/go-keyring"
)

// settingsForm holds the editable widgets of the settings window.
type settingsForm struct {
	lang     *widget.Select
	mode     *widget.Select
	url      *widget.Entry
	user     *widget.Entry
	pass     *widget.Entry
	path     *widget.Entry
	interval *NumericalEntry
	port     *NumericalEntry
	reminder *widget.Entry

	// modeLabels maps the localized labels of mode back to source modes.
	modeLabels map[string]string
}

func (app *ToolboxApp) newSettingsForm() *settingsForm {
	p := app.Presenter()
	s := app.Settings()

	f := &settingsForm{
		lang:     widget.NewSelect(app.Languages, nil),
		url:      widget.NewEntry(),
		user:     widget.NewEntry(),
		pass:     widget.NewPasswordEntry(),
		path:     widget.NewEntry(),
		interval: NewNumericalEntry(s.RefreshMinutes),
		reminder: widget.NewEntry(),
		modeLabels: map[string]string{
			p.Msg(config.TKeyModeNone):  config.SourceModeNone,
			p.Msg(config.TKeyModeWeb):   config.SourceModeWeb,
			p.Msg(config.TKeyModeLocal): config.SourceModeLocal,
		},
	}
	f.lang.SetSelected(s.Language)

	f.mode = widget.NewSelect([]string{
		p.Msg(config.TKeyModeNone),
		p.Msg(config.TKeyModeWeb),
		p.Msg(config.TKeyModeLocal),
	}, nil)
	for label, mode := range f.modeLabels {
		if mode == s.Source.Mode {
			f.mode.SetSelected(label)
		}
	}

	f.url.SetText(s.Source.WebURL)
	f.url.PlaceHolder = config.PlaceholderURL
	f.user.SetText(s.Source.WebUser)
	if s.Source.WebUser != "" {
		if pwd, err := keyring.Get(config.KeyringService, s.Source.WebUser); err == nil {
			f.pass.SetText(pwd)
		}
	}
	f.path.SetText(s.Source.LocalPath)

	port, _ := strconv.Atoi(s.Port)
	f.port = NewNumericalEntry(port)
	f.port.Validator = rangeValidator(config.MinPort, config.MaxPort, p.Msg(config.TKeyErrPort))

	f.reminder.SetText(s.ReminderTrigger)
	f.reminder.PlaceHolder = config.PlaceholderTrigger
	return f
}

// collect merges the form into base. The password is returned apart; it
// goes to the keyring, never to the settings file.
func (f *settingsForm) collect(base config.Settings) (config.Settings, string, error) {
	s := base
	s.Language = f.lang.Selected
	s.Source = config.SourceConfig{
		Mode:      f.modeLabels[f.mode.Selected],
		LocalPath: f.path.Text,
		WebURL:    f.url.Text,
		WebUser:   f.user.Text,
	}
	s.ReminderTrigger = f.reminder.Text

	if err := f.port.Validate(); err != nil {
		return base, "", err
	}
	s.Port = strconv.Itoa(mustInt(f.port))

	minutes, err := f.interval.Int()
	if err != nil || minutes <= 0 {
		return base, "", errors.New(config.ErrRefreshInterval)
	}
	s.RefreshMinutes = minutes

	return s, f.pass.Text, s.Validate()
}

func mustInt(e *NumericalEntry) int {
	n, _ := e.Int()
	return n
}

// saveSettings writes the file, stores the password and applies the
// result to the running app.
func (app *ToolboxApp) saveSettings(f *settingsForm) error {
	s, pass, err := f.collect(app.Settings())
	if err != nil {
		return err
	}

	if app.SettingsPath != "" {
		if err := config.SaveSettings(app.SettingsPath, s); err != nil {
			return err
		}
	}
	if s.Source.WebUser != "" && pass != "" {
		if err := keyring.Set(config.KeyringService, s.Source.WebUser, pass); err != nil {
			slog.Error(config.ErrKeyring,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyUser, s.Source.WebUser,
				config.LogKeyError, err)
		}
	}

	app.applySettings(s)
	return nil
}

// ShowSettingsWindow opens the settings dialog, or focuses it when open.
func (app *ToolboxApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		app.settingsWindow.RequestFocus()
		return
	}

	p := app.Presenter()
	w := app.App.NewWindow(p.Msg(config.TKeyWinSettings))
	app.settingsWindow = w

	f := app.newSettingsForm()

	browse := widget.NewButton(p.Msg(config.TKeyBtnBrowse), func() {
		d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err == nil && r != nil {
				f.path.SetText(r.URI().Path())
				_ = r.Close()
			}
		}, w)
		d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
		d.Show()
	})

	webForm := widget.NewForm(
		widget.NewFormItem(p.Msg(config.TKeyLblURL), f.url),
		widget.NewFormItem(p.Msg(config.TKeyLblUser), f.user),
		widget.NewFormItem(p.Msg(config.TKeyLblPass), f.pass),
	)
	localForm := widget.NewForm(
		widget.NewFormItem(p.Msg(config.TKeyLblPath), container.NewBorder(nil, nil, nil, browse, f.path)),
	)
	showSource := func(label string) {
		webForm.Hide()
		localForm.Hide()
		switch f.modeLabels[label] {
		case config.SourceModeWeb:
			webForm.Show()
		case config.SourceModeLocal:
			localForm.Show()
		}
	}
	f.mode.OnChanged = showSource
	showSource(f.mode.Selected)

	portItem := widget.NewFormItem(p.Msg(config.TKeyLblPort), f.port)
	portItem.HintText = p.Msg(config.TKeyHelpPort)
	reminderItem := widget.NewFormItem(p.Msg(config.TKeyLblReminder), f.reminder)
	reminderItem.HintText = p.Msg(config.TKeyHelpReminder)

	general := widget.NewForm(
		widget.NewFormItem(p.Msg(config.TKeyLblLanguage), f.lang),
		widget.NewFormItem(p.Msg(config.TKeyLblRefresh),
			container.NewBorder(nil, nil, nil, widget.NewLabel(p.Msg(config.TKeyLblMinutes)), f.interval)),
		portItem,
		reminderItem,
	)

	save := widget.NewButtonWithIcon(p.Msg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		if err := app.saveSettings(f); err != nil {
			slog.Warn(config.ErrSettingsWrite,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
			dialog.ShowError(errors.New(p.Msg(config.TKeyErrSave)+"\n"+err.Error()), w)
			return
		}
		w.Close()
	})
	save.Importance = widget.HighImportance
	cancel := widget.NewButtonWithIcon(p.Msg(config.TKeyBtnCancel), theme.CancelIcon(), w.Close)

	w.SetContent(container.NewPadded(container.NewVBox(
		widget.NewCard(p.Msg(config.TKeyLblSource), "", container.NewVBox(f.mode, webForm, localForm)),
		general,
		container.NewGridWithColumns(2, cancel, save),
	)))
	w.Resize(fyne.NewSize(config.SettingsWinWidth, w.Content().MinSize().Height))
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}
