package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds the user-tunable values read from the optional YAML file.
// Secrets are never stored here: the vCard password lives in the OS keyring.
type Settings struct {
	Language        string        `yaml:"language"`
	Port            string        `yaml:"port"`
	RefreshMinutes  int           `yaml:"refresh_interval_min"`
	LiveInterval    time.Duration `yaml:"live_interval"`
	DefaultStart    string        `yaml:"default_start"`
	Source          SourceConfig  `yaml:"source"`
	ReminderTrigger string        `yaml:"reminder_trigger"` // ISO8601 duration, e.g. "-P1D"
}

// SourceConfig describes where the anniversary feed reads its vCards from.
type SourceConfig struct {
	Mode      string `yaml:"mode"` // SourceModeLocal, SourceModeWeb or empty
	LocalPath string `yaml:"local_path"`
	WebURL    string `yaml:"web_url"`
	WebUser   string `yaml:"web_user"`
}

// Defaults returns the settings used when no file is present.
func Defaults() Settings {
	return Settings{
		Language:       DefaultLanguage,
		Port:           DefaultPort,
		RefreshMinutes: DefaultRefreshMin,
		LiveInterval:   DefaultLiveInterval,
	}
}

// DefaultSettingsPath returns <user config dir>/<AppID>/settings.yaml.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrConfigDir, err)
	}
	return filepath.Join(dir, AppID, SettingsFileName), nil
}

// LoadSettings reads path on top of Defaults. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug(MsgSettingsNone,
			LogKeyComponent, CompConfig,
			LogKeyFile, path)
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("%s: %w", ErrSettingsRead, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Defaults(), fmt.Errorf("%s: %w", ErrSettingsParse, err)
	}
	if err := s.Validate(); err != nil {
		return Defaults(), err
	}

	slog.Debug(MsgSettingsLoad,
		LogKeyComponent, CompConfig,
		LogKeyFile, path,
		LogKeyLang, s.Language,
		LogKeyMode, s.Source.Mode)
	return s, nil
}

// Validate checks ranges and enumerations.
func (s Settings) Validate() error {
	if err := ValidatePort(s.Port); err != nil {
		return err
	}
	if !slices.Contains(SupportedLanguages, s.Language) {
		return fmt.Errorf("%s: %q", ErrLanguage, s.Language)
	}
	if s.RefreshMinutes <= 0 {
		return errors.New(ErrRefreshInterval)
	}
	if s.LiveInterval < MinLiveInterval {
		return fmt.Errorf("%s: %s", ErrLiveInterval, s.LiveInterval)
	}
	switch s.Source.Mode {
	case SourceModeNone, SourceModeLocal, SourceModeWeb:
	default:
		return fmt.Errorf("%s: %q", ErrModeUnsupport, s.Source.Mode)
	}
	return nil
}

// RefreshInterval converts RefreshMinutes to a duration.
func (s Settings) RefreshInterval() time.Duration {
	if s.RefreshMinutes <= 0 {
		return DefaultRefreshMin * time.Minute
	}
	return time.Duration(s.RefreshMinutes) * time.Minute
}

// ValidatePort checks that p is a usable TCP port number.
func ValidatePort(p string) error {
	if p == "" {
		return errors.New(ErrPortRequired)
	}
	n, err := strconv.Atoi(p)
	if err != nil {
		return errors.New(ErrPortNumber)
	}
	if n < MinPort || n > MaxPort {
		return errors.New(ErrPortRange)
	}
	return nil
}

// SaveSettings validates s and writes it to path as YAML, creating the
// parent directory with owner-only permissions.
func SaveSettings(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", ErrCreateDir, err)
	}
	if err := os.WriteFile(path, data, FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}

	slog.Info(MsgSettingsSaved,
		LogKeyComponent, CompConfig,
		LogKeyFile, path)
	return nil
}
