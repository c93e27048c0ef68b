package present

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-toolbox/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeSuffix = ".json"
)

// LoadBundle builds the translation bundle from the embedded locale files.
// It returns the language codes that were found, in directory order.
// A broken locale file is logged and skipped; English stays the fallback.
func LoadBundle() (*i18n.Bundle, []string) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return bundle, nil
	}

	var detected []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		lang := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeSuffix)
		if lang == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, localeDir+"/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		detected = append(detected, lang)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, lang,
			config.LogKeyFile, name,
		)
	}
	return bundle, detected
}
