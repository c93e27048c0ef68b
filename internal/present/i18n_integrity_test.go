package present_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-toolbox/internal/config"
)

// simpleKeys are plain strings in every locale.
var simpleKeys = []string{
	config.TKeyWinAge,
	config.TKeyWinContacts,
	config.TKeyMenuAge,
	config.TKeyMenuContacts,
	config.TKeyMenuRefresh,
	config.TKeyLblStart,
	config.TKeyHelpStart,
	config.TKeyErrRange,
	config.TKeyErrInput,
	config.TKeyNotifError,
	config.TKeyNotifStart,
	config.TKeyNotifSuccess,
	config.TKeyTrayZero,
	config.TKeyEvtSummary,
	config.TKeyEvtSummaryN,
	config.TKeyEvtSummaryB,
	config.TKeyColName,
	config.TKeyColDate,
	config.TKeyColAge,
	config.TKeyFormatDate,
	config.TKeyAgeBirth,
	config.TKeyLblTotals,
	config.TKeyLblCalendar,
	config.TKeyLblNextEvent,
	config.TKeyMenuSettings,
	config.TKeyWinSettings,
	config.TKeyLblLanguage,
	config.TKeyLblRefresh,
	config.TKeyLblMinutes,
	config.TKeyLblPort,
	config.TKeyHelpPort,
	config.TKeyLblSource,
	config.TKeyModeNone,
	config.TKeyModeWeb,
	config.TKeyModeLocal,
	config.TKeyLblURL,
	config.TKeyLblUser,
	config.TKeyLblPass,
	config.TKeyLblPath,
	config.TKeyBtnBrowse,
	config.TKeyLblReminder,
	config.TKeyHelpReminder,
	config.TKeyBtnSave,
	config.TKeyBtnCancel,
	config.TKeyErrPort,
	config.TKeyErrSave,
	config.TKeyColKind,
	config.TKeyKindBirthday,
	config.TKeyKindAnniv,
}

// pluralKeys need at least the "one" and "other" forms.
var pluralKeys = []string{
	config.TKeyYears,
	config.TKeyMonths,
	config.TKeyWeeks,
	config.TKeyDays,
	config.TKeyHours,
	config.TKeyMinutes,
	config.TKeySeconds,
	config.TKeyNextIn,
	config.TKeyAnniversary,
	config.TKeyTrayStatus,
}

func TestI18nIntegrity(t *testing.T) {
	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			content, err := os.ReadFile(filepath.Join("locales", "active."+lang+".json"))
			require.NoError(t, err)

			var messages map[string]any
			require.NoError(t, json.Unmarshal(content, &messages), "JSON must be valid")

			known := make(map[string]bool)
			for _, key := range simpleKeys {
				known[key] = true
				v, ok := messages[key]
				if assert.Truef(t, ok, "key %q missing", key) {
					assert.IsTypef(t, "", v, "key %q must be a plain string", key)
				}
			}
			for _, key := range pluralKeys {
				known[key] = true
				forms, ok := messages[key].(map[string]any)
				if assert.Truef(t, ok, "plural key %q missing", key) {
					assert.Containsf(t, forms, "one", "key %q", key)
					assert.Containsf(t, forms, "other", "key %q", key)
				}
			}

			for key := range messages {
				if strings.HasPrefix(key, "_") {
					continue
				}
				assert.Truef(t, known[key], "key %q is not referenced by any constant", key)
			}
		})
	}
}
