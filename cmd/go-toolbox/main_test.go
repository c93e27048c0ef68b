package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
	"github.com/tartampluch/go-toolbox/internal/present"
	"github.com/tartampluch/go-toolbox/internal/tools"
	"github.com/zalando/go-keyring"
)

var testNow = time.Date(2024, 2, 28, 11, 0, 0, 0, time.UTC)

// testCLI returns a cli on a fixed clock with an empty settings file, so
// the user's real configuration never leaks into a test.
func testCLI(t *testing.T) *cli {
	t.Helper()
	bundle, _ := present.LoadBundle()
	return &cli{
		configPath: filepath.Join(t.TempDir(), config.SettingsFileName),
		clock:      engine.FixedClock{At: testNow},
		fetcher:    engine.NewHTTPFetcher(),
		bundle:     bundle,
		logging:    func(slog.Level, bool) io.Closer { return nil },
	}
}

// execute runs the command line and returns stdout, stderr and the error.
func execute(t *testing.T, c *cli, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd(c)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, testCLI(t), "", config.CmdVersion)
	require.NoError(t, err)
	assert.Contains(t, out, config.AppName)
	assert.Contains(t, out, config.Version)
}

func TestAge(t *testing.T) {
	out, _, err := execute(t, testCLI(t), "", config.CmdAge, "--start", "2000-02-29")
	require.NoError(t, err)

	assert.Contains(t, out, "Elapsed:")
	assert.Contains(t, out, "23 years, 11 months, 30 days")
	assert.Contains(t, out, "8,765 days")
	assert.Contains(t, out, "24 years on Feb 29, 2024 (in 1 day)")
}

func TestAge_AsOfAndLanguage(t *testing.T) {
	out, _, err := execute(t, testCLI(t), "", config.CmdAge,
		"--start", "2023-01-15", "--as-of", "2023-03-01", "--lang", "fr")
	require.NoError(t, err)
	assert.Contains(t, out, "0 an, 1 mois, 14 jours")
}

func TestAge_OffsetStartReadInLocalFrame(t *testing.T) {
	// Already February 28 in Kiribati, but still the 27th at 11:00 UTC.
	out, _, err := execute(t, testCLI(t), "", config.CmdAge, "--start", "2024-02-28T01:00:00+14:00")
	require.NoError(t, err)
	assert.Contains(t, out, "0 years, 0 months, 1 day")
}

func TestAge_DefaultStartFromSettings(t *testing.T) {
	c := testCLI(t)
	s := config.Defaults()
	s.DefaultStart = "2000-02-29"
	require.NoError(t, config.SaveSettings(c.configPath, s))

	out, _, err := execute(t, c, "", config.CmdAge)
	require.NoError(t, err)
	assert.Contains(t, out, "23 years, 11 months, 30 days")
}

func TestAge_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		target  error
		warning string
	}{
		{"future start", []string{"--start", "2030-01-01"}, engine.ErrInvalidRange, "The start date is in the future."},
		{"unreadable start", []string{"--start", "soon"}, engine.ErrDateParse, "This date could not be read."},
		{"missing start", nil, engine.ErrDateParse, "This date could not be read."},
		{"unreadable as-of", []string{"--start", "2000-01-01", "--as-of", "later"}, engine.ErrDateParse, "This date could not be read."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{config.CmdAge}, tt.args...)
			out, errOut, err := execute(t, testCLI(t), "", args...)
			require.ErrorIs(t, err, tt.target)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.warning)
		})
	}
}

func TestLive_RunsUntilCancelled(t *testing.T) {
	c := testCLI(t)
	root := newRootCmd(c)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{config.CmdLive, "--start", "2000-02-29", "--interval", "100ms"})

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	require.NoError(t, root.ExecuteContext(ctx))

	assert.Contains(t, out.String(), config.CLIClearLine)
	assert.Contains(t, out.String(), "23 years, 11 months, 30 days")
	assert.Contains(t, out.String(), "757,335,600 seconds")
}

func TestLive_RejectsShortInterval(t *testing.T) {
	_, _, err := execute(t, testCLI(t), "", config.CmdLive, "--start", "2000-01-01", "--interval", "1ms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrLiveInterval)
}

func TestContacts_LocalFile(t *testing.T) {
	keyring.MockInit()
	path := filepath.Join(t.TempDir(), "contacts.vcf")
	vcf := "BEGIN:VCARD\nVERSION:4.0\nFN:Zoe\nBDAY:1990-03-10\nEND:VCARD\n" +
		"BEGIN:VCARD\nVERSION:4.0\nFN:Adam\nBDAY:--03-01\nEND:VCARD\n"
	require.NoError(t, os.WriteFile(path, []byte(vcf), config.FilePermUserRW))

	out, _, err := execute(t, testCLI(t), "", config.CmdContacts, "--path", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Birthday")
	assert.Contains(t, out, "33 → 34")
	assert.Contains(t, out, config.AgeUnknown)
	assert.Less(t, strings.Index(out, "Adam"), strings.Index(out, "Zoe"), "nearest anniversary first")
}

func TestContacts_NoSource(t *testing.T) {
	_, _, err := execute(t, testCLI(t), "", config.CmdContacts)
	require.Error(t, err)
}

func TestServe_RejectsBadPort(t *testing.T) {
	_, _, err := execute(t, testCLI(t), "", config.CmdServe, "--port", "99999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrPortRange)
}

func TestSourceFlags_Apply(t *testing.T) {
	s := config.Defaults()
	(&sourceFlags{}).apply(&s)
	assert.Equal(t, config.SourceModeNone, s.Source.Mode)

	(&sourceFlags{url: "https://dav.example.com/", user: "me"}).apply(&s)
	assert.Equal(t, config.SourceConfig{Mode: config.SourceModeWeb, WebURL: "https://dav.example.com/", WebUser: "me"}, s.Source)

	(&sourceFlags{path: "/tmp/a.vcf", url: "ignored"}).apply(&s)
	assert.Equal(t, config.SourceConfig{Mode: config.SourceModeLocal, LocalPath: "/tmp/a.vcf"}, s.Source)
}

func TestSyncConfig_ReadsKeyring(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, keyring.Set(config.KeyringService, "me", "pw"))

	s := config.Defaults()
	s.Source = config.SourceConfig{Mode: config.SourceModeWeb, WebURL: "https://dav.example.com/", WebUser: "me"}
	s.ReminderTrigger = "-P1D"

	cfg := testCLI(t).syncConfig(s)
	assert.Equal(t, "pw", cfg.WebPass)
	assert.Equal(t, "-P1D", cfg.ReminderTrigger)
}

func TestTool_Base64(t *testing.T) {
	out, _, err := execute(t, testCLI(t), "", config.CmdTool, "base64", "hello")
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("hello"))+"\n", out)

	out, _, err = execute(t, testCLI(t), "aGVsbG8=\n", config.CmdTool, "base64", "--mode", config.ModeDecode)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)

	_, _, err = execute(t, testCLI(t), "", config.CmdTool, "base64", "--mode", "rot13", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrUnknownMode)

	_, _, err = execute(t, testCLI(t), "", config.CmdTool, "base64", "--mode", config.ModeDecode, "!!!")
	assert.ErrorIs(t, err, tools.ErrBase64)
}

func TestTool_Text(t *testing.T) {
	out, _, err := execute(t, testCLI(t), "", config.CmdTool, "text", "--case", config.CaseSnake, "Hello world. How are you?")
	require.NoError(t, err)
	assert.Contains(t, out, config.LabelWords)
	assert.Contains(t, out, "hello_world_how_are_you")

	_, _, err = execute(t, testCLI(t), "", config.CmdTool, "text", "--case", "wavy", "x")
	assert.ErrorIs(t, err, tools.ErrUnknownCase)
}

func TestTool_Password(t *testing.T) {
	out, _, err := execute(t, testCLI(t), "", config.CmdTool, "password", "--length", "24")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 24)

	_, _, err = execute(t, testCLI(t), "", config.CmdTool, "password", "--length", "2")
	assert.ErrorIs(t, err, tools.ErrPasswordLength)
}

func TestTool_BMI(t *testing.T) {
	out, _, err := execute(t, testCLI(t), "", config.CmdTool, "bmi", "70", "175")
	require.NoError(t, err)
	assert.Equal(t, "22.9 (normal)\n", out)

	_, _, err = execute(t, testCLI(t), "", config.CmdTool, "bmi", "NaN", "175")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrNumber)

	_, _, err = execute(t, testCLI(t), "", config.CmdTool, "bmi", "70")
	require.Error(t, err)
}

func TestTool_Convert(t *testing.T) {
	out, _, err := execute(t, testCLI(t), "", config.CmdTool, "convert", "1", "km", "m")
	require.NoError(t, err)
	assert.Equal(t, "1 km = 1000 m\n", out)

	_, errOut, err := execute(t, testCLI(t), "", config.CmdTool, "convert", "1", "km", "kg")
	assert.ErrorIs(t, err, tools.ErrUnitMismatch)
	assert.Equal(t, "length units: cm, ft, in, km, m, mi, mm, yd\n", errOut)
}

func TestTool_Timezone(t *testing.T) {
	out, _, err := execute(t, testCLI(t), "", config.CmdTool, "timezone", "UTC", "Asia/Tokyo", "2024-01-01T12:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01 12:00:00 UTC\n2024-01-01 21:00:00 JST\n9h0m0s\n", out)

	out, _, err = execute(t, testCLI(t), "", config.CmdTool, "timezone", "UTC", "UTC")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2024-02-28 11:00:00 UTC\n"))

	_, _, err = execute(t, testCLI(t), "", config.CmdTool, "timezone", "Mars/Olympus", "UTC")
	assert.ErrorIs(t, err, tools.ErrTimezone)
}
