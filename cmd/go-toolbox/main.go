package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/tartampluch/go-toolbox/internal/config"
)

// main delegates to runMain so deferred calls run before os.Exit.
func main() {
	os.Exit(runMain(os.Args[1:]))
}

// runMain executes the command line and maps the outcome to an exit code.
func runMain(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := newCLI()
	defer c.close()

	root := newRootCmd(c)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintln(root.ErrOrStderr(), err)
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

// printVersion writes the build information.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		config.Commit,
		config.Date,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo(command string) {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyKey, command,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging installs the default JSON logger. Logs go to stderr, which
// keeps stdout for command output, and to a file truncated on each start.
func setupLogging(level slog.Level, debugMode bool) io.Closer {
	writers := []io.Writer{os.Stderr}
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts)))

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath returns the log file in the user cache directory.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return filepath.Join(appDir, config.LogFileName), nil
}
