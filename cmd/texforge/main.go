package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CTAG07/texforge/pkg/config"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var (
	logLevel   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:     "texforge",
	Short:   "Convert block markup documents into LaTeX",
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a system configuration file (JSON or YAML)")
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(logLevel)}))
}

// newResolver builds the resolver every command starts from: built-in
// defaults plus the system file named by --config, when given.
func newResolver(logger *slog.Logger) (*config.Resolver, error) {
	resolver := config.NewResolver(logger)
	if configPath != "" {
		if err := resolver.LoadSystemFile(configPath); err != nil {
			return nil, err
		}
	}
	return resolver, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
