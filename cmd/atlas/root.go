// Root command for the atlas CLI.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orbitalworks/stac/internal/paths"
	"github.com/orbitalworks/stac/pkg/stac"
)

// Exit codes reported to the shell.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagOutputDir string
	flagDataDir   string
	flagVerbose   bool
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configOutputDir   string
	configDataDir     string
	configLogLevel    string
	configSpecVersion string
)

var rootCmd = &cobra.Command{
	Use:     "atlas",
	Short:   "Atlas builds static catalog trees from YAML blueprints",
	Version: stac.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configOutputDir = cfg.GetString(cfgKeyOutputDir)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configLogLevel = cfg.GetString(cfgKeyLogLevel)
		configSpecVersion = cfg.GetString(cfgKeySpecVersion)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: ~/.config/atlas)")
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output", "", "output directory for catalog documents (default: $(CWD)/catalogs)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "inventory directory (default: $(CWD)/.atlas-db)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log at debug level")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence --config-dir flag > ATLAS_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveOutputDir returns the catalog output directory following the
// precedence --output flag > config.yaml output_dir > ATLAS_OUTPUT_DIR
// env > default $(CWD)/catalogs.
func resolveOutputDir() (string, error) {
	return paths.ResolveOutputDir(flagOutputDir, configOutputDir)
}

// resolveDataDir returns the inventory directory following the
// precedence --data-dir flag > config.yaml data_dir > ATLAS_DATA_DIR
// env > default $(CWD)/.atlas-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// newLogger builds the CLI logger. The level comes from config.yaml
// log_level; --verbose forces debug.
func newLogger() *slog.Logger {
	level := parseLogLevel(configLogLevel)
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
