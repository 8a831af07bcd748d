package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/config"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/tracing"
)

func init() {
	// Query the terminal background before any Bubble Tea program starts so
	// the OSC 11 reply cannot race the picker's input loop.
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".nextgen-theme/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	noColor   bool
	cfg       = config.Defaults()

	provider = tracing.NewNoopProvider()
	cleanups []func()
)

var rootCmd = &cobra.Command{
	Use:   "nextgen-theme",
	Short: "Compile brand themes into CSS",
	Long: `nextgen-theme compiles brand theme definitions (colors, fonts, style guide
and animation preset) into deterministic CSS: a global stylesheet with
custom properties and typography, and a scoped animation stylesheet.

Built-in themes are always available. Themes in ~/.config/nextgen-theme/themes
(or themes_dir in the config) are added on top and replace built-ins that
share a slug.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/nextgen-theme/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (see log_path)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colored output")
	rootCmd.PersistentFlags().StringP("themes-dir", "t", "",
		"directory with user themes")

	// Bind flags to viper
	_ = viper.BindPFlag("themes_dir", rootCmd.PersistentFlags().Lookup("themes-dir"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .nextgen-theme/config.yaml (current directory)
		// 2. ~/.config/nextgen-theme/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			viper.AddConfigPath(config.DefaultConfigDir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// No config file anywhere: create the user config so the
			// commented template is there to edit.
			if dir := config.DefaultConfigDir(); dir != "" {
				path := filepath.Join(dir, "config.yaml")
				if writeErr := config.WriteDefaultConfig(path); writeErr == nil {
					viper.SetConfigFile(path)
					_ = viper.ReadInConfig()
				}
			}
		}
	}

	cfg = config.Defaults()
	_ = viper.Unmarshal(&cfg)
	cfg.Tracing = tracingConfig(cfg.Tracing)
}

// configFilePath is where settings are saved back to.
func configFilePath() string {
	if p := viper.ConfigFileUsed(); p != "" {
		return p
	}
	return localConfigPath
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if debugFlag || cfg.Debug {
		cleanup, err := log.InitWithTeaLog(cfg.LogPath, "nextgen-theme")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		cleanups = append(cleanups, cleanup)
		log.Info(log.CatConfig, "nextgen-theme starting",
			"version", version, "command", cmd.Name(), "config", viper.ConfigFileUsed())
	}

	p, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	provider = p
	cleanups = append(cleanups, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatConfig, "Tracing shutdown failed", err)
		}
	})
	return nil
}

// tracingConfig fills the default trace file when the file exporter has no path.
func tracingConfig(t tracing.Config) tracing.Config {
	if t.Exporter == tracing.ExporterFile && t.FilePath == "" {
		t.FilePath = config.DefaultTracesFilePath()
	}
	return t
}

func runCleanups() {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
}

// Execute runs the root command
func Execute() error {
	defer runCleanups()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
