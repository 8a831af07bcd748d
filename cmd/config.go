package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/config"
)

var (
	configInitForce bool
	configInitLocal bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Long: `Write the default configuration to ~/.config/nextgen-theme/config.yaml, or
with --local to .nextgen-theme/config.yaml in the current directory. An
existing file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := configInitPath()
		if err != nil {
			return err
		}
		if err := initConfigFile(path, configInitForce); err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), configFilePath())
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")
	configInitCmd.Flags().BoolVar(&configInitLocal, "local", false, "write .nextgen-theme/config.yaml")
	configCmd.AddCommand(configInitCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func configInitPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	if configInitLocal {
		return localConfigPath, nil
	}
	dir := config.DefaultConfigDir()
	if dir == "" {
		return "", fmt.Errorf("home directory unknown; use --local or --config")
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// initConfigFile writes the default template. An existing file is left alone
// when it already holds the template, and is an error otherwise unless force.
func initConfigFile(path string, force bool) error {
	if existing, err := os.ReadFile(path); err == nil && !force { //nolint:gosec // G304: user-chosen config path
		if string(existing) == config.DefaultConfigTemplate() {
			return nil
		}
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return config.WriteDefaultConfig(path)
}
