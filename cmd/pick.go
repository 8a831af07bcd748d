package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/config"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/ui/picker"
)

var pickSave bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a theme interactively",
	Long: `Browse themes with their color swatches and fonts, then print the chosen
slug. With --save the choice becomes default_theme in the config file.

Keys: j/k or arrows to move, tab to switch the preview, enter to choose,
esc or q to cancel. Rows can also be clicked.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		slug, err := picker.Run(cmd.Context(), "Pick a theme", reg.Ranked(), cfg.DefaultTheme)
		if errors.Is(err, picker.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		if pickSave {
			path := configFilePath()
			if err := config.SaveDefaultTheme(path, slug); err != nil {
				return fmt.Errorf("saving default theme: %w", err)
			}
			log.Info(log.CatConfig, "Default theme saved", "slug", slug, "path", path)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), slug)
		return err
	},
}

func init() {
	pickCmd.Flags().BoolVarP(&pickSave, "save", "s", false, "save the choice as default_theme")
	rootCmd.AddCommand(pickCmd)
}
