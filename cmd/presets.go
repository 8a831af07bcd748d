package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/presentation"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/ui/styles"
)

var presetsJSON bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in animation presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dtos := presentation.FromPresets()
		if presetsJSON {
			return presentation.NewFormatter(cmd.OutOrStdout()).FormatPresets(dtos)
		}

		width := 0
		for _, p := range dtos {
			width = max(width, len(p.Name))
		}
		name := lipgloss.NewStyle().Bold(true).Width(width + 2)
		for _, p := range dtos {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), name.Render(p.Name)+styles.MutedStyle.Render(p.Description)); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	presetsCmd.Flags().BoolVar(&presetsJSON, "json", false, "print JSON")
	rootCmd.AddCommand(presetsCmd)
}
