package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/presentation"
)

var (
	varsFormat   string
	varsSelector string
)

var varsCmd = &cobra.Command{
	Use:   "vars [slug]",
	Short: "Print the resolved CSS variables of a theme",
	Long: `Print the theme's CSS variables with every token reference resolved.

Examples:
  nextgen-theme vars meadow
  nextgen-theme vars meadow --format css --selector .theme-meadow`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug, err := resolveSlug(args)
		if err != nil {
			return err
		}
		svc, err := newService()
		if err != nil {
			return err
		}
		defer svc.Close()

		vars, err := svc.Vars(cmd.Context(), slug)
		if err != nil {
			return err
		}

		switch varsFormat {
		case "json":
			return presentation.NewFormatter(cmd.OutOrStdout()).Format(vars)
		case "css":
			_, err = fmt.Fprint(cmd.OutOrStdout(), vars.CSS(varsSelector))
			return err
		default:
			return fmt.Errorf("unknown format %q (want json or css)", varsFormat)
		}
	},
}

func init() {
	varsCmd.Flags().StringVarP(&varsFormat, "format", "f", "json", "output format: json or css")
	varsCmd.Flags().StringVar(&varsSelector, "selector", ":root", "selector for --format css")
	rootCmd.AddCommand(varsCmd)
}
