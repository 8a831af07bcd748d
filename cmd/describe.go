package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/presentation"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/ui/markdown"
)

var (
	describeJSON  bool
	describeRaw   bool
	describeWidth int
)

var describeCmd = &cobra.Command{
	Use:   "describe [slug]",
	Short: "Describe a theme's tokens, fonts and animation",
	Long: `Describe a theme: business details, color tokens with their roles, fonts and
the animation preset. Output is rendered markdown; --raw prints the markdown
source and --json the full theme detail.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug, err := resolveSlug(args)
		if err != nil {
			return err
		}
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		t, err := reg.Get(slug)
		if err != nil {
			return err
		}

		if describeJSON {
			return presentation.NewFormatter(cmd.OutOrStdout()).FormatTheme(presentation.FromThemeDetail(t))
		}

		md := markdown.Describe(t)
		if describeRaw {
			_, err = fmt.Fprint(cmd.OutOrStdout(), md)
			return err
		}

		r, err := markdown.ForTheme(t, describeWidth, noColor)
		if err != nil {
			return fmt.Errorf("creating markdown renderer: %w", err)
		}
		out, err := r.Render(md)
		if err != nil {
			return fmt.Errorf("rendering description: %w", err)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "print JSON")
	describeCmd.Flags().BoolVar(&describeRaw, "raw", false, "print markdown source")
	describeCmd.Flags().IntVarP(&describeWidth, "width", "w", 80, "wrap width")
	rootCmd.AddCommand(describeCmd)
}
