package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/presentation"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/registry"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/ui/picker"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/ui/styles"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List themes, best rated first",
	Long: `List every available theme ordered by rating (unrated last, then by name).

The default theme is marked with "*". Use --json for machine readable output.

Examples:
  nextgen-theme list
  nextgen-theme list --json | jq '.[].slug'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		themes := reg.Ranked()

		if listJSON {
			return presentation.NewFormatter(cmd.OutOrStdout()).FormatThemes(presentation.FromThemes(themes))
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), themeTable(themes, cfg.DefaultTheme))
		return err
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print JSON")
	rootCmd.AddCommand(listCmd)
}

// themeTable renders themes as a table, marking current with "*".
func themeTable(themes []*registry.Theme, current string) string {
	rows := make([][]string, 0, len(themes))
	for _, t := range themes {
		marker := ""
		if t.Slug == current {
			marker = "*"
		}
		rows = append(rows, []string{
			marker,
			t.Slug,
			styles.TruncateString(t.Name, 24),
			styles.FormatRating(t.Rating),
			t.Source.String(),
			picker.Chip(t),
		})
	}

	return table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("", "SLUG", "NAME", "RATING", "SOURCE", "COLORS").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.MutedStyle.Bold(true).PaddingRight(1)
			}
			return lipgloss.NewStyle().PaddingRight(1)
		}).
		Rows(rows...).
		String()
}
