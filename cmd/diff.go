package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/cssdiff"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/service"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/ui/styles"
)

// errDiffFound makes "diff --exit-code" fail when the stylesheets differ.
var errDiffFound = errors.New("stylesheets differ")

var (
	diffKind     string
	diffContext  int
	diffSnapshot bool
	diffExitCode bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <slug> [other-slug]",
	Short: "Compare generated stylesheets",
	Long: `Compare the stylesheets of two themes, or with --snapshot compare a theme's
current output with its latest recorded snapshot.

Examples:
  nextgen-theme diff nordic-frost ember-studio
  nextgen-theme diff meadow --kind animation
  nextgen-theme diff meadow --snapshot --exit-code`,
	Args: func(cmd *cobra.Command, args []string) error {
		if diffSnapshot {
			return cobra.ExactArgs(1)(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := service.Kind(diffKind)
		svc, err := newService()
		if err != nil {
			return err
		}
		defer svc.Close()

		newCSS, err := generate(cmd.Context(), svc, kind, args[len(args)-1])
		if err != nil {
			return err
		}

		var oldCSS, oldName, newName string
		if diffSnapshot {
			store, err := openSnapshots()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			snap, err := store.Latest(cmd.Context(), args[0], diffKind)
			if err != nil {
				return err
			}
			oldCSS = snap.CSS
			oldName = fmt.Sprintf("%s/%s (snapshot #%d)", args[0], kind, snap.ID)
			newName = fmt.Sprintf("%s/%s (current)", args[0], kind)
		} else {
			oldCSS, err = generate(cmd.Context(), svc, kind, args[0])
			if err != nil {
				return err
			}
			oldName = args[0] + "/" + diffKind
			newName = args[1] + "/" + diffKind
		}

		result := cssdiff.Compare(oldCSS, newCSS)
		if err := writeDiff(cmd.OutOrStdout(), result.Unified(diffContext, oldName, newName)); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%d added, %d removed\n", result.Added, result.Removed)

		if diffExitCode && result.Changed() {
			return errDiffFound
		}
		return nil
	},
}

func init() {
	diffCmd.Flags().StringVarP(&diffKind, "kind", "k", string(service.KindGlobal), "what to compare: global, animation, bundle or vars")
	diffCmd.Flags().IntVarP(&diffContext, "context", "U", 3, "unchanged lines shown around each change")
	diffCmd.Flags().BoolVar(&diffSnapshot, "snapshot", false, "compare with the latest recorded snapshot")
	diffCmd.Flags().BoolVar(&diffExitCode, "exit-code", false, "exit non-zero when the stylesheets differ")
	rootCmd.AddCommand(diffCmd)
}

var (
	diffAddStyle    = lipgloss.NewStyle().Foreground(styles.StatusSuccessColor)
	diffDeleteStyle = lipgloss.NewStyle().Foreground(styles.StatusErrorColor)
	diffHunkStyle   = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
)

// writeDiff colors unified diff lines by their prefix.
func writeDiff(w io.Writer, unified string) error {
	if unified == "" {
		return nil
	}
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(unified, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			line = lipgloss.NewStyle().Bold(true).Render(line)
		case strings.HasPrefix(line, "+"):
			line = diffAddStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			line = diffDeleteStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			line = diffHunkStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
