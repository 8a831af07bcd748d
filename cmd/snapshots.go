package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/config"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/presentation"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/service"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/snapshot"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/ui/styles"
)

var (
	snapshotsLimit int
	snapshotsJSON  bool
	snapshotsPrune bool
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots [slug]",
	Short: "List recorded stylesheet snapshots",
	Long: `List the stylesheets recorded with "css --snapshot" or "animation --snapshot",
newest first. Use --prune to drop all but the newest snapshots.keep per theme
and kind.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSnapshots()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if snapshotsPrune {
			n, err := store.Prune(cmd.Context(), cfg.Snapshots.Keep)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "pruned %d snapshot(s)\n", n)
		}

		slug := ""
		if len(args) > 0 {
			slug = args[0]
		}
		snaps, err := store.List(cmd.Context(), slug, snapshotsLimit)
		if err != nil {
			return err
		}

		if snapshotsJSON {
			return presentation.NewFormatter(cmd.OutOrStdout()).Format(presentation.FromSnapshots(snaps))
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), snapshotTable(snaps))
		return err
	},
}

func init() {
	snapshotsCmd.Flags().IntVarP(&snapshotsLimit, "limit", "n", 20, "show at most n snapshots (0 for all)")
	snapshotsCmd.Flags().BoolVar(&snapshotsJSON, "json", false, "print JSON")
	snapshotsCmd.Flags().BoolVar(&snapshotsPrune, "prune", false, "delete snapshots beyond snapshots.keep first")
	rootCmd.AddCommand(snapshotsCmd)
}

func snapshotsPath() string {
	if cfg.Snapshots.Path != "" {
		return cfg.Snapshots.Path
	}
	return config.DefaultSnapshotsPath()
}

func openSnapshots() (*snapshot.Store, error) {
	path := snapshotsPath()
	if path == "" {
		return nil, fmt.Errorf("snapshots.path is not set and the home directory is unknown")
	}
	return snapshot.Open(path)
}

// recordSnapshot saves css and prunes old entries. Progress goes to stderr so
// stdout stays a clean stylesheet.
func recordSnapshot(cmd *cobra.Command, slug string, kind service.Kind, css string) error {
	store, err := openSnapshots()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	snap, created, err := store.Save(cmd.Context(), slug, string(kind), css)
	if err != nil {
		return err
	}
	if _, err := store.Prune(cmd.Context(), cfg.Snapshots.Keep); err != nil {
		return err
	}

	status := "unchanged since"
	if created {
		status = "recorded as"
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s snapshot #%d\n", slug, kind, status, snap.ID)
	return nil
}

func snapshotTable(snaps []snapshot.Snapshot) string {
	if len(snaps) == 0 {
		return styles.MutedStyle.Render("no snapshots recorded")
	}
	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			fmt.Sprint(s.ID),
			s.Slug,
			s.Kind,
			s.Digest[:min(12, len(s.Digest))],
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		})
	}
	return table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "SLUG", "KIND", "DIGEST", "RECORDED").
		Rows(rows...).
		String()
}
