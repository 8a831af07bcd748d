package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/service"
)

var (
	cssOut           string
	cssWithAnimation bool
	cssSnapshot      bool
)

var cssCmd = &cobra.Command{
	Use:   "css [slug]",
	Short: "Print the global stylesheet of a theme",
	Long: `Print the global stylesheet of a theme: the :root custom properties, the
@theme inline block and the typography rules.

Without a slug the default_theme from the config is used.

Examples:
  nextgen-theme css nordic-frost
  nextgen-theme css nordic-frost --with-animation --out app/theme.css
  nextgen-theme css --snapshot        # also record it for "diff --snapshot"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := service.KindGlobal
		if cssWithAnimation {
			kind = service.KindBundle
		}
		return runGenerate(cmd, args, kind, cssOut, cssSnapshot)
	},
}

var (
	animationOut      string
	animationSnapshot bool
)

var animationCmd = &cobra.Command{
	Use:   "animation [slug]",
	Short: "Print the animation stylesheet of a theme",
	Long: `Print the animation stylesheet generated from the theme's preset and
overrides. Every rule is scoped to the theme's root class.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args, service.KindAnimation, animationOut, animationSnapshot)
	},
}

func init() {
	cssCmd.Flags().StringVarP(&cssOut, "out", "o", "", "write to a file instead of stdout")
	cssCmd.Flags().BoolVarP(&cssWithAnimation, "with-animation", "a", false, "append the animation stylesheet")
	cssCmd.Flags().BoolVar(&cssSnapshot, "snapshot", false, "record the output in the snapshot database")
	rootCmd.AddCommand(cssCmd)

	animationCmd.Flags().StringVarP(&animationOut, "out", "o", "", "write to a file instead of stdout")
	animationCmd.Flags().BoolVar(&animationSnapshot, "snapshot", false, "record the output in the snapshot database")
	rootCmd.AddCommand(animationCmd)
}

func runGenerate(cmd *cobra.Command, args []string, kind service.Kind, out string, snapshot bool) error {
	slug, err := resolveSlug(args)
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	css, err := generate(cmd.Context(), svc, kind, slug)
	if err != nil {
		return err
	}
	if snapshot {
		if err := recordSnapshot(cmd, slug, kind, css); err != nil {
			return err
		}
	}
	return writeOutput(cmd.OutOrStdout(), out, css)
}

// generate produces the artifact of the given kind. Vars render as JSON.
func generate(ctx context.Context, svc *service.ThemeService, kind service.Kind, slug string) (string, error) {
	switch kind {
	case service.KindGlobal:
		return svc.GlobalCSS(ctx, slug)
	case service.KindAnimation:
		return svc.AnimationCSS(ctx, slug)
	case service.KindBundle:
		return svc.Bundle(ctx, slug)
	case service.KindVars:
		vars, err := svc.Vars(ctx, slug)
		if err != nil {
			return "", err
		}
		data, err := json.MarshalIndent(vars, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unknown kind %q (want global, animation, bundle or vars)", kind)
	}
}
