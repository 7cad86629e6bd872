// Package main is the entry point for the Toolbar Icons application.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"toolbar-icons/internal/app"
)

const examples = `
# Open the preview window
toolbaricons

# Export the set as 32px PNGs on a white background
toolbaricons export --size 32 --background white --out ./icons

# Export the SVG sources
toolbaricons export --svg --out ./icons`

type rootOptions struct {
	configPath string
	verbose    bool
}

type exportOptions struct {
	out        string
	size       int
	background string
	svg        bool
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "toolbaricons",
		Short:         "Preview and export the toolbar icon set",
		Example:       examples,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			application, err := app.New(o.configPath, o.verbose)
			if err != nil {
				return fmt.Errorf("initialize application: %w", err)
			}
			application.Run()
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&o.configPath, "config", "", "Path to config file (default ~/.config/toolbar-icons/config.json)")
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Also log to stdout")

	cmd.AddCommand(newExportCmd(o))
	return cmd
}

func newExportCmd(root *rootOptions) *cobra.Command {
	o := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the icon set to files without opening a window",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			application, err := app.New(root.configPath, root.verbose)
			if err != nil {
				return fmt.Errorf("initialize application: %w", err)
			}

			written, err := application.Export(app.ExportRequest{
				Dir:        o.out,
				Size:       o.size,
				Background: o.background,
				SVG:        o.svg,
			})
			for _, path := range written {
				fmt.Fprintln(c.OutOrStdout(), path)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Output directory (default from config)")
	cmd.Flags().IntVarP(&o.size, "size", "s", 0, "Icon size in pixels (default from config)")
	cmd.Flags().StringVarP(&o.background, "background", "b", "", "Background: transparent, a color name or #rrggbb")
	cmd.Flags().BoolVar(&o.svg, "svg", false, "Write SVG sources instead of PNGs")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
