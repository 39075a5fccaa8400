package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/shieldicon/pkg/fonts"
)

// fontsCommand creates the fonts command, which reports the font candidates
// and the one the renderer will use.
func (c *CLI) fontsCommand() *cobra.Command {
	var fontPath string

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "Show which fonts the renderer can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			found := fonts.Lookup()
			for _, name := range fonts.Candidates {
				if p := found[name]; p != "" {
					printKeyValue(name, p)
				} else {
					printKeyValue(name, StyleDim.Render("not installed"))
				}
			}
			printNewline()

			f, err := fonts.Resolve(fontPath)
			if err != nil {
				return err
			}
			if f.Embedded {
				printWarning("No system font found, using %s", f.Name)
				return nil
			}
			printSuccess("Using %s", f.Name)
			printDetail("%s", f.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&fontPath, "font", "", "check this font file instead of searching")

	return cmd
}
