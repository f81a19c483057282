package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/metronav/metronav/pkg/io"
)

// exportCommand creates the export command, which writes the loaded network
// as a single JSON network file.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the network as one JSON file",
		Long: `Write the loaded network as a single JSON network file.

The result can be passed back with --lines, which is handy for turning a
directory of line files into one portable document.`,
		Example: `  metronav export --lines ./lines -o network.json
  metronav route Espanya Diagonal --lines network.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.loadPlanner(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" {
				return pkgio.WriteNetworkJSON(p.Network, cmd.OutOrStdout())
			}
			if err := pkgio.ExportNetworkJSON(p.Network, output); err != nil {
				return err
			}
			printSuccess("Exported %s", plural(p.Network.Len(), "line"))
			printFile(output)
			printNextStep("Use it", appName+" lines --lines "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
