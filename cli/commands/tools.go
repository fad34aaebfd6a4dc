package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opsbridge/netbox-mcp/tools"
	"github.com/opsbridge/netbox-mcp/toolset"
)

func (a *App) newToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools this server exposes",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := tools.NewRegistry()
			// A nil client is fine here; nothing gets called.
			if err := toolset.Register(registry, toolset.Config{}); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, t := range registry.List() {
				fmt.Fprintf(tw, "%s\t%s\n", t.Name(), t.Description())
			}
			return tw.Flush()
		},
	}
}
