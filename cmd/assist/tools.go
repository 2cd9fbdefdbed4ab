package main

import (
	"fmt"

	"github.com/iftachshalev/shalev-assist/internal/tools"
	"github.com/iftachshalev/shalev-assist/internal/utils"
	"github.com/spf13/cobra"
)

type toolSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog offered to the model as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := tools.NewRegistry(tools.Catalog()...)
			if err != nil {
				return err
			}
			schemas := registry.Schemas()

			var out []toolSchema
			for _, name := range registry.Names() {
				tool, err := registry.Lookup(name)
				if err != nil {
					return err
				}
				out = append(out, toolSchema{
					Name:        name,
					Description: tool.Description,
					Parameters:  schemas[name],
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), utils.JsonDumpsObj(out))
			return nil
		},
	}
}
