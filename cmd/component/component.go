package component

import (
	"fmt"

	"eslap-workspace/cmd/root"
	"eslap-workspace/internal/models"
	"eslap-workspace/internal/utils"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
)

var componentCmd = &cobra.Command{
	Use:   "component",
	Short: "Component operations (add/info)",
}

var (
	version      string
	templateName string
)

var addCmd = &cobra.Command{
	Use:   "add <domain> <name>",
	Short: "Generate a component from a template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		msg, err := ws.Components.Add(cmd.Context(), templateName, models.ComponentConfig{
			Domain:  args[0],
			Name:    args[1],
			Version: version,
		})
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <urn>|<domain> <name>",
	Short: "Show the parameters and resources of a component",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		var cfg models.ComponentConfig
		if len(args) == 1 {
			cfg = ws.Components.ParseName(args[0])
		} else {
			cfg = models.ComponentConfig{Domain: args[0], Name: args[1], Version: version}
		}

		params, err := ws.Components.GetParameters(cfg)
		if err != nil {
			return err
		}
		resources, err := ws.Components.GetResources(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Component: %s\n", ws.Components.GenerateURN(cfg.Name, cfg.Domain, cfg.Version))
		var rows []*orderedmap.OrderedMap
		for _, p := range params {
			if row, err := utils.StructToOrderedMap(p); err == nil {
				rows = append(rows, row)
			}
		}
		fmt.Println("\n=== Parameters ===")
		utils.PrintFormat(rows)

		rows = nil
		for _, r := range resources {
			if row, err := utils.StructToOrderedMap(r); err == nil {
				rows = append(rows, row)
			}
		}
		fmt.Println("\n=== Resources ===")
		utils.PrintFormat(rows)
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(componentCmd)
	componentCmd.AddCommand(addCmd)
	componentCmd.AddCommand(infoCmd)

	componentCmd.PersistentFlags().StringVarP(&version, "version", "v", "", "component version")
	addCmd.Flags().StringVarP(&templateName, "template", "t", "", "generator template")
	addCmd.MarkFlagRequired("template")

	componentCmd.Example = `  eslap component info eslap://acme.com/components/database/1_0_0`
}
