package stamp

import (
	"fmt"
	"os"

	"eslap-workspace/cmd/root"
	"eslap-workspace/internal/utils"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
)

var stampCmd = &cobra.Command{
	Use:   "stamp",
	Short: "Stamps registered in the workspace (list/info)",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered stamps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		stamps, err := ws.Stamps.List()
		if err != nil {
			return err
		}
		if len(stamps) == 0 {
			fmt.Printf("No stamps registered in %s\n", ws.Registry().Path())
			return nil
		}
		var rows []*orderedmap.OrderedMap
		for _, s := range stamps {
			if row, err := utils.StructToOrderedMap(s); err == nil {
				rows = append(rows, row)
			}
		}
		utils.PrintFormat(rows)
		return nil
	},
}

var outputFormat string

var infoCmd = &cobra.Command{
	Use:   "info <stamp>",
	Short: "List the deployments running on a stamp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		deployments, err := ws.Stamps.Info(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return utils.PrintDocument(os.Stdout, deployments, outputFormat)
	},
}

func init() {
	root.RootCmd.AddCommand(stampCmd)
	stampCmd.AddCommand(listCmd)
	stampCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&outputFormat, "output", "o", utils.FormatJSON, "output format (json/yaml)")
}
