package service

import (
	"fmt"
	"os"

	"eslap-workspace/cmd/root"
	"eslap-workspace/internal/utils"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
)

var outputFormat string

var configCmd = &cobra.Command{
	Use:   "config <domain> <name>",
	Short: "Show the resolved deployment configuration of a service",
	Long:  "Show the parameters and resources a deployment of the service gets, with their default values",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		conf, err := ws.Services.Configuration(serviceArgs(args))
		if err != nil {
			return err
		}
		if outputFormat != "table" {
			return utils.PrintDocument(os.Stdout, conf, outputFormat)
		}

		var rows []*orderedmap.OrderedMap
		for _, item := range conf.Parameters {
			rows = appendRow(rows, item)
		}
		fmt.Println("=== Parameters ===")
		utils.PrintFormat(rows)

		rows = nil
		for _, item := range conf.Resources {
			rows = appendRow(rows, item)
		}
		fmt.Println("\n=== Resources ===")
		utils.PrintFormat(rows)
		return nil
	},
}

func init() {
	serviceCmd.AddCommand(configCmd)

	configCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "output format (table/json/yaml)")
}
