package service

import (
	"fmt"

	"eslap-workspace/cmd/root"

	"github.com/spf13/cobra"
)

var templateName string

var addCmd = &cobra.Command{
	Use:   "add <domain> <name>",
	Short: "Generate a service from a template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		msg, err := ws.Services.Add(cmd.Context(), templateName, serviceArgs(args))
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

func init() {
	serviceCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&templateName, "template", "t", "", "generator template")
	addCmd.MarkFlagRequired("template")
}
