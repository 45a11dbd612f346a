package deployment

import (
	"fmt"
	"os"

	"eslap-workspace/cmd/root"
	"eslap-workspace/internal/utils"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <name>",
	Short: "Register the manifest of a deployment on a stamp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		file, err := ws.Deployments.GetDistributableFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Registering %s on stamp \"%s\"\n", file, stampName)
		result, err := ws.Deployments.Deploy(cmd.Context(), args[0], stampName)
		if err != nil {
			return err
		}
		return utils.PrintDocument(os.Stdout, result, utils.FormatJSON)
	},
}

func init() {
	deploymentCmd.AddCommand(registerCmd)

	registerCmd.Flags().StringVar(&stampName, "stamp", "", "target stamp")
	registerCmd.MarkFlagRequired("stamp")
}
