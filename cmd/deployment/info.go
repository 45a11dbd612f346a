package deployment

import (
	"fmt"

	"eslap-workspace/cmd/root"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show the service a deployment was generated from",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		svc, err := ws.Deployments.GetService(args[0])
		if err != nil {
			return err
		}
		file, err := ws.Deployments.GetDistributableFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Deployment: %s\n", args[0])
		fmt.Printf("Manifest:   %s\n", file)
		fmt.Printf("Service:    %s\n", ws.Services.GenerateURN(svc.Name, svc.Domain, svc.Version))
		return nil
	},
}

func init() {
	deploymentCmd.AddCommand(infoCmd)
}
