package deployment

import (
	"fmt"

	"eslap-workspace/cmd/root"
	"eslap-workspace/internal/models"
	"eslap-workspace/internal/utils"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
)

var undeployCmd = &cobra.Command{
	Use:   "undeploy <name>",
	Short: "Remove a deployment from a stamp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		instances, err := ws.Deployments.Undeploy(cmd.Context(), args[0], stampName)
		if err != nil {
			return err
		}
		fmt.Printf("Deployment \"%s\" undeployed from stamp \"%s\"\n", args[0], stampName)
		printInstances(instances)
		return nil
	},
}

type instanceRow struct {
	Deployment string `json:"deployment"`
	Role       string `json:"role"`
	Instance   string `json:"instance"`
	Connected  bool   `json:"connected"`
}

func printInstances(deployments []models.DeploymentInstanceInfo) {
	var rows []*orderedmap.OrderedMap
	for _, d := range deployments {
		for role, info := range d.Roles {
			for id, inst := range info.Instances {
				row, err := utils.StructToOrderedMap(instanceRow{
					Deployment: d.URN,
					Role:       role,
					Instance:   id,
					Connected:  inst.Connected,
				})
				if err == nil {
					rows = append(rows, row)
				}
			}
		}
	}
	utils.PrintFormat(rows)
}

func init() {
	deploymentCmd.AddCommand(undeployCmd)

	undeployCmd.Flags().StringVar(&stampName, "stamp", "", "stamp hosting the deployment")
	undeployCmd.MarkFlagRequired("stamp")
}
