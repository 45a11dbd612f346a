package deployment

import (
	"fmt"
	"strconv"

	"eslap-workspace/cmd/root"

	"github.com/spf13/cobra"
)

var stampName string

var scaleCmd = &cobra.Command{
	Use:   "scale <name> <role> <instances>",
	Short: "Change the number of instances of a role",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[2])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid number of instances '%s'", args[2])
		}
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		msg, err := ws.Deployments.ScaleRole(cmd.Context(), args[0], args[1], n, stampName)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

func init() {
	deploymentCmd.AddCommand(scaleCmd)

	scaleCmd.Flags().StringVar(&stampName, "stamp", "", "stamp hosting the deployment")
	scaleCmd.MarkFlagRequired("stamp")
}
