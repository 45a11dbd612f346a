package deployment

import (
	"fmt"

	"eslap-workspace/cmd/root"
	"eslap-workspace/internal/models"

	"github.com/spf13/cobra"
)

var addOpts struct {
	template string
	service  models.ServiceConfig
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Generate a deployment of a service",
	Long:  "Resolve the parameters and resources of a service version and generate deployments/<name> from a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		msg, err := ws.Deployments.Add(cmd.Context(), addOpts.template, models.DeploymentConfig{
			Name:    args[0],
			Service: addOpts.service,
		})
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

func init() {
	deploymentCmd.AddCommand(addCmd)

	flags := addCmd.Flags()
	flags.StringVarP(&addOpts.template, "template", "t", "", "generator template")
	flags.StringVarP(&addOpts.service.Domain, "domain", "d", "", "service domain")
	flags.StringVarP(&addOpts.service.Name, "service", "s", "", "service name")
	flags.StringVarP(&addOpts.service.Version, "version", "v", "", "service version")
	addCmd.MarkFlagRequired("template")
	addCmd.MarkFlagRequired("domain")
	addCmd.MarkFlagRequired("service")
}
