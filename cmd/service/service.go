package service

import (
	"eslap-workspace/cmd/root"
	"eslap-workspace/internal/models"

	"github.com/spf13/cobra"
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Service operations (add/info/config/versions)",
	Long:  `Service operations (add/info/config/versions)`,
}

const serviceExample = `  # resolved deployment configuration of a service
  eslap service config acme.com webapp --version 1_0_0 -o yaml`

// target is the service named by the <domain> <name> arguments and the --version flag.
var target models.ServiceConfig

func serviceArgs(args []string) models.ServiceConfig {
	cfg := target
	cfg.Domain = args[0]
	cfg.Name = args[1]
	return cfg
}

func init() {
	root.RootCmd.AddCommand(serviceCmd)

	serviceCmd.Example = serviceExample
	serviceCmd.PersistentFlags().StringVarP(&target.Version, "version", "v", "", "service version")
}
