package deployment

import (
	"eslap-workspace/cmd/root"

	"github.com/spf13/cobra"
)

var deploymentCmd = &cobra.Command{
	Use:     "deployment",
	Aliases: []string{"deploy", "dep"},
	Short:   "Deployment operations (add/manifest/scale/undeploy etc.)",
}

const deploymentExample = `  # generate deployments/app1 from version 1_0_0 of acme.com/webapp
  eslap deployment add app1 --template eslap:deployment --domain acme.com --service webapp --version 1_0_0

  # scale role web of app1 to 3 instances on stamp prod
  eslap deployment scale app1 web 3 --stamp prod`

func init() {
	root.RootCmd.AddCommand(deploymentCmd)

	deploymentCmd.Example = deploymentExample
}
