package deployment

import (
	"os"

	"eslap-workspace/cmd/root"
	"eslap-workspace/internal/utils"

	"github.com/spf13/cobra"
)

var manifestOpts struct {
	query  string
	output string
}

var manifestCmd = &cobra.Command{
	Use:   "manifest <name>",
	Short: "Print the manifest of a deployment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		doc, err := ws.Deployments.GetManifest(args[0])
		if err != nil {
			return err
		}
		if manifestOpts.query == "" {
			return utils.PrintDocument(os.Stdout, doc, manifestOpts.output)
		}
		values, err := utils.Query(doc, manifestOpts.query)
		if err != nil {
			return err
		}
		if len(values) == 1 {
			return utils.PrintDocument(os.Stdout, values[0], manifestOpts.output)
		}
		return utils.PrintDocument(os.Stdout, values, manifestOpts.output)
	},
}

func init() {
	deploymentCmd.AddCommand(manifestCmd)

	manifestCmd.Flags().StringVarP(&manifestOpts.query, "query", "q", "", "JSONPath selecting part of the manifest, e.g. $.servicename")
	manifestCmd.Flags().StringVarP(&manifestOpts.output, "output", "o", utils.FormatJSON, "output format (json/yaml)")
}
