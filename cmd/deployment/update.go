package deployment

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"eslap-workspace/cmd/root"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"
)

var updateCmd = &cobra.Command{
	Use:   "update <name> <file|->",
	Short: "Replace the manifest of a deployment",
	Long:  "Replace the manifest of a deployment with a JSON document read from a file or from stdin ('-'). Comments are allowed.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args[1])
		if err != nil {
			return err
		}
		var doc map[string]interface{}
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return fmt.Errorf("invalid manifest '%s': %w", args[1], err)
		}
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		if err := ws.Deployments.UpdateManifest(args[0], doc); err != nil {
			return err
		}
		fmt.Printf("Manifest of deployment \"%s\" updated\n", args[0])
		return nil
	},
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func init() {
	deploymentCmd.AddCommand(updateCmd)
}
