package service

import (
	"fmt"

	"eslap-workspace/cmd/root"

	"github.com/spf13/cobra"
)

var versionsCmd = &cobra.Command{
	Use:   "versions <domain> <name>",
	Short: "List the versions of a service present in the workspace",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		cfg := serviceArgs(args)
		versions, err := ws.Services.Versions(cfg)
		if err != nil {
			return err
		}
		if len(versions) == 0 {
			fmt.Printf("No versioned manifests for %s/%s\n", cfg.Domain, cfg.Name)
			return nil
		}
		for _, v := range versions {
			fmt.Println(v)
		}
		return nil
	},
}

func init() {
	serviceCmd.AddCommand(versionsCmd)
}
