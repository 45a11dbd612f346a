package service

import (
	"fmt"

	"eslap-workspace/cmd/root"
	"eslap-workspace/internal/models"
	"eslap-workspace/internal/utils"
	"eslap-workspace/services"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <domain> <name>",
	Short: "Show roles, channels and parameters of a service",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := root.OpenWorkspace()
		if err != nil {
			return err
		}
		return showInfo(ws.Services, serviceArgs(args))
	},
}

type roleRow struct {
	Role      string `json:"role"`
	Component string `json:"component"`
}

type channelRow struct {
	Direction string `json:"direction"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Protocol  string `json:"protocol"`
}

func showInfo(sm *services.ServiceManager, cfg models.ServiceConfig) error {
	version, err := sm.GetCurrentVersion(cfg)
	if err != nil {
		return err
	}
	roles, err := sm.GetRoles(cfg)
	if err != nil {
		return err
	}
	provided, err := sm.GetProvidedChannels(cfg)
	if err != nil {
		return err
	}
	required, err := sm.GetRequiredChannels(cfg)
	if err != nil {
		return err
	}
	params, err := sm.GetParameters(cfg)
	if err != nil {
		return err
	}
	resources, err := sm.GetResources(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Service: %s\n", sm.GenerateURN(cfg.Name, cfg.Domain, version))

	var rows []*orderedmap.OrderedMap
	for _, r := range roles {
		rows = appendRow(rows, roleRow{Role: r.Name, Component: r.Component})
	}
	fmt.Println("\n=== Roles ===")
	utils.PrintFormat(rows)

	rows = nil
	for _, c := range provided {
		rows = appendRow(rows, channelRow{Direction: "provides", Name: c.Name, Type: c.Type, Protocol: c.Protocol})
	}
	for _, c := range required {
		rows = appendRow(rows, channelRow{Direction: "requires", Name: c.Name, Type: c.Type, Protocol: c.Protocol})
	}
	if len(rows) > 0 {
		fmt.Println("\n=== Channels ===")
		utils.PrintFormat(rows)
	}

	rows = nil
	for _, p := range params {
		rows = appendRow(rows, p)
	}
	if len(rows) > 0 {
		fmt.Println("\n=== Parameters ===")
		utils.PrintFormat(rows)
	}

	rows = nil
	for _, r := range resources {
		rows = appendRow(rows, r)
	}
	if len(rows) > 0 {
		fmt.Println("\n=== Resources ===")
		utils.PrintFormat(rows)
	}
	return nil
}

func appendRow(rows []*orderedmap.OrderedMap, v interface{}) []*orderedmap.OrderedMap {
	row, err := utils.StructToOrderedMap(v)
	if err != nil {
		return rows
	}
	return append(rows, row)
}

func init() {
	serviceCmd.AddCommand(infoCmd)
}
