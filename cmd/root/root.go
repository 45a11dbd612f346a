package root

import (
	"eslap-workspace/internal/config"
	"eslap-workspace/internal/logger"
	"eslap-workspace/services"

	"github.com/spf13/cobra"
)

var (
	configFile    string
	workspacePath string
	logLevel      string
)

var RootCmd = &cobra.Command{
	Use:   "eslap",
	Short: "eslap workspace toolchain",
	Long: `eslap manages the components, services and deployments of a workspace,
generates deployment configuration from service manifests and forwards
deploy/scale/undeploy operations to registered stamps`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is ./config.yaml or ~/.eslap/config.yaml)")
	flags.StringVarP(&workspacePath, "workspace", "w", "", "workspace directory")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug/info/warn/error)")
}

/**
 * Load configuration and logging before any subcommand runs
 * @description
 * - Command line flags override config.yaml and ESLAP_* variables
 * - The server subcommand also logs to stdout
 */
func initApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if workspacePath != "" {
		cfg.Workspace.Path = workspacePath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	config.SetApp(cfg)
	logger.InitLogger(&cfg.Log, cmd.Name() == "server")
	return nil
}

// OpenWorkspace opens the workspace selected by the loaded configuration.
func OpenWorkspace() (*services.Workspace, error) {
	return services.OpenWorkspace(config.App())
}
