package cmd

import (
	_ "eslap-workspace/cmd/component"
	_ "eslap-workspace/cmd/deployment"
	_ "eslap-workspace/cmd/root"
	_ "eslap-workspace/cmd/server"
	_ "eslap-workspace/cmd/service"
	_ "eslap-workspace/cmd/stamp"
)
