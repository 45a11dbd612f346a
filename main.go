package main

import (
	"context"
	"os"

	_ "eslap-workspace/cmd"
	"eslap-workspace/cmd/root"
)

func main() {
	if err := root.RootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
