package main

import (
	"os"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/cmd/kuendigungsassistent/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
