package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/mevansam/textparsers/cli"
	"github.com/mevansam/textparsers/logger"
)

func main() {
	logger.Initialize()

	if err := cli.NewRootCommand(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
