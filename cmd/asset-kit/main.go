package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/asset-kit/internal/cli"
	"github.com/ironsheep/asset-kit/internal/config"
	"github.com/ironsheep/asset-kit/internal/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes one command line and returns the process exit code.
func run(args []string, stdout io.Writer) int {
	settings := config.LoadFromEnv()

	// Logs go to stderr; stdout carries the JSON result
	logger.Configure(settings.LogLevel, settings.LogFormat)
	logger.WithField("version", Version).Debug("asset-kit starting")

	var root cli.CLI
	parser, err := cli.NewParser(&root, versionString(), settings)
	if err != nil {
		logger.WithError(err).Error("Failed to build command line")
		return 1
	}

	if err := cli.Execute(parser, args, cli.NewContext(stdout, settings)); err != nil {
		logger.WithError(err).Error("Command failed")
		return 1
	}
	return 0
}

func versionString() string {
	return fmt.Sprintf("asset-kit %s\n  Build time: %s\n  Git commit: %s", Version, BuildTime, GitCommit)
}
