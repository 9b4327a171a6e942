package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when distmeshgen is called without any
// subcommand.
var RootCmd = &cobra.Command{
	Use:   "distmeshgen",
	Short: "relax point clouds into quality 2D triangle meshes",
	Long: `distmeshgen drives the distmesh physical relaxation engine:
	- create a build settings file (YAML),
	- run a relaxation for a fixed number of steps,
	- report the resulting average triangle quality.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once
// by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
