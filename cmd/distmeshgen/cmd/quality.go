package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/go-distmesh/distmesh"
	"github.com/arl/go-distmesh/quality"
)

var (
	qualityCfgFile string
	qualitySteps   int
)

// qualityCmd runs the same relaxation as buildCmd but only prints the
// single final average-quality number, for scripting.
var qualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "print the average triangle quality after relaxing",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := loadSettings(qualityCfgFile)
		check(err)

		b := distmesh.NewBuilder(settings.NPoints).
			BBox(settings.X1, settings.Y1, settings.X2, settings.Y2)
		if settings.Kernel == distmesh.Persson {
			b.Persson()
		} else {
			b.Bossen()
		}
		if settings.VirtualEdges {
			b.VirtualEdges()
		}
		if settings.BreakEdges {
			b.BreakEdges()
		}

		engine, err := b.Build()
		check(err)

		for i := 0; i < qualitySteps; i++ {
			engine.Update(0.1)
		}
		fmt.Println(quality.Average(engine.Points, engine.Triangulation.Triangles))
	},
}

func init() {
	RootCmd.AddCommand(qualityCmd)

	qualityCmd.Flags().StringVar(&qualityCfgFile, "config", "distmesh.yml", "build settings file")
	qualityCmd.Flags().IntVar(&qualitySteps, "steps", 100, "number of relaxation steps")
}
