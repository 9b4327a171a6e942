package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/go-distmesh/distmesh"
	"github.com/arl/go-distmesh/quality"
)

var (
	buildCfgFile string
	buildSteps   int
	buildDt      float64
)

// buildCmd relaxes a point cloud from a settings file and reports the
// resulting quality.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "run a relaxation and report final quality",
	Long: `Build a distmesh.Engine from a YAML settings file, run it for
--steps iterations of size --dt, and print the average triangle
quality at each checkpoint.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := loadSettings(buildCfgFile)
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

		for i := 0; i < buildSteps; i++ {
			engine.Update(buildDt)
			if (i+1)%10 == 0 || i == buildSteps-1 {
				q := quality.Average(engine.Points, engine.Triangulation.Triangles)
				fmt.Printf("step %d: avg quality = %.4f\n", i+1, q)
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&buildCfgFile, "config", "distmesh.yml", "build settings file")
	buildCmd.Flags().IntVar(&buildSteps, "steps", 100, "number of relaxation steps")
	buildCmd.Flags().Float64Var(&buildDt, "dt", 0.1, "integration step size")
}
