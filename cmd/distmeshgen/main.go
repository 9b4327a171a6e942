// Command distmeshgen is a thin CLI around package distmesh: generate
// a settings file, run a relaxation, and print the resulting average
// triangle quality.
package main

import "github.com/arl/go-distmesh/cmd/distmeshgen/cmd"

func main() {
	cmd.Execute()
}
