package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/weiju/rosetta-raytracer/scene"
)

// List the builtin scenes that can be passed to the render command.
func ListScenes(_ *cli.Context) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Scene"})
	for _, name := range scene.BuiltinNames() {
		table.Append([]string{fmt.Sprintf("%s", name)})
	}
	table.Render()
	return nil
}
