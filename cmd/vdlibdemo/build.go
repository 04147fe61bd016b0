package main

import (
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/potato3d/vdlib"
)

func buildCommand() cli.Command {
	return cli.Command{
		Name:  "build",
		Usage: "build a BVH over a synthetic scene and print its statistics",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "count", Value: 64, Usage: "number of cubes to place in the synthetic scene"},
		},
		Action: runBuild,
	}
}

func runBuild(ctx *cli.Context) error {
	count := ctx.Int("count")
	logger.Infof("generating synthetic scene with %d geometries", count)

	scene := buildCubeFieldScene(count, vdlib.AABB)
	root := scene.EndScene()

	builder := vdlib.NewTreeBuilder(vdlib.DefaultTreeOptions())

	start := time.Now()
	_, stats := builder.CreateTree(root)
	elapsed := time.Since(start)

	logger.Noticef("built tree over %d geometries in %s", count, elapsed)
	displayTreeStats(stats, elapsed)
	return nil
}

func displayTreeStats(stats vdlib.TreeStats, elapsed time.Duration) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"metric", "value"})
	table.Append([]string{"node count", strconv.Itoa(stats.NodeCount)})
	table.Append([]string{"leaf count", strconv.Itoa(stats.LeafCount)})
	table.Append([]string{"tree depth", strconv.Itoa(stats.TreeDepth)})
	table.Append([]string{"build time", elapsed.String()})
	table.Render()
}
