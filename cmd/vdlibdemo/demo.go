package main

import (
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/potato3d/vdlib"
)

func demoCommand() cli.Command {
	return cli.Command{
		Name:  "demo",
		Usage: "run one simulated frame of view-frustum and occlusion culling over a synthetic scene",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "count", Value: 64, Usage: "number of cubes to place in the synthetic scene"},
		},
		Action: runDemo,
	}
}

// demoCounters tallies what each culling mode did with a frame, for
// display; it never issues real draw calls since there is no renderer
// attached to this CLI.
type demoCounters struct {
	visited int
	drawn   int
	culled  int
}

// frustumOnlyCallback drives vdlib.FrustumCuller.Traverse on its own,
// mirroring the original demo's Draw_FrustumCulling mode.
type frustumOnlyCallback struct {
	counters *demoCounters
}

func (c frustumOnlyCallback) Inside(node *Node) {
	c.counters.visited++
	c.counters.drawn++
}

// composedCallback drives vdlib.OcclusionCuller.Traverse with frustum
// culling composed in via IsValid, mirroring the original demo's
// Draw_All mode: a node outside the frustum never gets an occlusion
// query spent on it.
type composedCallback struct {
	frustum  *vdlib.FrustumCuller
	counters *demoCounters
}

func (c composedCallback) IsValid(node *Node) bool {
	c.counters.visited++
	inside := c.frustum.Contains(node)
	if !inside {
		c.counters.culled++
	}
	return inside
}

func (c composedCallback) Draw(node *Node) {
	c.counters.drawn++
}

func (c composedCallback) DrawBoundingBox(node *Node) {
	// Probing draws don't count as scene content drawn.
}

// Node is a local alias so callback methods above don't need to import
// vdlib just to spell out the parameter type in two places.
type Node = vdlib.Node

func runDemo(ctx *cli.Context) error {
	count := ctx.Int("count")

	scene := buildCubeFieldScene(count, vdlib.AABB)
	root := scene.EndScene()

	builder := vdlib.NewTreeBuilder(vdlib.DefaultTreeOptions())
	tree, stats := builder.CreateTree(root)

	eye := mgl32.Vec3{0, 0, -10}
	center := mgl32.Vec3{5, 5, 5}
	up := mgl32.Vec3{0, 1, 0}
	view := mgl32.LookAtV(eye, center, up)
	proj := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 1000)

	frustumCuller := vdlib.NewFrustumCuller(stats.NodeCount)
	frustumCuller.UpdateFrustumPlanes(proj.Mul4(view))

	frustumCounters := &demoCounters{}
	frustumCuller.Traverse(tree, frustumOnlyCallback{counters: frustumCounters})

	occlusionFrustum := vdlib.NewFrustumCuller(stats.NodeCount)
	occlusionFrustum.UpdateFrustumPlanes(proj.Mul4(view))

	occlusionCuller := vdlib.NewOcclusionCuller(stats.NodeCount, newFakeBackend(), vdlib.DefaultOcclusionOptions())
	occlusionCuller.UpdateViewerParameters(view, proj)

	composedCounters := &demoCounters{}
	callback := composedCallback{frustum: occlusionFrustum, counters: composedCounters}
	if err := occlusionCuller.Traverse(tree, 0, callback); err != nil {
		return err
	}

	displayDemoStats(frustumCounters, composedCounters)
	return nil
}

func displayDemoStats(frustumOnly, composed *demoCounters) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"mode", "visited", "drawn", "culled"})
	table.Append([]string{"frustum only",
		strconv.Itoa(frustumOnly.visited), strconv.Itoa(frustumOnly.drawn), strconv.Itoa(frustumOnly.culled)})
	table.Append([]string{"frustum + occlusion",
		strconv.Itoa(composed.visited), strconv.Itoa(composed.drawn), strconv.Itoa(composed.culled)})
	table.Render()
}
