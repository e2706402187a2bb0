package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/maxplugins/InfoTexture/renderer"
	"github.com/maxplugins/InfoTexture/scene"
	"github.com/maxplugins/InfoTexture/scene/reader"
	"github.com/maxplugins/InfoTexture/types"
)

// Procedural demo scene parameters.
const (
	demoTerrainCells     = 96
	demoTerrainCellSize  = 1.0
	demoTerrainAmplitude = 6.0
	demoSeed             = 1337
)

// Load the scene given as a command line argument or build the procedural
// demo scene when no argument is present. Scenes without a camera get one
// framed on the scene bounds.
func sceneFromContext(ctx *cli.Context) (*scene.Scene, error) {
	var sc *scene.Scene
	var err error

	if ctx.NArg() > 0 {
		sc, err = reader.ReadScene(ctx.Args().First())
		if err != nil {
			return nil, err
		}
	} else {
		logger.Notice("no scene file argument; using procedural demo scene")
		sc, err = demoScene()
		if err != nil {
			return nil, err
		}
	}

	if sc.Camera == nil {
		sc.SetCamera(frameCamera(sc, float32(ctx.Float64("fov"))))
	}
	return sc, nil
}

// Build the demo scene: an opensimplex terrain plus a few box nodes.
func demoScene() (*scene.Scene, error) {
	sc := scene.NewScene()

	terrain := scene.NewTerrain("terrain", demoTerrainCells, demoTerrainCellSize, demoTerrainAmplitude, demoSeed)
	if _, err := sc.AddNode("terrain", terrain, types.Ident4()); err != nil {
		return nil, err
	}

	crate := scene.NewBox("crate", types.Vec3{}, types.Vec3{6, 6, 6})
	for i, pos := range []types.Vec3{
		{-14, 8, -10},
		{2, 10, 6},
		{18, 7, -4},
	} {
		if _, err := sc.AddNode(fmt.Sprintf("crate-%d", i+1), crate, types.Translate4(pos)); err != nil {
			return nil, err
		}
	}

	return sc, nil
}

// Place a camera above the scene bounds looking at their center so the whole
// scene is in frame.
func frameCamera(sc *scene.Scene, fov float32) *scene.Camera {
	bbox := [2]types.Vec3{
		{1e30, 1e30, 1e30},
		{-1e30, -1e30, -1e30},
	}
	for _, node := range sc.Nodes {
		nodeBBox := node.Mesh.BBox()
		bbox[0] = types.MinVec3(bbox[0], nodeBBox[0])
		bbox[1] = types.MaxVec3(bbox[1], nodeBBox[1])
	}

	center := bbox[0].Add(bbox[1]).Mul(0.5)
	radius := bbox[1].Sub(bbox[0]).Len() * 0.5
	if radius == 0 {
		radius = 1
	}

	camera := scene.NewCamera(fov)
	camera.Position = center.Add(types.Vec3{0, radius * 0.8, radius * 1.6})
	camera.LookAt = center
	return camera
}

// Create a renderer from the shared frame flags.
func rendererFromContext(ctx *cli.Context, sc *scene.Scene) (renderer.Renderer, error) {
	return renderer.NewDefault(sc, renderer.Options{
		FrameW:     uint32(ctx.Int("width")),
		FrameH:     uint32(ctx.Int("height")),
		NumWorkers: ctx.Int("workers"),
	})
}

// Parse an "x,y" normalized screen point.
func parsePoint(raw string) (types.Vec2, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return types.Vec2{}, fmt.Errorf("point %q is not in x,y form", raw)
	}

	var pt types.Vec2
	for i, part := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return types.Vec2{}, fmt.Errorf("point %q is not in x,y form", raw)
		}
		if val < 0 || val > 1 {
			return types.Vec2{}, fmt.Errorf("point coordinate %g outside the [0,1] range", val)
		}
		pt[i] = float32(val)
	}
	return pt, nil
}
