package cmd

import (
	"github.com/urfave/cli"

	"github.com/maxplugins/InfoTexture/infotex"
	"github.com/maxplugins/InfoTexture/renderer"
)

// Decode a single screen point from freshly rendered info passes.
func Probe(ctx *cli.Context) error {
	setupLogging(ctx)

	pt, err := parsePoint(ctx.String("point"))
	if err != nil {
		return err
	}

	sc, err := sceneFromContext(ctx)
	if err != nil {
		return err
	}

	r, err := rendererFromContext(ctx, sc)
	if err != nil {
		return err
	}

	facePass, err := r.RenderPass(renderer.FaceIndexPass)
	if err != nil {
		return err
	}
	baryPass, err := r.RenderPass(renderer.BaryCoordPass)
	if err != nil {
		return err
	}

	hit, err := infotex.HitAt(pt, facePass, baryPass)
	if err != nil {
		return err
	}
	if hit == nil {
		logger.Noticef("no geometry visible at (%.3f, %.3f)", pt[0], pt[1])
		return nil
	}

	logger.Noticef(
		"hit at (%.3f, %.3f): node %d, face %d, bary (%.3f, %.3f, %.3f)",
		pt[0], pt[1], hit.Node, hit.FaceIndex, hit.Bary[0], hit.Bary[1], hit.Bary[2],
	)
	return nil
}
