package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/maxplugins/InfoTexture/infotex"
	"github.com/maxplugins/InfoTexture/renderer"
)

// Render the two info passes and write them out as png images.
func RenderPasses(ctx *cli.Context) error {
	setupLogging(ctx)

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
	displayFrameStats(renderer.FaceIndexPass, r.Stats())

	baryPass, err := r.RenderPass(renderer.BaryCoordPass)
	if err != nil {
		return err
	}
	displayFrameStats(renderer.BaryCoordPass, r.Stats())

	if err = writePass(ctx.String("face-out"), facePass); err != nil {
		return err
	}
	if err = writePass(ctx.String("bary-out"), baryPass); err != nil {
		return err
	}

	logger.Noticef("wrote %s and %s", ctx.String("face-out"), ctx.String("bary-out"))
	return nil
}

// Write the pass color channels to a png file. The auxiliary node channel is
// not representable in the image and is dropped.
func writePass(pathToFile string, pass *infotex.Pass) error {
	f, err := os.Create(pathToFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, pass.Image())
}

func displayFrameStats(mode renderer.PassMode, stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Block", "Start row", "Rows", "Render time"})
	for index, stat := range stats.Blocks {
		table.Append([]string{
			fmt.Sprintf("%d", index),
			fmt.Sprintf("%d", stat.BlockY),
			fmt.Sprintf("%d", stat.BlockH),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("%s pass statistics\n%s", mode, buf.String())
}
