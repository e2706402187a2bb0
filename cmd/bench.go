package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/maxplugins/InfoTexture/bench"
)

// Compare InfoTexture decoding against geometric ray intersection.
func RunBenchmark(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := sceneFromContext(ctx)
	if err != nil {
		return err
	}

	r, err := rendererFromContext(ctx, sc)
	if err != nil {
		return err
	}

	harness := bench.NewHarness(sc, r, ctx.Int("samples"), int64(ctx.Int("seed")))
	res, err := harness.Run()
	if err != nil {
		return err
	}

	displayBenchResult(res)
	return nil
}

func displayBenchResult(res *bench.Result) {
	perQuery := func(total time.Duration) string {
		return (total / time.Duration(res.NumPoints)).String()
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Strategy", "Queries", "Hits", "Total time", "Per query"})
	table.Append([]string{
		"InfoTexture decode",
		fmt.Sprintf("%d", res.NumPoints),
		fmt.Sprintf("%d", res.InfoTexHits),
		res.InfoTexTime.String(),
		perQuery(res.InfoTexTime),
	})
	table.Append([]string{
		"Ray intersection",
		fmt.Sprintf("%d", res.NumPoints),
		fmt.Sprintf("%d", res.RaycastHits),
		res.RaycastTime.String(),
		perQuery(res.RaycastTime),
	})
	table.SetFooter([]string{"", "", "", "Agreement", fmt.Sprintf("%d/%d", res.Agreement, res.NumPoints)})

	table.Render()
	logger.Noticef("benchmark results\n%s", buf.String())
}
