package cmd

import "github.com/urfave/cli"

// Display scene information.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := sceneFromContext(ctx)
	if err != nil {
		return err
	}
	sc.Build()

	logger.Noticef("scene information:\n%s", sc.Stats())
	return nil
}
