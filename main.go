package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/maxplugins/InfoTexture/cmd"
)

func frameFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 512,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 512,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "number of render workers; defaults to the cpu count",
		},
		cli.Float64Flag{
			Name:  "fov",
			Value: 60.0,
			Usage: "camera field of view in degrees (scenes without a camera)",
		},
	}
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "infotexture"
	app.Usage = "compare image-based (InfoTexture) and geometric hit testing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "bench",
			Usage: "benchmark InfoTexture decoding against ray intersection",
			Description: `
Render a face-index and a barycentric info pass for the scene, sample a set
of screen points and time how long it takes to resolve every point via (a)
decoding the two passes and (b) intersecting a camera ray with the scene
geometry. Without a scene file argument a procedural demo scene is used.`,
			ArgsUsage: "[scene_file.glb]",
			Flags: append(frameFlags(),
				cli.IntFlag{
					Name:  "samples",
					Value: 500,
					Usage: "number of sampled screen points",
				},
				cli.IntFlag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for the screen point sampler",
				},
			),
			Action: cmd.RunBenchmark,
		},
		{
			Name:      "render",
			Usage:     "render the two info passes to png files",
			ArgsUsage: "[scene_file.glb]",
			Flags: append(frameFlags(),
				cli.StringFlag{
					Name:  "face-out",
					Value: "face.png",
					Usage: "image filename for the face-index pass",
				},
				cli.StringFlag{
					Name:  "bary-out",
					Value: "bary.png",
					Usage: "image filename for the barycentric pass",
				},
			),
			Action: cmd.RenderPasses,
		},
		{
			Name:      "probe",
			Usage:     "decode a single screen point",
			ArgsUsage: "[scene_file.glb]",
			Flags: append(frameFlags(),
				cli.StringFlag{
					Name:  "point",
					Value: "0.5,0.5",
					Usage: "normalized screen point to decode",
				},
			),
			Action: cmd.Probe,
		},
		{
			Name:      "info",
			Usage:     "display scene information",
			ArgsUsage: "[scene_file.glb]",
			Flags: []cli.Flag{
				cli.Float64Flag{
					Name:  "fov",
					Value: 60.0,
					Usage: "camera field of view in degrees (scenes without a camera)",
				},
			},
			Action: cmd.ShowSceneInfo,
		},
	}

	app.Run(os.Args)
}
