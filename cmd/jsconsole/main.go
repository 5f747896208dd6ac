package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "jsconsole",
		Usage: "Run JavaScript with a standards-compliant console attached",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path (TOML or YAML)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Override the output format (text, json)",
			},
			&cli.StringFlag{
				Name:  "min-severity",
				Usage: "Drop console output below this severity (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "Color level tags",
			},
		},
		Commands: []*cli.Command{
			runCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
