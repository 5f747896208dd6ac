package main

import (
	"context"
	"os"

	"github.com/dop251/goja"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/multierr"

	"github.com/philipp01105/jsconsole/config"
	"github.com/philipp01105/jsconsole/gojaconsole"
	"github.com/philipp01105/jsconsole/logger"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Execute a script file",
		ArgsUsage: "<script.js>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "session",
				Usage: "Tag every console entry with a random session id",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return errors.New("missing script path")
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrap(err, "reading script")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runScript(path, string(src), cfg, cmd.Bool("session"))
		},
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if f := cmd.String("format"); f != "" {
		cfg.Format = f
	}
	if s := cmd.String("min-severity"); s != "" {
		cfg.MinSeverity = s
	}
	if cmd.Bool("color") {
		cfg.Color = true
	}
	return cfg, cfg.Validate()
}

func runScript(name, src string, cfg *config.Config, tagSession bool) (err error) {
	b, closeOutput, err := cfg.NewClientBuilder()
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Invoke(closeOutput))

	if tagSession {
		b = b.WithFields(logger.String("session", uuid.NewString()))
	}
	return execute(name, src, b.Build())
}

// execute runs src with a console printing through client, then closes the
// client. Close failures are reported alongside the script's own error.
func execute(name, src string, client *logger.Client) (err error) {
	defer multierr.AppendInvoke(&err, multierr.Close(client))

	vm := goja.New()
	c := gojaconsole.New(vm)
	c.SetClient(client)
	if err := gojaconsole.Bind(vm, c); err != nil {
		return err
	}

	if _, err := vm.RunScript(name, src); err != nil {
		var ex *goja.Exception
		if errors.As(err, &ex) {
			return errors.Errorf("uncaught exception: %s", ex.String())
		}
		return err
	}
	return nil
}
