// Package main provides the CLI entry point for orbsmith.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/orbsmith/pkg/adapters/filesink"
	"github.com/user/orbsmith/pkg/adapters/ggrenderer"
	"github.com/user/orbsmith/pkg/adapters/logger"
	"github.com/user/orbsmith/pkg/adapters/nullsink"
	"github.com/user/orbsmith/pkg/adapters/osfilesystem"
	"github.com/user/orbsmith/pkg/config"
	"github.com/user/orbsmith/pkg/ports"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "orbsmith",
		Usage:       l10n.T("Build health orb sprites from arbitrary images"),
		Description: l10n.T("orbsmith crops, rings and damages images into 64x64 health orb sprites."),
		Version:     version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "log-level",
				Value:    "info",
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "debug",
				Usage:    l10n.T("Save intermediate images and the build recipe"),
				Category: l10n.T("Debug"),
			},
			&cli.StringFlag{
				Name:     "debug-dir",
				Value:    "./debug",
				Usage:    l10n.T("Directory for debug output"),
				Category: l10n.T("Debug"),
			},
		},
		Commands: []*cli.Command{
			buildCommand(),
			cropCommand(),
			ringCommand(),
			brokenCommand(),
			paintCommand(),
			maskCommand(),
			presetsCommand(),
			sheetCommand(),
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Println(l10n.F("orbsmith version %s", version))
					return nil
				},
			},
		},
	}
}

// runtimeEnv holds the adapters shared by every command.
type runtimeEnv struct {
	log      ports.Logger
	fs       *osfilesystem.FileSystem
	renderer *ggrenderer.Renderer
	sink     ports.DebugSink
}

// newRuntimeEnv builds the adapters from the global flags. Logging and debug
// settings of recipe apply where the matching flag was not given.
func newRuntimeEnv(c *cli.Context, recipe *config.Config) (*runtimeEnv, error) {
	level := c.String("log-level")
	debug := c.Bool("debug")
	dir := c.String("debug-dir")
	if recipe != nil {
		if !c.IsSet("log-level") && recipe.LogLevel != "" {
			level = recipe.LogLevel
		}
		if !c.IsSet("debug-dir") && recipe.DebugDir != "" {
			dir = recipe.DebugDir
		}
		debug = debug || recipe.Debug
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		lvl, err := ports.ParseLogLevel(level)
		if err != nil {
			return nil, cli.Exit(err.Error(), 2)
		}
		log = logger.NewConsole(lvl)
	}

	env := &runtimeEnv{
		log:      log,
		fs:       osfilesystem.New(),
		renderer: ggrenderer.New(),
	}

	if debug {
		if err := env.fs.MkdirAll(dir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		env.sink = filesink.New(dir, env.fs, env.renderer)
	} else {
		env.sink = nullsink.New()
	}
	return env, nil
}
