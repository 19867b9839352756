// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the command definitions of the glserve tool.
package cmd

import (
	"cogentcore.org/webgl/base/logx"
	"cogentcore.org/webgl/config"
	"github.com/spf13/cobra"
)

// App has the state shared by the glserve commands.
type App struct {

	// Config is the effective configuration, set before a command runs.
	Config *config.Config

	// file is the config file to load.
	file string

	// overrides has the values given by flags, merged over the file.
	overrides config.Config

	vv, v, q bool
}

// NewRoot returns the root glserve command with all of its subcommands.
func NewRoot() *cobra.Command {
	app := &App{}
	root := &cobra.Command{
		Use:          "glserve",
		Short:        "Build and serve the WebGL triangle app",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&app.file, "config", "c", config.DefaultFile, "config file (TOML, or YAML for .yaml and .yml)")
	pf.BoolVar(&app.vv, "vv", false, "very verbose: show debug messages")
	pf.BoolVarP(&app.v, "verbose", "v", false, "verbose: show info messages")
	pf.BoolVarP(&app.q, "quiet", "q", false, "quiet: only show errors")
	pf.StringVar(&app.overrides.Canvas, "canvas", "", "id of the canvas element")
	pf.StringVar(&app.overrides.Color, "color", "", "initial triangle color, such as red, #00ff00 or \"0, 0, 1\"")
	pf.StringVarP(&app.overrides.Build.Output, "output", "o", "", "build output directory")
	pf.StringVar(&app.overrides.Build.Flags, "build-flags", "", "extra go build flags")

	root.AddCommand(buildCmd(app), serveCmd(app), configCmd(app), setupCmd())
	return root
}

// load sets up logging and the effective configuration. The default
// config file is optional; one named with -c must exist.
func (a *App) load(cmd *cobra.Command) error {
	logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)
	logx.SetDefaultLogger()

	cfg, err := config.Load(a.file, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if err := config.Merge(cfg, &a.overrides); err != nil {
		return err
	}
	if _, err := cfg.ParseColor(); err != nil {
		return err
	}
	a.Config = cfg
	return nil
}
