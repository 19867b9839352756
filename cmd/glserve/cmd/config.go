// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"

	"cogentcore.org/webgl/config"
	"github.com/spf13/cobra"
)

func configCmd(app *App) *cobra.Command {
	var save string
	var yaml bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, or save it to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if save != "" {
				if err := config.Save(app.Config, save); err != nil {
					return err
				}
				slog.Info("saved config", "file", save)
				return nil
			}
			name := config.DefaultFile
			if yaml {
				name = "glserve.yaml"
			}
			b, err := config.Marshal(app.Config, name)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&save, "save", "s", "", "file to save the configuration to")
	cmd.Flags().BoolVar(&yaml, "yaml", false, "print as YAML instead of TOML")
	return cmd
}
