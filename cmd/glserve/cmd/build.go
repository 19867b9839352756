// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"cogentcore.org/webgl/web"
	"github.com/spf13/cobra"
)

func buildCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build app.wasm, wasm_exec.js and index.html into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return web.Build(app.Config)
		},
	}
}
