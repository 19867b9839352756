// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/webgl/web"
	"github.com/spf13/cobra"
)

func serveCmd(app *App) *cobra.Command {
	var addr string
	var watch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the app and serve it, rebuilding and reloading on changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.Config
			if addr != "" {
				c.Serve.Addr = addr
			}
			if cmd.Flags().Changed("watch") {
				c.Serve.Watch = watch
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return web.Serve(ctx, c)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "address to listen on")
	cmd.Flags().BoolVarP(&watch, "watch", "w", true, "rebuild and reload when .go files change")
	return cmd
}
