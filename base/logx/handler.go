// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// SetDefaultLogger installs a [NewHandler] writing to stderr at
// [UserLevel] as the default slog logger.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// NewHandler returns a text [slog.Handler] that writes to w, drops
// timestamps, and colors the level label when w is a color terminal.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				label := out.String(lvl.String()).Foreground(out.Color(LevelColor(lvl)))
				if lvl >= slog.LevelError {
					label = label.Bold()
				}
				a.Value = slog.StringValue(label.String())
			}
			return a
		},
	})
}

// LevelColor returns the ANSI color code used for the given level label.
func LevelColor(lvl slog.Level) string {
	switch {
	case lvl >= slog.LevelError:
		return "1" // red
	case lvl >= slog.LevelWarn:
		return "3" // yellow
	case lvl >= slog.LevelInfo:
		return "4" // blue
	default:
		return "8" // gray
	}
}
