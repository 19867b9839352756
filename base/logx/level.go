// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures structured logging through [log/slog],
// with the verbosity chosen by the user on the command line.
package logx

import "log/slog"

// UserLevel is the verbosity [slog.Level] that the user has selected.
// Messages at or above it are shown. It is usually set from command line
// flags through [LevelFromFlags]; the default depends on the build tags
// (debug, release, or neither).
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] for the given verbosity flags:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are checked in that order, so vv wins over q.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
