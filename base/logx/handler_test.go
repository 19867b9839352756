// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHandler(t *testing.T) {
	b := &bytes.Buffer{}
	l := slog.New(NewHandler(b, slog.LevelInfo))

	l.Debug("hidden")
	assert.Empty(t, b.String())

	l.Warn("linked program", "shaders", 2)
	out := b.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=\"linked program\"")
	assert.Contains(t, out, "shaders=2")
	assert.NotContains(t, out, "time=")
	// a buffer is not a terminal, so no escape codes
	assert.NotContains(t, out, "\x1b[")
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, "1", LevelColor(slog.LevelError))
	assert.Equal(t, "3", LevelColor(slog.LevelWarn))
	assert.Equal(t, "4", LevelColor(slog.LevelInfo))
	assert.Equal(t, "8", LevelColor(slog.LevelDebug))
}
