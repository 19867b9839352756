// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "wasm_exec.js")
	require.NoError(t, os.WriteFile(src, []byte("class Go {}"), 0o644))

	dst := filepath.Join(dir, "out", "web", "wasm_exec.js")
	require.NoError(t, CopyFile(dst, src, 0o644))
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "class Go {}", string(b))

	ok, err := FileExists(dst)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(filepath.Join(dir, "out"))
	assert.NoError(t, err)
	assert.False(t, ok, "directories are not files")

	ok, err = FileExistsFS(os.DirFS(dir), "out/web/wasm_exec.js")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExistsFS(os.DirFS(dir), "app.wasm")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.Error(t, CopyFile(dst, filepath.Join(dir, "missing.js"), 0o644))
}
