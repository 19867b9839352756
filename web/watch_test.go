// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"cogentcore.org/webgl/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "bin")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

	var rebuilds, reloads atomic.Int32
	var fail atomic.Bool
	w := &Watcher{
		Dirs:     []string{dir},
		Skip:     []string{out},
		Debounce: 200 * time.Millisecond,
		Rebuild: func() error {
			rebuilds.Add(1)
			if fail.Load() {
				return errors.New("build failed")
			}
			return nil
		},
		Reload: func() { reloads.Add(1) },
	}
	require.NoError(t, w.Start())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	write := func(name string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("package main\n"), 0o644))
	}
	write("main.go")
	write("main_test.go")
	require.Eventually(t, func() bool { return reloads.Load() == 1 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), rebuilds.Load(), "changes within the debounce time rebuild once")

	write("notes.txt")
	require.NoError(t, os.WriteFile(filepath.Join(out, "app.go"), nil, 0o644))
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, int32(1), rebuilds.Load(), "non-Go files and skipped directories are ignored")

	fail.Store(true)
	write("main.go")
	require.Eventually(t, func() bool { return rebuilds.Load() == 2 }, 5*time.Second, 10*time.Millisecond)
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, int32(1), reloads.Load(), "failed builds do not reload")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
