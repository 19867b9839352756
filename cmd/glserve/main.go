// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glserve builds the WebGL triangle app for the browser and
// serves it with live reloading.
package main

import (
	"os"

	"cogentcore.org/webgl/cmd/glserve/cmd"
)

func main() {
	if err := cmd.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
