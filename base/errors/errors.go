// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides the error helpers used throughout the module,
// along with the standard library error functions so that only one
// errors package needs to be imported.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// New, Is, As, Join and Unwrap are the standard library functions.
var (
	New    = errors.New
	Is     = errors.Is
	As     = errors.As
	Join   = errors.Join
	Unwrap = errors.Unwrap
)

// Log logs the given error if it is non-nil, along with the file and line
// of the caller, and returns it. The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 logs the given error if it is non-nil and returns the value
// unchanged. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must panics if the given error is non-nil. It is only for errors
// that indicate a programming mistake, such as a malformed embedded asset.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns the value if the error is nil and panics otherwise.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 drops the error and returns the value.
// Only use it where the error is known to be irrelevant.
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns the file and line of the code that called
// the function that called CallerInfo.
func CallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "<unknown caller>"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
