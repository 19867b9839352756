// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import "fmt"

// Fallback messages for drivers that report a failure without a log.
const (
	UnknownShaderError = "Unknown error creating shader"
	UnknownLinkError   = "Unknown error linking program"
)

// CreationError is returned when a context, shader, program or buffer
// object could not be created. Err is the underlying cause, if known,
// such as a [*CompileError] for a shader that did not compile.
type CreationError struct {
	Object string
	Err    error
}

func (e *CreationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gl: unable to create %s: %v", e.Object, e.Err)
	}
	return "gl: unable to create " + e.Object
}

func (e *CreationError) Unwrap() error { return e.Err }

// CompileError is returned when the driver rejects shader source.
// Its message is the driver log, unchanged.
type CompileError struct {
	Type ShaderTypes
	Log  string
}

func (e *CompileError) Error() string { return e.Log }

// LinkError is returned when the driver cannot link a program.
// Its message is the driver log, unchanged.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string { return e.Log }

// UniformNotFoundError is returned when a linked program has no active
// uniform of the given name.
type UniformNotFoundError struct {
	Name string
}

func (e *UniformNotFoundError) Error() string {
	return fmt.Sprintf("gl: no uniform location %q", e.Name)
}

// AttribNotFoundError is returned when a linked program has no active
// attribute of the given name.
type AttribNotFoundError struct {
	Name string
}

func (e *AttribNotFoundError) Error() string {
	return fmt.Sprintf("gl: no attrib location %q", e.Name)
}

// CanvasNotFoundError is returned by a [Host] that has no surface with
// the requested id.
type CanvasNotFoundError struct {
	ID string
}

func (e *CanvasNotFoundError) Error() string {
	return fmt.Sprintf("gl: no <canvas> element with id %q", e.ID)
}
