// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import "fmt"

// The enum values below are the WebGL / OpenGL ES 2 constants, so that
// backends can hand them to the driver unchanged.

// ShaderTypes are the shader stages.
type ShaderTypes int32

const (
	// FragmentShader computes the color of each fragment.
	FragmentShader ShaderTypes = 0x8B30

	// VertexShader computes the clip-space position of each vertex.
	VertexShader ShaderTypes = 0x8B31
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "VertexShader"
	case FragmentShader:
		return "FragmentShader"
	}
	return fmt.Sprintf("ShaderTypes(%#x)", int32(st))
}

// label is the lower case name used in error messages.
func (st ShaderTypes) label() string {
	switch st {
	case VertexShader:
		return "vertex shader"
	case FragmentShader:
		return "fragment shader"
	}
	return st.String()
}

// DrawModes are the primitive topologies for [Context.DrawArrays].
type DrawModes int32

const (
	Points DrawModes = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

func (dm DrawModes) String() string {
	switch dm {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LineLoop:
		return "LineLoop"
	case LineStrip:
		return "LineStrip"
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleFan:
		return "TriangleFan"
	}
	return fmt.Sprintf("DrawModes(%d)", int32(dm))
}

// BufferTargets are the buffer binding points.
type BufferTargets int32

const (
	// ArrayBuffer holds vertex attributes such as coordinates.
	ArrayBuffer BufferTargets = 0x8892

	// ElementArrayBuffer holds element indices.
	ElementArrayBuffer BufferTargets = 0x8893
)

func (bt BufferTargets) String() string {
	switch bt {
	case ArrayBuffer:
		return "ArrayBuffer"
	case ElementArrayBuffer:
		return "ElementArrayBuffer"
	}
	return fmt.Sprintf("BufferTargets(%#x)", int32(bt))
}

// BufferUsages are hints about how often buffer contents change.
type BufferUsages int32

const (
	// StreamDraw: contents set once and used a few times.
	StreamDraw BufferUsages = 0x88E0

	// StaticDraw: contents set once and used many times.
	StaticDraw BufferUsages = 0x88E4

	// DynamicDraw: contents changed often and used many times.
	DynamicDraw BufferUsages = 0x88E8
)

func (bu BufferUsages) String() string {
	switch bu {
	case StreamDraw:
		return "StreamDraw"
	case StaticDraw:
		return "StaticDraw"
	case DynamicDraw:
		return "DynamicDraw"
	}
	return fmt.Sprintf("BufferUsages(%#x)", int32(bu))
}

// Types are the component data types of vertex attributes.
type Types int32

const (
	Byte          Types = 0x1400
	UnsignedByte  Types = 0x1401
	Short         Types = 0x1402
	UnsignedShort Types = 0x1403
	Float         Types = 0x1406
)

func (tp Types) String() string {
	switch tp {
	case Byte:
		return "Byte"
	case UnsignedByte:
		return "UnsignedByte"
	case Short:
		return "Short"
	case UnsignedShort:
		return "UnsignedShort"
	case Float:
		return "Float"
	}
	return fmt.Sprintf("Types(%#x)", int32(tp))
}

// Bytes returns the size of one component of this type.
func (tp Types) Bytes() int {
	switch tp {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	case Float:
		return 4
	}
	return 0
}

// Parameter names queried by the backends.
const (
	CompileStatus = 0x8B81
	LinkStatus    = 0x8B82
)
