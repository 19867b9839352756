// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/webgl/gl"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// SyntaxError is a shader compile error, formatted the way browser
// drivers report them in the shader info log.
type SyntaxError struct {
	Line  int
	Token string
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("ERROR: 0:%d: '%s' : %s\n", e.Line, e.Token, e.Msg)
}

// Decl is a global variable declaration in a shader.
type Decl struct {
	Qualifier string // attribute, uniform, varying, const, or ""
	Precision string
	Type      string
	Name      string
	Line      int
}

// Unit is a parsed GLSL ES 1.00 shader. Only the parts needed to check
// and link shaders are kept: global declarations and which names the
// function bodies refer to.
type Unit struct {
	Type  gl.ShaderTypes
	Decls []Decl

	// Used has the identifiers referenced in function bodies.
	Used map[string]bool

	// FloatPrecision is the default float precision, if declared.
	FloatPrecision string

	HasMain bool
}

// Decl returns the global declaration of the given name.
func (u *Unit) Decl(name string) (Decl, bool) {
	for _, d := range u.Decls {
		if d.Name == name {
			return d, true
		}
	}
	return Decl{}, false
}

// Active returns the declarations with the given qualifier that are
// used by the shader code, in declaration order.
func (u *Unit) Active(qualifier string) []Decl {
	var ds []Decl
	for _, d := range u.Decls {
		if d.Qualifier == qualifier && u.Used[d.Name] {
			ds = append(ds, d)
		}
	}
	return ds
}

var (
	storageQualifiers   = set("attribute", "uniform", "varying", "const")
	precisionQualifiers = set("lowp", "mediump", "highp")
	typeNames           = set("void", "bool", "int", "float",
		"vec2", "vec3", "vec4", "bvec2", "bvec3", "bvec4", "ivec2", "ivec3", "ivec4",
		"mat2", "mat3", "mat4", "sampler2D", "samplerCube")
	floatTypes = set("float", "vec2", "vec3", "vec4", "mat2", "mat3", "mat4")
	keywords   = set("if", "else", "for", "while", "do", "return", "break", "continue",
		"discard", "struct", "true", "false", "in", "out", "inout", "invariant", "precision")
)

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Parse checks the shader source and returns its [Unit], or a
// [*SyntaxError] describing the first problem found.
func Parse(typ gl.ShaderTypes, src string) (*Unit, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, unit: &Unit{Type: typ, Used: map[string]bool{}}}
	for !p.eof() {
		if err := p.external(); err != nil {
			return nil, err
		}
	}
	if !p.unit.HasMain {
		return nil, &SyntaxError{Line: p.peek().line, Msg: "Missing main()"}
	}
	if typ == gl.FragmentShader && p.floatUse != nil {
		return nil, &SyntaxError{Line: p.floatUse.line, Msg: "No precision specified for (float)"}
	}
	return p.unit, nil
}

type token struct {
	text string
	line int
}

// tokenize splits the source into tokens. GLSL shares its lexical
// structure with JavaScript closely enough for the js lexer, once
// preprocessor lines are blanked and the character set is checked.
func tokenize(src string) ([]token, error) {
	src = stripDirectives(src)
	line := 1
	for _, c := range src {
		if c == '\n' {
			line++
		}
		if !validChar(c) {
			return nil, &SyntaxError{Line: line, Token: string(c), Msg: "invalid character"}
		}
	}

	lx := js.NewLexer(parse.NewInputString(src))
	var toks []token
	line = 1
	for {
		tt, data := lx.Next()
		switch tt {
		case js.ErrorToken:
			if lx.Err() == io.EOF {
				return toks, nil
			}
			return nil, &SyntaxError{Line: line, Token: string(data), Msg: "syntax error"}
		case js.WhitespaceToken, js.LineTerminatorToken, js.CommentToken, js.CommentLineTerminatorToken:
		default:
			toks = append(toks, token{text: string(data), line: line})
		}
		line += bytes.Count(data, []byte{'\n'})
	}
}

// stripDirectives blanks preprocessor lines, keeping line numbers.
func stripDirectives(src string) string {
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "#") {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}

func validChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		return true
	case c == ' ', c == '\t', c == '\n', c == '\r', c == '\v', c == '\f':
		return true
	}
	return strings.ContainsRune(".+-/*%<>[](){}^|&~=!:;,?#", c)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		alpha := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
		if !alpha && (i == 0 || c < '0' || c > '9') {
			return false
		}
	}
	return true
}

type parser struct {
	toks []token
	pos  int
	unit *Unit

	// floatUse is the first float typed declaration made while no
	// default float precision was in effect.
	floatUse *token
}

func (p *parser) eof() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() token {
	if p.eof() {
		line := 1
		if n := len(p.toks); n > 0 {
			line = p.toks[n-1].line
		}
		return token{line: line}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	if !p.eof() {
		p.pos++
	}
	return t
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &SyntaxError{Line: t.line, Token: t.text, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(text string) error {
	if t := p.next(); t.text != text {
		return p.errorf(t, "syntax error")
	}
	return nil
}

func (p *parser) noteType(t token, precision string) {
	if precision == "" && p.unit.FloatPrecision == "" && floatTypes[t.text] && p.floatUse == nil {
		p.floatUse = &t
	}
}

// external parses one global declaration or function definition.
func (p *parser) external() error {
	t := p.next()
	if t.text == "precision" {
		q := p.next()
		if !precisionQualifiers[q.text] {
			return p.errorf(q, "syntax error")
		}
		ty := p.next()
		if !typeNames[ty.text] {
			return p.errorf(ty, "syntax error")
		}
		if err := p.expect(";"); err != nil {
			return err
		}
		if ty.text == "float" {
			p.unit.FloatPrecision = q.text
		}
		return nil
	}

	d := Decl{Line: t.line}
	if storageQualifiers[t.text] {
		d.Qualifier = t.text
		t = p.next()
	}
	if precisionQualifiers[t.text] {
		d.Precision = t.text
		t = p.next()
	}
	if !typeNames[t.text] {
		return p.errorf(t, "syntax error")
	}
	d.Type = t.text
	p.noteType(t, d.Precision)

	name := p.next()
	if !isIdent(name.text) || typeNames[name.text] || keywords[name.text] || storageQualifiers[name.text] {
		return p.errorf(name, "syntax error")
	}
	d.Name = name.text

	if p.peek().text == "(" {
		if d.Qualifier != "" {
			return p.errorf(name, "syntax error")
		}
		return p.function(d)
	}
	if p.peek().text == "[" {
		p.next()
		if n := p.next(); n.text == "" || n.text[0] < '0' || n.text[0] > '9' {
			return p.errorf(n, "syntax error")
		}
		if err := p.expect("]"); err != nil {
			return err
		}
	}
	if d.Qualifier == "const" && p.peek().text == "=" {
		for !p.eof() && p.peek().text != ";" {
			p.next()
		}
	}
	if err := p.expect(";"); err != nil {
		return err
	}

	switch {
	case d.Type == "void":
		return p.errorf(name, "illegal use of type 'void'")
	case d.Qualifier == "attribute" && p.unit.Type != gl.VertexShader:
		return &SyntaxError{Line: d.Line, Token: "attribute", Msg: "supported in vertex shaders only"}
	case d.Qualifier == "attribute" && !floatTypes[d.Type]:
		return &SyntaxError{Line: d.Line, Token: "attribute", Msg: "cannot be bool or int"}
	case d.Qualifier == "varying" && !floatTypes[d.Type]:
		return &SyntaxError{Line: d.Line, Token: "varying", Msg: "cannot be bool or int"}
	}
	if _, dup := p.unit.Decl(d.Name); dup {
		return p.errorf(name, "redefinition")
	}
	p.unit.Decls = append(p.unit.Decls, d)
	return nil
}

// function parses a function prototype or definition, starting at the
// opening parenthesis of its parameter list.
func (p *parser) function(d Decl) error {
	p.next()
	for depth := 1; depth > 0; {
		if p.eof() {
			return p.errorf(p.peek(), "syntax error")
		}
		t := p.next()
		switch t.text {
		case "(":
			depth++
		case ")":
			depth--
		default:
			p.noteType(t, "")
		}
	}
	if p.peek().text == ";" {
		p.next()
		return nil
	}
	if err := p.expect("{"); err != nil {
		return err
	}
	if err := p.body(); err != nil {
		return err
	}
	if d.Name == "main" {
		if d.Type != "void" {
			return &SyntaxError{Line: d.Line, Token: "main", Msg: "main function cannot return a value"}
		}
		p.unit.HasMain = true
	}
	return nil
}

// body consumes a function body after its opening brace. Every
// statement must be terminated before a closing brace.
func (p *parser) body() error {
	depth, parens := 1, 0
	prev := "{"
	for {
		if p.eof() {
			return p.errorf(p.peek(), "syntax error")
		}
		t := p.next()
		switch t.text {
		case "(":
			parens++
		case ")":
			parens--
			if parens < 0 {
				return p.errorf(t, "syntax error")
			}
		case "{":
			depth++
		case "}":
			if parens != 0 || (prev != ";" && prev != "{" && prev != "}") {
				return p.errorf(t, "syntax error")
			}
			depth--
			if depth == 0 {
				return nil
			}
		default:
			if typeNames[t.text] {
				precision := ""
				if precisionQualifiers[prev] {
					precision = prev
				}
				p.noteType(t, precision)
			} else if isIdent(t.text) && !keywords[t.text] {
				p.unit.Used[t.text] = true
			}
		}
		prev = t.text
	}
}
