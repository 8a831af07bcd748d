// Package cssgen builds deterministic CSS text.
//
// Writer handles indentation and block structure; StateEmitter compiles a
// declarative per-state property map into one rule per interaction state.
// Both the global stylesheet and the animation stylesheet are built on it.
package cssgen

import (
	"strings"
)

const indentUnit = "  "

// Decl is a single CSS declaration.
type Decl struct {
	Prop  string
	Value string
}

// Writer accumulates CSS text. The zero value is ready to use.
type Writer struct {
	b     strings.Builder
	depth int
}

// Banner writes a multi-line comment at the top level.
func (w *Writer) Banner(lines ...string) {
	w.line("/*")
	for _, l := range lines {
		if l == "" {
			w.line(" *")
			continue
		}
		w.line(" * " + l)
	}
	w.line(" */")
	w.b.WriteString("\n")
}

// Comment writes a single-line comment at the current depth.
func (w *Writer) Comment(text string) {
	w.line("/* " + text + " */")
}

// Open starts a block for selector (or an at-rule such as "@theme inline").
func (w *Writer) Open(selector string) {
	w.line(selector + " {")
	w.depth++
}

// Close ends the innermost block. Top-level blocks are followed by a blank line.
func (w *Writer) Close() {
	if w.depth == 0 {
		return
	}
	w.depth--
	w.line("}")
	if w.depth == 0 {
		w.b.WriteString("\n")
	}
}

// Decl writes "prop: value;".
func (w *Writer) Decl(prop, value string) {
	w.line(prop + ": " + value + ";")
}

// Important writes "prop: value !important;".
func (w *Writer) Important(prop, value string) {
	w.line(prop + ": " + value + " !important;")
}

// Var writes a custom property declaration "--name: value;".
func (w *Writer) Var(name, value string) {
	w.Decl("--"+name, value)
}

// Blank writes an empty line.
func (w *Writer) Blank() {
	w.b.WriteString("\n")
}

// Raw writes text verbatim, one indented line per input line.
// Blank input lines are preserved without indentation.
func (w *Writer) Raw(text string) {
	text = strings.Trim(text, "\n")
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			w.b.WriteString("\n")
			continue
		}
		w.line(l)
	}
}

// Block writes a complete rule. Nothing is written when decls is empty.
func (w *Writer) Block(selector string, decls []Decl, important bool) {
	if len(decls) == 0 {
		return
	}
	w.Open(selector)
	for _, d := range decls {
		if important {
			w.Important(d.Prop, d.Value)
		} else {
			w.Decl(d.Prop, d.Value)
		}
	}
	w.Close()
}

// String returns the accumulated CSS with exactly one trailing newline.
func (w *Writer) String() string {
	out := strings.TrimRight(w.b.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func (w *Writer) line(s string) {
	w.b.WriteString(strings.Repeat(indentUnit, w.depth))
	w.b.WriteString(s)
	w.b.WriteString("\n")
}
