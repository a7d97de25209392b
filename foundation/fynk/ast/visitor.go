// File: visitor.go
// Title: Fynk AST Traversal
// Description: Depth-first traversal in field order and an indented tree
//              renderer for terminal output.
// Author: fynk authors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial visitor, walk and tree formatting

package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fynk-lang/fynk/foundation/fynk/token"
	mdwstringx "github.com/fynk-lang/fynk/foundation/utils/stringx"
)

// Visitor is called by Walk for each node. If Visit returns a non-nil
// visitor w, Walk visits the children of node with w, then calls
// w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Children returns the direct child nodes of n in field order
func Children(n Node) []Node {
	_, fields := fieldsOf(n)
	var children []Node
	for _, f := range fields {
		switch v := f.value.(type) {
		case Node:
			if v != nil {
				children = append(children, v)
			}
		case []Node:
			for _, c := range v {
				if c != nil {
					children = append(children, c)
				}
			}
		}
	}
	return children
}

// Walk traverses the tree rooted at node depth-first
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for every node in pre-order. If f returns false the
// children of that node are skipped. After the children f(nil) is called.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Count returns the number of nodes in the tree rooted at node
func Count(node Node) int {
	n := 0
	Inspect(node, func(x Node) bool {
		if x != nil {
			n++
		}
		return true
	})
	return n
}

// Format renders the tree rooted at node one node per line, indented two
// spaces per level, with field labels for nested nodes.
func Format(node Node) string {
	var b strings.Builder
	formatNode(&b, "", node, 0)
	return b.String()
}

func formatNode(b *strings.Builder, label string, node Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if label != "" {
		b.WriteString(label)
		b.WriteString(": ")
	}
	if node == nil {
		b.WriteString("<nil>\n")
		return
	}

	kind, fields := fieldsOf(node)
	b.WriteString(kind)

	var nested []field
	for _, f := range fields {
		switch v := f.value.(type) {
		case Node, []Node:
			nested = append(nested, f)
		case token.Kind:
			b.WriteString(" " + v.String())
		case string:
			if f.name == "value" {
				b.WriteString(` "` + mdwstringx.Escape(v) + `"`)
			} else {
				b.WriteString(" " + v)
			}
		case int64:
			b.WriteString(" " + strconv.FormatInt(v, 10))
		case float64:
			b.WriteString(" " + strconv.FormatFloat(v, 'g', -1, 64))
		case bool:
			if v {
				b.WriteString(" True")
			} else {
				b.WriteString(" False")
			}
		}
	}
	if _, isProgram := node.(*Program); !isProgram {
		pos := node.Pos()
		fmt.Fprintf(b, " @%d:%d", pos.Line, pos.Column)
	}
	b.WriteByte('\n')

	for _, f := range nested {
		switch v := f.value.(type) {
		case []Node:
			for _, c := range v {
				formatNode(b, "", c, depth+1)
			}
		case Node:
			formatNode(b, f.name, v, depth+1)
		}
	}
}
