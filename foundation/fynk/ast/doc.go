// File: doc.go
// Title: Fynk AST Package Documentation
// Description: Package ast defines the closed set of Fynk syntax tree nodes,
//              their structural dump, and traversal helpers.
// Author: fynk authors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial node model, dump and visitor

/*
Package ast defines the abstract syntax tree produced by the Fynk parser.

The node set is closed: Node has an unexported marker method, so only the
variants declared here satisfy it. Nodes are built by their New* constructors
and are not modified afterwards. Program and BinaryExpression have no stored
position of their own; the constructors copy it from the first child.

# Dump

Dump converts a node to an ordered Map. The first entry is always "kind" with
the variant name, followed by one entry per field in declaration order. Nested
nodes recurse, node slices map element-wise, and operators appear by token
kind name:

	m := ast.Dump(prog)
	json.Marshal(m)   // {"kind":"Program","body":[...]}
	yaml.Marshal(m)   // same order as YAML
	m.ToGeneric()     // map[string]interface{} for reflect.DeepEqual

# Traversal

Walk and Inspect visit nodes depth-first in field order. Format renders an
indented tree for terminal output.
*/
package ast
