// File: nodes.go
// Title: Fynk AST Node Definitions
// Description: Defines the closed set of AST node variants and their
//              constructors. Composite nodes without a stored position take
//              it from their first child when constructed.
// Author: fynk authors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST node definitions

package ast

import (
	"github.com/fynk-lang/fynk/foundation/fynk/token"
)

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (0-based)
}

// Node is implemented by every AST variant and nothing else
type Node interface {
	// Pos returns the source position of the node
	Pos() Position

	node()
}

// Program is the root of every parse
type Program struct {
	Body []Node
	pos  Position
}

// IntegerLiteral is an INT literal
type IntegerLiteral struct {
	Value int64
	Position
}

// FloatLiteral is a FLOAT literal
type FloatLiteral struct {
	Value float64
	Position
}

// StringLiteral is a decoded STRING literal
type StringLiteral struct {
	Value string
	Position
}

// IdentifierLiteral is a reference to a name
type IdentifierLiteral struct {
	Name string
	Position
}

// KeywordLiteral is a reserved word
type KeywordLiteral struct {
	Keyword string
	Position
}

// BooleanLiteral is True or False
type BooleanLiteral struct {
	Value bool
	Position
}

// BinaryExpression is an arithmetic operation: left operator right
type BinaryExpression struct {
	Left     Node
	Operator token.Kind
	Right    Node
	pos      Position
}

// AssignmentExpression is target = value
type AssignmentExpression struct {
	Target *IdentifierLiteral
	Value  Node
	Position
}

// EqualityExpression is left == right
type EqualityExpression struct {
	Left  Node
	Right Node
	Position
}

// InequalityExpression is left != right
type InequalityExpression struct {
	Left  Node
	Right Node
	Position
}

// LogicalExpression is left & right or left | right
type LogicalExpression struct {
	Left     Node
	Operator token.Kind
	Right    Node
	Position
}

// IncrementExpression is ++target or target++
type IncrementExpression struct {
	Target *IdentifierLiteral
	Position
}

// DecrementExpression is --target or target--
type DecrementExpression struct {
	Target *IdentifierLiteral
	Position
}

// Delimiter is a punctuation token kept in the tree
type Delimiter struct {
	Value string
	Position
}

// NewProgram creates a program; its position is that of the first statement
func NewProgram(body []Node) *Program {
	if body == nil {
		body = []Node{}
	}
	p := &Program{Body: body}
	if len(body) > 0 {
		p.pos = body[0].Pos()
	}
	return p
}

// NewIntegerLiteral creates an integer literal
func NewIntegerLiteral(value int64, line, column int) *IntegerLiteral {
	return &IntegerLiteral{Value: value, Position: Position{line, column}}
}

// NewFloatLiteral creates a float literal
func NewFloatLiteral(value float64, line, column int) *FloatLiteral {
	return &FloatLiteral{Value: value, Position: Position{line, column}}
}

// NewStringLiteral creates a string literal
func NewStringLiteral(value string, line, column int) *StringLiteral {
	return &StringLiteral{Value: value, Position: Position{line, column}}
}

// NewIdentifierLiteral creates an identifier
func NewIdentifierLiteral(name string, line, column int) *IdentifierLiteral {
	return &IdentifierLiteral{Name: name, Position: Position{line, column}}
}

// NewKeywordLiteral creates a keyword
func NewKeywordLiteral(keyword string, line, column int) *KeywordLiteral {
	return &KeywordLiteral{Keyword: keyword, Position: Position{line, column}}
}

// NewBooleanLiteral creates a boolean literal
func NewBooleanLiteral(value bool, line, column int) *BooleanLiteral {
	return &BooleanLiteral{Value: value, Position: Position{line, column}}
}

// NewBinaryExpression creates a binary expression positioned at left
func NewBinaryExpression(left Node, operator token.Kind, right Node) *BinaryExpression {
	return &BinaryExpression{Left: left, Operator: operator, Right: right, pos: left.Pos()}
}

// NewAssignmentExpression creates an assignment positioned at its target
func NewAssignmentExpression(target *IdentifierLiteral, value Node) *AssignmentExpression {
	return &AssignmentExpression{Target: target, Value: value, Position: target.Position}
}

// NewEqualityExpression creates an equality test positioned at left
func NewEqualityExpression(left, right Node) *EqualityExpression {
	return &EqualityExpression{Left: left, Right: right, Position: left.Pos()}
}

// NewInequalityExpression creates an inequality test positioned at left
func NewInequalityExpression(left, right Node) *InequalityExpression {
	return &InequalityExpression{Left: left, Right: right, Position: left.Pos()}
}

// NewLogicalExpression creates a logical expression positioned at left
func NewLogicalExpression(left Node, operator token.Kind, right Node) *LogicalExpression {
	return &LogicalExpression{Left: left, Operator: operator, Right: right, Position: left.Pos()}
}

// NewIncrementExpression creates an increment positioned at its target
func NewIncrementExpression(target *IdentifierLiteral) *IncrementExpression {
	return &IncrementExpression{Target: target, Position: target.Position}
}

// NewDecrementExpression creates a decrement positioned at its target
func NewDecrementExpression(target *IdentifierLiteral) *DecrementExpression {
	return &DecrementExpression{Target: target, Position: target.Position}
}

// NewDelimiter creates a delimiter
func NewDelimiter(value string, line, column int) *Delimiter {
	return &Delimiter{Value: value, Position: Position{line, column}}
}

// Pos implements Node
func (p Position) Pos() Position { return p }

// Pos implements Node
func (n *Program) Pos() Position { return n.pos }

// Pos implements Node
func (n *BinaryExpression) Pos() Position { return n.pos }

func (*Program) node()              {}
func (*IntegerLiteral) node()       {}
func (*FloatLiteral) node()         {}
func (*StringLiteral) node()        {}
func (*IdentifierLiteral) node()    {}
func (*KeywordLiteral) node()       {}
func (*BooleanLiteral) node()       {}
func (*BinaryExpression) node()     {}
func (*AssignmentExpression) node() {}
func (*EqualityExpression) node()   {}
func (*InequalityExpression) node() {}
func (*LogicalExpression) node()    {}
func (*IncrementExpression) node()  {}
func (*DecrementExpression) node()  {}
func (*Delimiter) node()            {}
