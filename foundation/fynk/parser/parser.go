// File: parser.go
// Title: Fynk Recursive Descent Parser
// Description: Builds the AST from a token stream. Arithmetic precedence is
//              encoded by the term/expr split and each level folds its
//              operators left-associatively. The first syntax error is
//              reported to the diagnostic sink and ends the parse.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-19 v0.2.0: Fynk statement grammar and sink reporting

package parser

import (
	"fmt"

	mdwlog "github.com/fynk-lang/fynk/foundation/core/log"
	mdwast "github.com/fynk-lang/fynk/foundation/fynk/ast"
	"github.com/fynk-lang/fynk/foundation/fynk/diag"
	"github.com/fynk-lang/fynk/foundation/fynk/token"
)

// DefaultMaxDepth bounds expression nesting
const DefaultMaxDepth = 10000

var (
	termOperators = []token.Kind{token.MULTIPLY, token.DIVIDE}
	exprOperators = []token.Kind{token.PLUS, token.MINUS}
)

// Options configures parser behavior
type Options struct {
	// Sink receives the diagnostic of a failed parse; nil discards it
	Sink diag.Sink

	// InequalityOnly restricts the top level to `expr != expr ;` statements
	InequalityOnly bool

	// MaxDepth bounds nested factors; 0 means DefaultMaxDepth
	MaxDepth int

	Logger *mdwlog.Logger
}

// Parser implements recursive descent parsing for Fynk. A Parser is used for
// a single stream and is not safe for concurrent use.
type Parser struct {
	tokens  *token.Stream
	sink    diag.Sink
	logger  *mdwlog.Logger
	options Options
	depth   int
}

// New creates a parser reading from tokens
func New(tokens *token.Stream, opts Options) *Parser {
	if opts.Sink == nil {
		opts.Sink = diag.Discard
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return &Parser{
		tokens:  tokens,
		sink:    opts.Sink,
		logger:  opts.Logger.WithField("component", "fynk-parser"),
		options: opts,
	}
}

// Parse parses a complete program from tokens
func Parse(tokens *token.Stream, opts Options) (*mdwast.Program, error) {
	return New(tokens, opts).ParseProgram()
}

// ParseSource tokenizes and parses src
func ParseSource(file, src string, opts Options) (*mdwast.Program, error) {
	tokens, err := Tokenize(file, src, opts.Sink)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, opts)
}

// ParseProgram parses statements until EOF
func (p *Parser) ParseProgram() (*mdwast.Program, error) {
	p.logger.Debug("Starting Fynk parsing", mdwlog.Fields{
		"file":            p.tokens.FilePath(),
		"tokens":          p.tokens.Len(),
		"inequality_only": p.options.InequalityOnly,
	})

	statement := p.statement
	if p.options.InequalityOnly {
		statement = p.inequalityStatement
	}

	body := []mdwast.Node{}
	for p.current().Kind != token.EOF {
		stmt, err := statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}

	p.logger.Debug("Fynk parsing completed successfully", mdwlog.Fields{
		"file":       p.tokens.FilePath(),
		"statements": len(body),
	})

	return mdwast.NewProgram(body), nil
}

// statement := (inequality | equality | assignment | incDecExpr | expr) ';'
func (p *Parser) statement() (mdwast.Node, error) {
	var (
		node mdwast.Node
		err  error
	)

	if p.current().Kind == token.IDENTIFIER && p.tokens.Peek(1).Kind == token.ASSIGN {
		node, err = p.assignment()
	} else {
		node, err = p.comparison()
	}
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.SEMICOLON); err != nil {
		return nil, err
	}
	return node, nil
}

// inequalityStatement := expr '!=' expr ';'
func (p *Parser) inequalityStatement() (mdwast.Node, error) {
	left, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.NOT_EQUAL); err != nil {
		return nil, err
	}
	right, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON); err != nil {
		return nil, err
	}
	return mdwast.NewInequalityExpression(left, right), nil
}

// comparison parses expr optionally followed by '==' expr or '!=' expr
func (p *Parser) comparison() (mdwast.Node, error) {
	left, err := p.expr()
	if err != nil {
		return nil, err
	}

	kind := p.current().Kind
	if kind != token.EQUAL && kind != token.NOT_EQUAL {
		return left, nil
	}
	if _, err := p.consume(kind); err != nil {
		return nil, err
	}

	right, err := p.expr()
	if err != nil {
		return nil, err
	}

	if kind == token.EQUAL {
		return mdwast.NewEqualityExpression(left, right), nil
	}
	return mdwast.NewInequalityExpression(left, right), nil
}

// assignment := IDENTIFIER '=' expr
func (p *Parser) assignment() (mdwast.Node, error) {
	name, err := p.consume(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.ASSIGN); err != nil {
		return nil, err
	}

	value, err := p.expr()
	if err != nil {
		return nil, err
	}

	target := mdwast.NewIdentifierLiteral(name.Text(), name.Line, name.Column)
	return mdwast.NewAssignmentExpression(target, value), nil
}

// expr := term (('+'|'-') term)*
func (p *Parser) expr() (mdwast.Node, error) {
	return p.foldLeft(p.term, exprOperators)
}

// term := factor (('*'|'/') factor)*
func (p *Parser) term() (mdwast.Node, error) {
	return p.foldLeft(p.factor, termOperators)
}

// foldLeft parses operand (op operand)* into a left-leaning BinaryExpression chain
func (p *Parser) foldLeft(operand func() (mdwast.Node, error), ops []token.Kind) (mdwast.Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for isOneOf(p.current().Kind, ops) {
		op, err := p.consume(p.current().Kind)
		if err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = mdwast.NewBinaryExpression(left, op.Kind, right)
	}

	return left, nil
}

// factor := INT | FLOAT | STRING | BOOL | IDENTIFIER | '(' expr ')' | incDecExpr
func (p *Parser) factor() (mdwast.Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.options.MaxDepth {
		return nil, p.fail(fmt.Sprintf("Expression nested deeper than %d levels", p.options.MaxDepth))
	}

	tok := p.current()
	switch tok.Kind {
	case token.INCREMENT, token.DECREMENT:
		return p.incDec()

	case token.IDENTIFIER:
		if next := p.tokens.Peek(1).Kind; next == token.INCREMENT || next == token.DECREMENT {
			return p.incDec()
		}
		fallthrough

	case token.INT, token.FLOAT, token.STRING, token.BOOL:
		if _, err := p.consume(tok.Kind); err != nil {
			return nil, err
		}
		return literal(tok), nil

	case token.LEFT_PAREN:
		if _, err := p.consume(token.LEFT_PAREN); err != nil {
			return nil, err
		}
		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return node, nil
	}

	return nil, p.fail(fmt.Sprintf("Expected <INT | FLOAT | STRING | BOOL | IDENTIFIER> but got %s", tok))
}

// literal builds the leaf node for a consumed literal or identifier token
func literal(tok token.Token) mdwast.Node {
	switch tok.Kind {
	case token.INT:
		return mdwast.NewIntegerLiteral(tok.Int(), tok.Line, tok.Column)
	case token.FLOAT:
		return mdwast.NewFloatLiteral(tok.Float(), tok.Line, tok.Column)
	case token.STRING:
		return mdwast.NewStringLiteral(tok.Text(), tok.Line, tok.Column)
	case token.BOOL:
		return mdwast.NewBooleanLiteral(tok.Bool(), tok.Line, tok.Column)
	default:
		return mdwast.NewIdentifierLiteral(tok.Text(), tok.Line, tok.Column)
	}
}

// incDec := ('++'|'--') IDENTIFIER | IDENTIFIER ('++'|'--')
// Prefix and postfix forms build the same node.
func (p *Parser) incDec() (mdwast.Node, error) {
	var (
		op   token.Token
		name token.Token
		err  error
	)

	if kind := p.current().Kind; kind == token.INCREMENT || kind == token.DECREMENT {
		if op, err = p.consume(kind); err != nil {
			return nil, err
		}
		if name, err = p.consume(token.IDENTIFIER); err != nil {
			return nil, err
		}
	} else {
		if name, err = p.consume(token.IDENTIFIER); err != nil {
			return nil, err
		}
		if op, err = p.consume(p.current().Kind); err != nil {
			return nil, err
		}
	}

	target := mdwast.NewIdentifierLiteral(name.Text(), name.Line, name.Column)
	if op.Kind == token.INCREMENT {
		return mdwast.NewIncrementExpression(target), nil
	}
	return mdwast.NewDecrementExpression(target), nil
}

// consume advances past the current token if it has the expected kind
func (p *Parser) consume(expected token.Kind) (token.Token, error) {
	tok := p.current()
	if tok.Kind != expected {
		return token.Token{}, p.fail(fmt.Sprintf("Expected %s but got %s", expected, tok))
	}
	p.tokens.Advance()
	return tok, nil
}

func (p *Parser) current() token.Token {
	return p.tokens.Current()
}

// fail reports a syntax diagnostic at the current token and returns it as an error
func (p *Parser) fail(message string) error {
	tok := p.current()
	d := diag.Diagnostic{
		File:    p.tokens.FilePath(),
		Line:    tok.Line,
		Column:  tok.Column,
		Message: diag.ParserPrefix + message,
	}
	p.sink.Report(d)
	p.logger.Debug("Fynk parsing failed", mdwlog.Fields{
		"file":  d.File,
		"line":  d.Line,
		"error": d.Message,
	})
	return d.Err()
}

func isOneOf(kind token.Kind, kinds []token.Kind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
