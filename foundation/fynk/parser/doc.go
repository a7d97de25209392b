// File: doc.go
// Title: Fynk Parser Package Documentation
// Description: Package parser implements the Fynk lexer and recursive
//              descent parser.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial package documentation
// - 2026-10-19 v0.2.0: Fynk grammar

/*
Package parser turns Fynk source text into an AST in two single-pass stages.

Tokenize runs the lexer to completion and returns a token.Stream; Parse reads
that stream and returns an *ast.Program:

	stream, err := parser.Tokenize("main.fy", src, sink)
	if err != nil {
		return err
	}
	prog, err := parser.Parse(stream, parser.Options{Sink: sink})

# Grammar

	factor     := INT | FLOAT | STRING | BOOL | IDENTIFIER
	            | '(' expr ')' | incDecExpr
	term       := factor (('*'|'/') factor)*
	expr       := term (('+'|'-') term)*
	incDecExpr := ('++'|'--') IDENTIFIER | IDENTIFIER ('++'|'--')
	assignment := IDENTIFIER '=' expr
	equality   := expr '==' expr
	inequality := expr '!=' expr
	statement  := (inequality | equality | assignment | incDecExpr | expr) ';'
	program    := statement* EOF

With Options.InequalityOnly the top level accepts only inequality statements.

# Errors

The first lexical or syntax error is sent to the diagnostic sink and then
returned as an *mdwerror.Error with code CodeLexical or CodeSyntax. Its message
starts with "LexerError: " or "ParserError: " and its details carry file,
line, column and hint. No recovery is attempted. diag.FromError recovers the
diagnostic from the returned error.
*/
package parser
