// ============================================================================
// fynk - Fynk language front end
// ============================================================================
//
// Package:     render
// Description: Token tables and AST encodings (json, yaml, tree)
// Author:      fynk authors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	mdwast "github.com/fynk-lang/fynk/foundation/fynk/ast"
	"github.com/fynk-lang/fynk/foundation/fynk/token"
	mdwstringx "github.com/fynk-lang/fynk/foundation/utils/stringx"
)

// Output formats for programs
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTree = "tree"
)

const (
	positionWidth = 10
	kindWidth     = 24
)

// TokenTable renders tokens as aligned position, kind and value columns
func TokenTable(tokens []token.Token, styles Styles) string {
	var b strings.Builder

	header := mdwstringx.PadRight("POSITION", positionWidth, ' ') +
		mdwstringx.PadRight("KIND", kindWidth, ' ') + "VALUE"
	b.WriteString(styles.Header.Render(header))
	b.WriteString("\n")

	for _, tok := range tokens {
		position := fmt.Sprintf("%d:%d", tok.Line, tok.Column)
		b.WriteString(styles.Muted.Render(mdwstringx.PadRight(position, positionWidth, ' ')))
		b.WriteString(styles.Kind.Render(mdwstringx.PadRight(tok.Kind.String(), kindWidth, ' ')))
		b.WriteString(styles.Value.Render(tok.Lexeme()))
		b.WriteString("\n")
	}

	return b.String()
}

// WriteProgram encodes the structural dump of prog in format
func WriteProgram(w io.Writer, prog *mdwast.Program, format string) error {
	switch format {
	case FormatJSON, "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(mdwast.Dump(prog))

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(mdwast.Dump(prog)); err != nil {
			return err
		}
		return encoder.Close()

	case FormatTree:
		_, err := io.WriteString(w, mdwast.Format(prog))
		return err

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
