// File: dump.go
// Title: Structural Dump of AST Nodes
// Description: Converts nodes to an ordered generic map with JSON and YAML
//              encodings that keep field order.
// Author: fynk authors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial dump implementation

package ast

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fynk-lang/fynk/foundation/fynk/token"
)

// Entry is one key/value pair of a Map
type Entry struct {
	Key   string
	Value interface{}
}

// Map is an ordered string-keyed map. Values are scalars, nested Maps, or
// []interface{} of either.
type Map []Entry

// Get returns the value stored under key
func (m Map) Get(key string) (interface{}, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order
func (m Map) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}

// ToGeneric converts m and every nested Map to map[string]interface{}
func (m Map) ToGeneric() map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for _, e := range m {
		out[e.Key] = toGeneric(e.Value)
	}
	return out
}

func toGeneric(v interface{}) interface{} {
	switch v := v.(type) {
	case Map:
		return v.ToGeneric()
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, elem := range v {
			out[i] = toGeneric(elem)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON encodes m as a JSON object in entry order
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("ast: encoding %q: %w", e.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes m as a YAML mapping in entry order
func (m Map) MarshalYAML() (interface{}, error) {
	return m.yamlNode()
}

func (m Map) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range m {
		value, err := yamlValue(e.Value)
		if err != nil {
			return nil, fmt.Errorf("ast: encoding %q: %w", e.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			value)
	}
	return node, nil
}

func yamlValue(v interface{}) (*yaml.Node, error) {
	switch v := v.(type) {
	case Map:
		return v.yamlNode()
	case []interface{}:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, elem := range v {
			child, err := yamlValue(elem)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, child)
		}
		return seq, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return node, nil
	}
}

// Dump converts n to its structural map form. A nil node dumps to nil.
func Dump(n Node) Map {
	if n == nil {
		return nil
	}
	kind, fields := fieldsOf(n)
	m := make(Map, 0, len(fields)+1)
	m = append(m, Entry{Key: "kind", Value: kind})
	for _, f := range fields {
		m = append(m, Entry{Key: f.name, Value: dumpValue(f.value)})
	}
	return m
}

func dumpValue(v interface{}) interface{} {
	switch v := v.(type) {
	case Node:
		if v == nil {
			return nil
		}
		return Dump(v)
	case []Node:
		out := make([]interface{}, len(v))
		for i, elem := range v {
			out[i] = dumpValue(elem)
		}
		return out
	case token.Kind:
		return v.String()
	default:
		return v
	}
}

type field struct {
	name  string
	value interface{}
}

// fieldsOf lists the declared fields of every variant in declaration order.
// Adding a variant requires a case here.
func fieldsOf(n Node) (string, []field) {
	switch n := n.(type) {
	case *Program:
		return "Program", []field{{"body", n.Body}}
	case *IntegerLiteral:
		return "IntegerLiteral", withPos([]field{{"value", n.Value}}, n.Position)
	case *FloatLiteral:
		return "FloatLiteral", withPos([]field{{"value", n.Value}}, n.Position)
	case *StringLiteral:
		return "StringLiteral", withPos([]field{{"value", n.Value}}, n.Position)
	case *IdentifierLiteral:
		return "IdentifierLiteral", withPos([]field{{"name", n.Name}}, n.Position)
	case *KeywordLiteral:
		return "KeywordLiteral", withPos([]field{{"keyword", n.Keyword}}, n.Position)
	case *BooleanLiteral:
		return "BooleanLiteral", withPos([]field{{"value", n.Value}}, n.Position)
	case *BinaryExpression:
		return "BinaryExpression", []field{
			{"left", n.Left}, {"operator", n.Operator}, {"right", n.Right},
		}
	case *AssignmentExpression:
		return "AssignmentExpression", withPos([]field{
			{"target", identNode(n.Target)}, {"value", n.Value},
		}, n.Position)
	case *EqualityExpression:
		return "EqualityExpression", withPos([]field{
			{"left", n.Left}, {"right", n.Right},
		}, n.Position)
	case *InequalityExpression:
		return "InequalityExpression", withPos([]field{
			{"left", n.Left}, {"right", n.Right},
		}, n.Position)
	case *LogicalExpression:
		return "LogicalExpression", withPos([]field{
			{"left", n.Left}, {"operator", n.Operator}, {"right", n.Right},
		}, n.Position)
	case *IncrementExpression:
		return "IncrementExpression", withPos([]field{{"target", identNode(n.Target)}}, n.Position)
	case *DecrementExpression:
		return "DecrementExpression", withPos([]field{{"target", identNode(n.Target)}}, n.Position)
	case *Delimiter:
		return "Delimiter", withPos([]field{{"value", n.Value}}, n.Position)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

func withPos(fields []field, p Position) []field {
	return append(fields, field{"line", p.Line}, field{"column", p.Column})
}

// identNode keeps a nil *IdentifierLiteral from becoming a non-nil Node
func identNode(id *IdentifierLiteral) Node {
	if id == nil {
		return nil
	}
	return id
}

// KindOf returns the variant name of n
func KindOf(n Node) string {
	kind, _ := fieldsOf(n)
	return kind
}
