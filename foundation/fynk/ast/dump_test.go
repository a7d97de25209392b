package ast

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/fynk-lang/fynk/foundation/fynk/token"
)

// x = 1 + 2 * 3;
func sampleProgram() *Program {
	x := NewIdentifierLiteral("x", 1, 0)
	mul := NewBinaryExpression(NewIntegerLiteral(2, 1, 8), token.MULTIPLY, NewIntegerLiteral(3, 1, 12))
	add := NewBinaryExpression(NewIntegerLiteral(1, 1, 4), token.PLUS, mul)
	return NewProgram([]Node{NewAssignmentExpression(x, add)})
}

func TestDumpStructure(t *testing.T) {
	got := Dump(sampleProgram()).ToGeneric()

	want := map[string]interface{}{
		"kind": "Program",
		"body": []interface{}{
			map[string]interface{}{
				"kind": "AssignmentExpression",
				"target": map[string]interface{}{
					"kind": "IdentifierLiteral", "name": "x", "line": 1, "column": 0,
				},
				"value": map[string]interface{}{
					"kind":     "BinaryExpression",
					"left":     map[string]interface{}{"kind": "IntegerLiteral", "value": int64(1), "line": 1, "column": 4},
					"operator": "PLUS",
					"right": map[string]interface{}{
						"kind":     "BinaryExpression",
						"left":     map[string]interface{}{"kind": "IntegerLiteral", "value": int64(2), "line": 1, "column": 8},
						"operator": "MULTIPLY",
						"right":    map[string]interface{}{"kind": "IntegerLiteral", "value": int64(3), "line": 1, "column": 12},
					},
				},
				"line":   1,
				"column": 0,
			},
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dump mismatch\nExpected %#v\ngot      %#v", want, got)
	}
}

func TestDumpKeyOrder(t *testing.T) {
	tests := []struct {
		name string
		node Node
		keys []string
	}{
		{"program", NewProgram(nil), []string{"kind", "body"}},
		{"integer", NewIntegerLiteral(1, 1, 0), []string{"kind", "value", "line", "column"}},
		{"identifier", NewIdentifierLiteral("a", 1, 0), []string{"kind", "name", "line", "column"}},
		{"keyword", NewKeywordLiteral("if", 1, 0), []string{"kind", "keyword", "line", "column"}},
		{"binary", NewBinaryExpression(NewIntegerLiteral(1, 1, 0), token.MINUS, NewIntegerLiteral(2, 1, 4)),
			[]string{"kind", "left", "operator", "right"}},
		{"assignment", NewAssignmentExpression(NewIdentifierLiteral("a", 1, 0), NewBooleanLiteral(true, 1, 4)),
			[]string{"kind", "target", "value", "line", "column"}},
		{"logical", NewLogicalExpression(NewBooleanLiteral(true, 1, 0), token.OR, NewBooleanLiteral(false, 1, 7)),
			[]string{"kind", "left", "operator", "right", "line", "column"}},
		{"increment", NewIncrementExpression(NewIdentifierLiteral("i", 1, 2)), []string{"kind", "target", "line", "column"}},
		{"delimiter", NewDelimiter(";", 1, 0), []string{"kind", "value", "line", "column"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dump(tt.node).Keys(); !reflect.DeepEqual(got, tt.keys) {
				t.Errorf("Expected keys %v, got %v", tt.keys, got)
			}
		})
	}
}

func TestDumpNil(t *testing.T) {
	if Dump(nil) != nil {
		t.Error("Expected nil dump for nil node")
	}
	m := Dump(&IncrementExpression{})
	if v, ok := m.Get("target"); !ok || v != nil {
		t.Errorf("Expected nil target entry, got %v (present=%v)", v, ok)
	}
}

func TestMapMarshalJSONKeepsOrder(t *testing.T) {
	data, err := json.Marshal(Dump(NewInequalityExpression(
		NewIdentifierLiteral("a", 3, 1),
		NewStringLiteral("b\n", 3, 6),
	)))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	want := `{"kind":"InequalityExpression",` +
		`"left":{"kind":"IdentifierLiteral","name":"a","line":3,"column":1},` +
		`"right":{"kind":"StringLiteral","value":"b\n","line":3,"column":6},` +
		`"line":3,"column":1}`
	if string(data) != want {
		t.Errorf("Expected %s\ngot      %s", want, data)
	}
}

func TestMapMarshalYAMLKeepsOrder(t *testing.T) {
	data, err := yaml.Marshal(Dump(NewProgram([]Node{
		NewDecrementExpression(NewIdentifierLiteral("count", 1, 2)),
	})))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	out := string(data)
	order := []string{"kind: Program", "body:", "kind: DecrementExpression", "target:", "kind: IdentifierLiteral", "name: count"}
	last := -1
	for _, want := range order {
		idx := strings.Index(out, want)
		if idx < 0 {
			t.Fatalf("Expected %q in YAML output:\n%s", want, out)
		}
		if idx < last {
			t.Errorf("Expected %q after previous key in:\n%s", want, out)
		}
		last = idx
	}

	var generic map[string]interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		t.Fatalf("Expected YAML to decode, got %v", err)
	}
	if generic["kind"] != "Program" {
		t.Errorf("Expected kind Program, got %v", generic["kind"])
	}
}
