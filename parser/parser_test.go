package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pontaoski/astdot/ast"
	"github.com/pontaoski/astdot/errors"
	"github.com/pontaoski/astdot/graph"
	"github.com/pontaoski/astdot/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ztrue/tracerr"
)

func lines(ls ...string) string {
	if len(ls) == 0 {
		return ""
	}
	return strings.Join(ls, "\n") + "\n"
}

func parse(t *testing.T, src string) *ast.Function {
	t.Helper()
	root, err := parser.Parse(strings.NewReader(src), "test")
	require.NoError(t, err)
	return root
}

func TestParseToGraph(t *testing.T) {
	cases := []struct {
		name string
		src  string
		cfg  graph.Config
		want string
	}{
		{
			name: "empty program",
			src:  "",
			want: "",
		},
		{
			name: "function chain",
			src: `
				int f1() { }
				int f2() { }
				int f3() { }`,
			want: lines(
				"0, 1",
				"1, 2",
				`0 [label="f1"];`,
				`1 [label="f2"];`,
				`2 [label="f3"];`,
			),
		},
		{
			name: "globals are dropped",
			src: `
				int x;
				static float v[10], y;
				int f1(int a, const char b) { }`,
			want: lines(`0 [label="f1"];`),
		},
		{
			name: "declarations without values",
			src: `
				int f1() {
					int a, b;
					a = 1;
					b = 1;
				}`,
			want: lines(
				"0, 1",
				"1, 2",
				"1, 3",
				"1, 4",
				"4, 5",
				"4, 6",
				`0 [label="f1"];`,
				`1 [label="="];`,
				`2 [label="a"];`,
				`3 [label="1"];`,
				`4 [label="="];`,
				`5 [label="b"];`,
				`6 [label="1"];`,
			),
		},
		{
			name: "initialized declarations",
			src: `
				int f1() {
					int c, a <= 1, b <= x;
				}`,
			want: lines(
				"0, 1",
				"1, 2",
				"1, 3",
				"1, 4",
				"4, 5",
				"4, 6",
				`0 [label="f1"];`,
				`1 [label="<="];`,
				`2 [label="a"];`,
				`3 [label="1"];`,
				`4 [label="<="];`,
				`5 [label="b"];`,
				`6 [label="x"];`,
			),
		},
		{
			name: "indexed access",
			src: `
				int f1() {
					x = v[3];
				}`,
			want: lines(
				"0, 1",
				"1, 2",
				"1, 3",
				"3, 4",
				"3, 5",
				`0 [label="f1"];`,
				`1 [label="="];`,
				`2 [label="x"];`,
				`3 [label="[]"];`,
				`4 [label="v"];`,
				`5 [label="3"];`,
			),
		},
		{
			name: "indexed shift",
			src: `
				int f1() {
					id[1] << 1;
				}`,
			want: lines(
				"0, 1",
				"1, 2",
				"2, 3",
				"2, 4",
				"1, 5",
				`0 [label="f1"];`,
				`1 [label="<<"];`,
				`2 [label="[]"];`,
				`3 [label="id"];`,
				`4 [label="1"];`,
				`5 [label="1"];`,
			),
		},
		{
			name: "call with arguments",
			src: `
				int f1() {
					x = g1(1, 2, 3);
				}`,
			want: lines(
				"0, 1",
				"1, 2",
				"1, 3",
				"3, 4",
				"3, 5",
				"3, 6",
				`0 [label="f1"];`,
				`1 [label="="];`,
				`2 [label="x"];`,
				`3 [label="call g1"];`,
				`4 [label="1"];`,
				`5 [label="2"];`,
				`6 [label="3"];`,
			),
		},
		{
			name: "call command and function bodies",
			src: `
				int f1() { g1(); }
				int f2() { return 1; }`,
			want: lines(
				"0, 1",
				"0, 2",
				"2, 3",
				"3, 4",
				`0 [label="f1"];`,
				`1 [label="call g1"];`,
				`2 [label="f2"];`,
				`3 [label="return"];`,
				`4 [label="1"];`,
			),
		},
		{
			name: "if else with true condition",
			src: `
				int f1() {
					if(true){
						continue;
					} else {
						break;
					};
				}`,
			want: lines(
				"0, 1",
				"1, 2",
				"1, 3",
				"1, 4",
				`0 [label="f1"];`,
				`1 [label="if"];`,
				`3 [label="continue"];`,
				`4 [label="break"];`,
			),
		},
		{
			name: "for loop",
			src: `
				int f(){
					int i;
					for(i = 0 : i : i = 2) {
						i = 3;
						i = 4;
					};
				}`,
			want: lines(
				"0, 1",
				"1, 2",
				"2, 3",
				"2, 4",
				"1, 5",
				"1, 6",
				"6, 7",
				"6, 8",
				"1, 9",
				"9, 10",
				"9, 11",
				"9, 12",
				"12, 13",
				"12, 14",
				`0 [label="f"];`,
				`1 [label="for"];`,
				`2 [label="<="];`,
				`3 [label="i"];`,
				`4 [label="0"];`,
				`5 [label="i"];`,
				`6 [label="="];`,
				`7 [label="i"];`,
				`8 [label="2"];`,
				`9 [label="="];`,
				`10 [label="i"];`,
				`11 [label="3"];`,
				`12 [label="="];`,
				`13 [label="i"];`,
				`14 [label="4"];`,
			),
		},
		{
			name: "while loop with labelled true",
			src: `
				int f(){
					while (true) do {
						i = 3;
					};
				}`,
			cfg: graph.Config{LabelTrueLiterals: true},
			want: lines(
				"0, 1",
				"1, 2",
				"1, 3",
				"3, 4",
				"3, 5",
				`0 [label="f"];`,
				`1 [label="while"];`,
				`2 [label="true"];`,
				`3 [label="="];`,
				`4 [label="i"];`,
				`5 [label="3"];`,
			),
		},
		{
			name: "operator precedence",
			src: `
				int f() {
					return a + b * c;
				}`,
			want: lines(
				"0, 1",
				"1, 2",
				"2, 3",
				"2, 4",
				"4, 5",
				"4, 6",
				`0 [label="f"];`,
				`1 [label="return"];`,
				`2 [label="+"];`,
				`3 [label="a"];`,
				`4 [label="*"];`,
				`5 [label="b"];`,
				`6 [label="c"];`,
			),
		},
		{
			name: "ternary and unary",
			src: `
				int f() {
					output -x ? 'a' : "b";
				}`,
			want: lines(
				"0, 1",
				"1, 2",
				"2, 3",
				"3, 4",
				"2, 5",
				"2, 6",
				`0 [label="f"];`,
				`1 [label="output"];`,
				`2 [label="?:"];`,
				`3 [label="-"];`,
				`4 [label="x"];`,
				`5 [label="a"];`,
				`6 [label="b"];`,
			),
		},
		{
			name: "float literal",
			src:  `int f() { a = 1.0; }`,
			want: lines(
				"0, 1",
				"1, 2",
				"1, 3",
				`0 [label="f"];`,
				`1 [label="="];`,
				`2 [label="a"];`,
				`3 [label="1.000000"];`,
			),
		},
		{
			name: "nested block joins the chain",
			src: `
				int f() {
					input a;
					{ break; };
					continue;
				}`,
			want: lines(
				"0, 1",
				"1, 2",
				"1, 3",
				"3, 4",
				`0 [label="f"];`,
				`1 [label="input"];`,
				`2 [label="a"];`,
				`3 [label="break"];`,
				`4 [label="continue"];`,
			),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := parse(t, tc.src)
			got, err := graph.Export(root, tc.cfg)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("graph mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParsedTreeIsReleasedOnce(t *testing.T) {
	root := parse(t, `
		int f1() {
			int a <= 1;
			for (i = 0 : i < 10 : i = i + 1) {
				if (a == i) then { output a; } else { v[i] >> 2; };
			};
			while (a > 0) do { a = a - 1; };
			return g(a, v[0], -a);
		}
		int f2() { f1(); }`)

	e := graph.NewExporter(graph.Config{})
	require.NoError(t, e.Export(&strings.Builder{}, root))
	stats := e.Stats()

	assert.Equal(t, stats.Nodes-1, stats.Edges)
	assert.Equal(t, stats.Nodes, ast.Release(root))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want interface{}
	}{
		{"missing value", `int f() { x = ; }`, errors.ExpectedOneOfKindGotKind{}},
		{"float shift", `int f() { x << 1.5; }`, errors.ExpectedKindGotKind{}},
		{"missing semicolon", `int f() { break }`, errors.ExpectedKindGotKind{}},
		{"bad character", `int f() { @ }`, errors.UnexpectedCharacter{}},
		{"unterminated string", `int f() { output "oops; }`, errors.InvalidLiteral{}},
		{"while without do", `int f() { while (a) { break; }; }`, errors.ExpectedKindGotKind{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := parser.Parse(strings.NewReader(tc.src), "test")
			require.Error(t, err)
			assert.Nil(t, root)
			assert.IsType(t, tc.want, tracerr.Unwrap(err))
		})
	}
}
