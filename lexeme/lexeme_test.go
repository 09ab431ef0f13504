package lexeme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFollowsPayload(t *testing.T) {
	cases := []struct {
		v    Value
		kind Kind
		text string
	}{
		{NewSpecialChar(1, '+'), SpecialChar, "+"},
		{NewKeyword(2, "<="), SpecialKeyword, "<="},
		{NewIdentifier(3, "main"), Identifier, "main"},
		{NewLiteral(4, Int(42)), IntLiteral, "42"},
		{NewLiteral(4, Int(-7)), IntLiteral, "-7"},
		{NewLiteral(5, Float(1)), FloatLiteral, "1.000000"},
		{NewLiteral(5, Float(2.5)), FloatLiteral, "2.500000"},
		{NewLiteral(6, Character('a')), CharLiteral, "a"},
		{NewLiteral(7, Bool(false)), BoolLiteral, "false"},
		{NewLiteral(7, Bool(true)), BoolLiteral, "true"},
		{NewLiteral(8, String("XXX")), StringLiteral, "XXX"},
	}

	for _, c := range cases {
		t.Run(c.kind.String()+"/"+c.text, func(t *testing.T) {
			require.True(t, c.v.Valid())
			assert.Equal(t, c.kind, c.v.Kind())
			assert.Equal(t, c.text, c.v.Text())
		})
	}
}

func TestLineIsKept(t *testing.T) {
	v := NewIdentifier(17, "x")
	assert.Equal(t, 17, v.Line())
	assert.Equal(t, Name("x"), v.Payload())
}

func TestZeroValue(t *testing.T) {
	var v Value
	assert.False(t, v.Valid())
	assert.Equal(t, "", v.Text())
	assert.Equal(t, "<nil>", v.String())
	assert.Panics(t, func() { v.Kind() })
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "StringLiteral", StringLiteral.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
