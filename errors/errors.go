package errors

import (
	"fmt"

	"github.com/pontaoski/astdot/types"
)

type ExpectedKindGotKind struct {
	Expected types.TokenKind
	Got      types.TokenKind
	Location types.Span
}

func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("got a %s, expected a %s. %s", e.Got, e.Expected, e.Location)
}

type ExpectedOneOfKindGotKind struct {
	Expected []types.TokenKind
	Got      types.TokenKind
	Location types.Span
}

func (e ExpectedOneOfKindGotKind) Error() string {
	return fmt.Sprintf("got a %s, expected one of %s. %s", e.Got, e.Expected, e.Location)
}

type UnexpectedCharacter struct {
	Char     rune
	Location types.Span
}

func (e UnexpectedCharacter) Error() string {
	return fmt.Sprintf("unexpected character %q. %s", e.Char, e.Location)
}

type InvalidLiteral struct {
	Text     string
	Reason   error
	Location types.Span
}

func (e InvalidLiteral) Error() string {
	return fmt.Sprintf("invalid literal %q: %s. %s", e.Text, e.Reason, e.Location)
}

func (e InvalidLiteral) Unwrap() error {
	return e.Reason
}

// AliasedNode is raised when a node is attached to a second owner.
type AliasedNode struct {
	Node string
}

func (e AliasedNode) Error() string {
	return fmt.Sprintf("%s already has an owner", e.Node)
}

// DoubleRelease is raised when a released node is released again.
type DoubleRelease struct {
	Node string
}

func (e DoubleRelease) Error() string {
	return fmt.Sprintf("%s released twice", e.Node)
}

// UnknownVariant reports a node whose type is outside the closed set of
// its category.
type UnknownVariant struct {
	Category string
	Type     string
}

func (e UnknownVariant) Error() string {
	return fmt.Sprintf("unknown %s variant %s", e.Category, e.Type)
}

type NotIntegerShift struct {
	Got string
}

func (e NotIntegerShift) Error() string {
	return fmt.Sprintf("shift amount must be an integer literal, got %s", e.Got)
}
