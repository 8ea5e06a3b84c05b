package sat

import "fmt"

// Variable identifies a Boolean variable. Valid variables are >= 1; zero is
// reserved and never produced by the parser or handed to the core.
type Variable int

// Literal represents a variable together with a polarity. The low bit of the
// encoding carries the polarity so that Opposite is a single XOR.
type Literal int

// NewPositiveLiteral returns the literal asserting v positively.
func NewPositiveLiteral(v Variable) Literal {
	return Literal(v << 1)
}

// NewNegativeLiteral returns the literal asserting v negated.
func NewNegativeLiteral(v Variable) Literal {
	return Literal(v<<1) | 1
}

// Var returns the variable underlying the literal.
func (l Literal) Var() Variable {
	return Variable(l >> 1)
}

// IsPositive returns true if and only if the literal asserts the positive
// form of its variable (i.e. is not a negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the opposite literal.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.Var())
	}
	return fmt.Sprintf("-%d", l.Var())
}
