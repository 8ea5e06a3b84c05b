package sat

import (
	"fmt"
	"strings"
)

// ContradictoryLiteral is panicked by Clause.AddPositive/AddNegative when the
// opposite polarity of Var is already present in the clause. The CNF text
// reader never triggers it because it encodes each literal once; it exists to
// catch programmer errors in callers that build clauses directly.
type ContradictoryLiteral struct {
	Var Variable
}

func (e ContradictoryLiteral) Error() string {
	return fmt.Sprintf("sat: variable %d added with both polarities in the same clause", e.Var)
}

// Clause is a set of literals with the invariant that no variable appears
// with both polarities. Iteration order over literals is the order literals
// were first added; correctness never depends on it, but the watched-literal
// index's tie-breaking rule does, so it must stay stable once the clause is
// built.
type Clause struct {
	literals []Literal
	byVar    map[Variable]Literal
}

// NewClause returns an empty clause.
func NewClause() *Clause {
	return &Clause{byVar: map[Variable]Literal{}}
}

func (c *Clause) add(lit Literal) {
	v := lit.Var()
	if existing, ok := c.byVar[v]; ok {
		if existing != lit {
			panic(ContradictoryLiteral{Var: v})
		}
		return // idempotent re-add of the same literal
	}
	c.byVar[v] = lit
	c.literals = append(c.literals, lit)
}

// AddPositive adds the positive literal of v to the clause. It is a no-op if
// the literal is already present and panics with ContradictoryLiteral if v's
// negation is already present.
func (c *Clause) AddPositive(v Variable) {
	c.add(NewPositiveLiteral(v))
}

// AddNegative adds the negative literal of v to the clause. It is a no-op if
// the literal is already present and panics with ContradictoryLiteral if v's
// positive form is already present.
func (c *Clause) AddNegative(v Variable) {
	c.add(NewNegativeLiteral(v))
}

// Literals returns the clause's literals in the order they were added. The
// returned slice must not be mutated by callers.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// IsEmpty reports whether the clause contains no literals. The empty clause
// is unsatisfiable under any assignment.
func (c *Clause) IsEmpty() bool {
	return len(c.literals) == 0
}

// IsSatisfied reports whether at least one of the clause's literals is
// satisfied under a.
func (c *Clause) IsSatisfied(a *Assignment) bool {
	for _, l := range c.literals {
		if a.GetLit(l) == True {
			return true
		}
	}
	return false
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "false"
	}
	parts := make([]string, len(c.literals))
	for i, l := range c.literals {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}
