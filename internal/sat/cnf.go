package sat

import "strings"

// CNF is an ordered sequence of clauses identified by a stable index; the
// core never reorders clauses once they are added.
type CNF struct {
	clauses []*Clause
}

// NewCNF returns an empty formula.
func NewCNF() *CNF {
	return &CNF{}
}

// AddClause appends cl to the formula and returns its (stable) index.
func (c *CNF) AddClause(cl *Clause) int {
	c.clauses = append(c.clauses, cl)
	return len(c.clauses) - 1
}

// Clauses returns the formula's clauses in index order. The returned slice
// must not be mutated by callers.
func (c *CNF) Clauses() []*Clause {
	return c.clauses
}

// NumClauses returns the number of clauses in the formula.
func (c *CNF) NumClauses() int {
	return len(c.clauses)
}

// HighestVar returns the maximum variable appearing in any clause, or 0 for
// a formula with no variables.
func (c *CNF) HighestVar() Variable {
	var hi Variable
	for _, cl := range c.clauses {
		for _, l := range cl.literals {
			if v := l.Var(); v > hi {
				hi = v
			}
		}
	}
	return hi
}

// IsSatisfied reports whether every clause in the formula is satisfied by a.
func (c *CNF) IsSatisfied(a *Assignment) bool {
	for _, cl := range c.clauses {
		if !cl.IsSatisfied(a) {
			return false
		}
	}
	return true
}

func (c *CNF) String() string {
	if len(c.clauses) == 0 {
		return "true"
	}
	parts := make([]string, len(c.clauses))
	for i, cl := range c.clauses {
		parts[i] = "[" + cl.String() + "]"
	}
	return strings.Join(parts, " & ")
}
