package sat

import (
	"fmt"
	"sort"
	"strings"
)

// Assignment is a finite partial mapping from Variable to Boolean. The zero
// value of LBool is Unknown, so a variable absent from values reads back as
// Unknown without a separate presence check.
type Assignment struct {
	values map[Variable]LBool
}

// NewAssignment returns an empty assignment.
func NewAssignment() *Assignment {
	return &Assignment{values: map[Variable]LBool{}}
}

// Get returns the value assigned to v, or Unknown if v is unassigned.
func (a *Assignment) Get(v Variable) LBool {
	return a.values[v]
}

// GetLit returns True if l is satisfied, False if l's negation is assigned,
// or Unknown if l's variable is unassigned.
func (a *Assignment) GetLit(l Literal) LBool {
	v := a.values[l.Var()]
	if v == Unknown {
		return Unknown
	}
	if l.IsPositive() {
		return v
	}
	return v.Opposite()
}

// Change overwrites the value assigned to v.
func (a *Assignment) Change(v Variable, val bool) {
	a.values[v] = Lift(val)
}

// With returns a functional extension of a with v set to val; a is left
// unchanged.
func (a *Assignment) With(v Variable, val bool) *Assignment {
	next := make(map[Variable]LBool, len(a.values)+1)
	for k, v := range a.values {
		next[k] = v
	}
	next[v] = Lift(val)
	return &Assignment{values: next}
}

// HighestAssignedVar returns the largest assigned variable and true, or
// (0, false) if the assignment is empty.
func (a *Assignment) HighestAssignedVar() (Variable, bool) {
	var hi Variable
	found := false
	for v := range a.values {
		if !found || v > hi {
			hi = v
			found = true
		}
	}
	return hi, found
}

func (a *Assignment) String() string {
	vars := make([]Variable, 0, len(a.values))
	for v := range a.values {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })

	parts := make([]string, len(vars))
	for i, v := range vars {
		val := 0
		if a.values[v] == True {
			val = 1
		}
		parts[i] = fmt.Sprintf("%d=%d", v, val)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
