package sat

import "testing"

func TestRunBCP_ChainedPropagation(t *testing.T) {
	// 1 -> 2 -> 3, seeded by asserting 1.
	cnf := NewCNF()
	cnf.AddClause(clauseOf(-1, 2))
	cnf.AddClause(clauseOf(-2, 3))

	idx := NewWatchedIndex(cnf)
	a := NewAssignment()
	a.Change(1, true)

	if got := RunBCP(idx, a, NewPositiveLiteral(1)); got != BCPDone {
		t.Fatalf("RunBCP = %v, want BCPDone", got)
	}
	if got := a.Get(2); got != True {
		t.Errorf("var 2 = %v, want True", got)
	}
	if got := a.Get(3); got != True {
		t.Errorf("var 3 = %v, want True", got)
	}
}

func TestRunBCP_Conflict(t *testing.T) {
	cnf := NewCNF()
	cnf.AddClause(clauseOf(-1, 2))
	cnf.AddClause(clauseOf(-1, -2))

	idx := NewWatchedIndex(cnf)
	a := NewAssignment()
	a.Change(1, true)

	if got := RunBCP(idx, a, NewPositiveLiteral(1)); got != BCPUnsatisfiable {
		t.Fatalf("RunBCP = %v, want BCPUnsatisfiable", got)
	}
}
