package cnfio

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wl-sat/yasat/internal/sat"
)

// literalsOf flattens a CNF into a comparable shape for cmp.Diff: Write keeps
// clause and literal order, so the round trip is compared in order, and a
// plain nested slice
// (rather than *sat.Clause's unexported fields) is what gets compared.
func literalsOf(cnf *sat.CNF) [][]sat.Literal {
	out := make([][]sat.Literal, len(cnf.Clauses()))
	for i, cl := range cnf.Clauses() {
		out[i] = append([]sat.Literal{}, cl.Literals()...)
	}
	return out
}

func TestRead_ParsesClausesAndEmptyClause(t *testing.T) {
	in := "1 2 -3\n\nfalse\n  -1  \n"
	cnf, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got, want := cnf.NumClauses(), 3; got != want {
		t.Fatalf("NumClauses() = %d, want %d", got, want)
	}

	cl0 := cnf.Clauses()[0]
	if got, want := cl0.Len(), 3; got != want {
		t.Errorf("clause 0 has %d literals, want %d", got, want)
	}

	cl1 := cnf.Clauses()[1]
	if !cl1.IsEmpty() {
		t.Errorf("clause 1 is not empty, want the \"false\" line to parse as empty")
	}

	cl2 := cnf.Clauses()[2]
	if got, want := cl2.Len(), 1; got != want {
		t.Errorf("clause 2 has %d literals, want %d", got, want)
	}
}

func TestRead_RejectsZeroToken(t *testing.T) {
	_, err := Read(strings.NewReader("1 0 2"))
	if err == nil {
		t.Fatal("Read() on a line containing token 0 returned no error")
	}
}

func TestRead_RejectsNonInteger(t *testing.T) {
	_, err := Read(strings.NewReader("1 x 2"))
	if err == nil {
		t.Fatal("Read() on a line containing a non-integer token returned no error")
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	cnf := sat.NewCNF()
	cl := sat.NewClause()
	cl.AddPositive(1)
	cl.AddNegative(2)
	cnf.AddClause(cl)
	cnf.AddClause(sat.NewClause())

	var sb strings.Builder
	if err := Write(&sb, cnf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Read(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Read(Write(cnf)) error = %v", err)
	}

	if diff := cmp.Diff(literalsOf(cnf), literalsOf(got)); diff != "" {
		t.Errorf("Read(Write(cnf)) round trip mismatch (-want +got):\n%s", diff)
	}
}
