package sat

import "testing"

// decodeFuzzCNF turns an arbitrary byte slice into a CNF with at most 20
// clauses of at most 10 literals each, over variables 1..20, mirroring the
// generator's shape (clause count, clause length and variable range) without
// needing a PRNG: the fuzzer's own byte-flipping drives the exploration.
// A zero byte ends the current clause; the high bit of every other byte
// picks the literal's polarity and the low bits pick the variable. A byte
// whose variable is already in the current clause with the opposite polarity
// is skipped, since a clause cannot hold both.
func decodeFuzzCNF(data []byte) *CNF {
	cnf := NewCNF()
	cl := NewClause()

	flush := func() {
		cnf.AddClause(cl)
		cl = NewClause()
	}

	for _, b := range data {
		if len(cnf.Clauses()) >= 20 {
			break
		}
		if b == 0 {
			flush()
			continue
		}
		if cl.Len() >= 10 {
			continue
		}
		v := Variable(b&0x7F)%20 + 1
		if lit, ok := cl.byVar[v]; ok && lit.IsPositive() == (b&0x80 != 0) {
			continue
		}
		if b&0x80 != 0 {
			cl.AddNegative(v)
		} else {
			cl.AddPositive(v)
		}
	}
	if cl.Len() > 0 {
		flush()
	}

	return cnf
}

func FuzzDecide(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0})
	f.Add([]byte{1})
	f.Add([]byte{1, 0, 0x81})
	f.Add([]byte{1, 2, 3, 0, 0x81, 0, 0x82, 0, 0x83})
	f.Add([]byte{0x81, 0x82, 0x83, 0, 1, 0, 2, 0, 3})
	f.Add([]byte{1, 2, 3, 0, 0x82, 0x83, 0, 0x83, 2, 0, 0x81})

	f.Fuzz(func(t *testing.T, data []byte) {
		cnf := decodeFuzzCNF(data)
		if cnf.HighestVar() > 20 {
			t.Skip()
		}

		got, _ := Decide(cnf)
		want := bruteForce(cnf)
		if got != want {
			t.Errorf("Decide(%v) = %v, bruteForce = %v", cnf, got, want)
		}
	})
}
