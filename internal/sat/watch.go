package sat

import "fmt"

// watchPair is the two literals a clause of length >= 2 currently watches.
type watchPair struct {
	w0, w1 Literal
}

// WatchedIndex maintains, for every clause of length >= 2, a watched pair of
// literals and an inverted access map from literal to the clauses currently
// watching it (invariants I1-I3 in the design notes). Clauses of length < 2
// have no watched pair and never appear in the access map.
//
// The index is mutated in place as propagation proceeds and is not
// snapshotted; it is not reverted on backtrack (see Update's doc comment).
type WatchedIndex struct {
	cnf      *CNF
	watch    []watchPair
	hasWatch []bool
	access   map[Literal][]int
}

// NewWatchedIndex builds the initial watch state for cnf: every clause with
// at least two literals watches the first two literals yielded by its
// iteration order.
func NewWatchedIndex(cnf *CNF) *WatchedIndex {
	idx := &WatchedIndex{
		cnf:      cnf,
		watch:    make([]watchPair, cnf.NumClauses()),
		hasWatch: make([]bool, cnf.NumClauses()),
		access:   map[Literal][]int{},
	}
	for i, cl := range cnf.Clauses() {
		lits := cl.Literals()
		if len(lits) < 2 {
			continue
		}
		idx.setWatch(i, lits[0], lits[1])
	}
	return idx
}

func (idx *WatchedIndex) setWatch(clauseIdx int, l0, l1 Literal) {
	idx.watch[clauseIdx] = watchPair{w0: l0, w1: l1}
	idx.hasWatch[clauseIdx] = true
	idx.access[l0] = append(idx.access[l0], clauseIdx)
	idx.access[l1] = append(idx.access[l1], clauseIdx)
}

// replace swaps clause clauseIdx's watched literal oldWL for newWL, updating
// both the watch pair and the access map (swap-and-pop removal, append
// insertion).
func (idx *WatchedIndex) replace(clauseIdx int, oldWL, newWL Literal) {
	list := idx.access[oldWL]
	pos := -1
	for i, ci := range list {
		if ci == clauseIdx {
			pos = i
			break
		}
	}
	if pos < 0 {
		panic(fmt.Sprintf("sat: clause %d not found in access map for literal %v (I2 violated)", clauseIdx, oldWL))
	}
	last := len(list) - 1
	list[pos] = list[last]
	idx.access[oldWL] = list[:last]

	wp := &idx.watch[clauseIdx]
	switch oldWL {
	case wp.w0:
		wp.w0 = newWL
	case wp.w1:
		wp.w1 = newWL
	default:
		panic(fmt.Sprintf("sat: clause %d does not watch literal %v", clauseIdx, oldWL))
	}

	idx.access[newWL] = append(idx.access[newWL], clauseIdx)
}

// replacementKind classifies the outcome of searching a clause for a literal
// to watch in place of a just-falsified one. The six variants are exhaustive
// and fixed, so they are modelled as a closed enum rather than an interface
// hierarchy.
type replacementKind int

const (
	replGivenSatisfying replacementKind = iota
	replOtherSatisfying
	replMultipleUnassigned
	replUnitWithOther
	replUnitElsewhere
	replUnsatisfiable
)

// replacement is the result of findReplacement. lit is only meaningful for
// replOtherSatisfying, replMultipleUnassigned, and replUnitElsewhere.
type replacement struct {
	kind replacementKind
	lit  Literal
}

// findReplacement classifies clause cl given that one of its two watched
// literals was just falsified and other is the surviving watched literal.
// other can itself already be False: BCP writes a propagation into the
// assignment when it enqueues it and Decide assigns every unit clause before
// seeding BCP, so the update for other's variable may still be pending. The
// clause's own iteration order is scanned and the first eligible
// literal is chosen, which is what makes the index's behaviour deterministic
// across identical runs.
func findReplacement(cl *Clause, a *Assignment, other Literal) replacement {
	if a.GetLit(other) == True {
		return replacement{kind: replGivenSatisfying}
	}

	var unassigned Literal
	haveUnassigned := false

	for _, lit := range cl.Literals() {
		switch a.GetLit(lit) {
		case True:
			return replacement{kind: replOtherSatisfying, lit: lit}
		case False:
			continue
		default: // Unknown
			if !haveUnassigned {
				unassigned = lit
				haveUnassigned = true
				continue
			}
			if unassigned == other {
				return replacement{kind: replMultipleUnassigned, lit: lit}
			}
			return replacement{kind: replMultipleUnassigned, lit: unassigned}
		}
	}

	if !haveUnassigned {
		return replacement{kind: replUnsatisfiable}
	}
	if unassigned == other {
		return replacement{kind: replUnitWithOther}
	}
	return replacement{kind: replUnitElsewhere, lit: unassigned}
}

// UpdateResult is the outcome of WatchedIndex.Update: either the clause set
// remains satisfiable so far (carrying any forced propagations) or some
// clause has become unsatisfiable under the current assignment.
type UpdateResult struct {
	Unsatisfiable bool
	Propagations  []Literal
}

// Update processes a literal that has just been assigned true. It scans
// every clause watching the now-falsified sibling literal and, for each,
// either keeps the watch, swaps it for a new literal, records a forced
// propagation, or reports a conflict.
//
// The index is not reverted on backtrack: a later call to Update after a
// flip re-establishes I3 for the new branch because any watch whose sibling
// is now falsified gets swapped (or the clause is found unit/unsatisfiable)
// on the very next propagation that touches it.
func (idx *WatchedIndex) Update(a *Assignment, assigned Literal) UpdateResult {
	falsified := assigned.Opposite()

	clauses, ok := idx.access[falsified]
	if !ok || len(clauses) == 0 {
		return UpdateResult{}
	}

	// Snapshot: replace mutates idx.access[falsified] in place.
	snapshot := make([]int, len(clauses))
	copy(snapshot, clauses)

	var propagations []Literal

	for _, ci := range snapshot {
		wp := idx.watch[ci]
		var other Literal
		switch falsified {
		case wp.w0:
			other = wp.w1
		case wp.w1:
			other = wp.w0
		default:
			panic(fmt.Sprintf("sat: clause %d watch pair does not contain %v", ci, falsified))
		}

		switch r := findReplacement(idx.cnf.Clauses()[ci], a, other); r.kind {
		case replGivenSatisfying:
			// keep watches unchanged
		case replOtherSatisfying, replMultipleUnassigned:
			idx.replace(ci, falsified, r.lit)
		case replUnitWithOther:
			propagations = append(propagations, other)
		case replUnitElsewhere:
			idx.replace(ci, falsified, r.lit)
			propagations = append(propagations, r.lit)
		case replUnsatisfiable:
			return UpdateResult{Unsatisfiable: true}
		}
	}

	return UpdateResult{Propagations: propagations}
}
