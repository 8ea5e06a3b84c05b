package sat

// firstTry is the polarity tried first for every newly decided variable.
// The opposite polarity is only explored via a flip on backtrack.
const firstTry = false

// Verdict is the closed two-value result of Decide.
type Verdict int8

const (
	UNSAT Verdict = iota
	SAT
)

func (v Verdict) String() string {
	if v == SAT {
		return "satisfiable"
	}
	return "not satisfiable"
}

// Stats carries evaluation counters gathered while deciding a formula.
type Stats struct {
	// Evaluations counts the number of times CNF.IsSatisfied was invoked
	// against a proposed assignment, including the single check against the
	// initial (pre-decision) assignment.
	Evaluations int
}

// decisionLevel is one entry of the search's decision stack. Level 0 is the
// pre-decision state (never pushed as a decisionLevel itself; represented by
// an empty stack and the initial assignment).
type decisionLevel struct {
	assignment     *Assignment
	decidedVar     Variable
	nextVarAtLeast Variable
	flipped        bool
}

// backtrackOutcome is the closed two-variant result of backtrack.
type backtrackOutcome struct {
	unsatisfiableFormula bool
	continueWith         Literal
}

// Decide decides the satisfiability of cnf using watched-literal BCP and
// chronological backtracking search with lexicographic variable selection.
// It is single-invocation: every call allocates its own watched-literals
// index and decision stack and owns no state beyond the call frame.
func Decide(cnf *CNF) (Verdict, Stats) {
	var stats Stats

	if cnf.NumClauses() == 0 {
		return SAT, stats
	}
	for _, cl := range cnf.Clauses() {
		if cl.IsEmpty() {
			return UNSAT, stats
		}
	}

	idx := NewWatchedIndex(cnf)

	initial, ok := initialAssignment(cnf)
	if !ok {
		return UNSAT, stats
	}
	for v, val := range initial.values {
		lit := litFor(v, val == True)
		if RunBCP(idx, initial, lit) == BCPUnsatisfiable {
			return UNSAT, stats
		}
	}

	stats.Evaluations++
	if cnf.IsSatisfied(initial) {
		return SAT, stats
	}

	highest := cnf.HighestVar()
	var stack []*decisionLevel

	type state int
	const (
		stateCheckCurrentLevel state = iota
		stateAssignNewVar
		stateNewDecLevel
		statePropagate
		stateBacktrack
	)

	st := stateCheckCurrentLevel
	var pending Literal

	for {
		switch st {
		case stateCheckCurrentLevel:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				stats.Evaluations++
				if cnf.IsSatisfied(top.assignment) {
					return SAT, stats
				}
			}
			st = stateAssignNewVar

		case stateAssignNewVar:
			v, ok := chooseNextVar(highest, stack, initial)
			if !ok {
				st = stateBacktrack
				continue
			}
			pending = litFor(v, firstTry)
			st = stateNewDecLevel

		case stateNewDecLevel:
			v := pending.Var()
			val := pending.IsPositive()

			parentAssignment := initial
			var parentNextVarAtLeast Variable
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				parentAssignment = top.assignment
				parentNextVarAtLeast = top.nextVarAtLeast
			}

			nextVarAtLeast := parentNextVarAtLeast
			if v == parentNextVarAtLeast+1 {
				nextVarAtLeast = v
			}

			stack = append(stack, &decisionLevel{
				assignment:     parentAssignment.With(v, val),
				decidedVar:     v,
				nextVarAtLeast: nextVarAtLeast,
				flipped:        false,
			})
			st = statePropagate

		case statePropagate:
			top := stack[len(stack)-1]
			if RunBCP(idx, top.assignment, pending) == BCPUnsatisfiable {
				st = stateBacktrack
				continue
			}
			st = stateCheckCurrentLevel

		case stateBacktrack:
			newStack, outcome := backtrack(stack, initial)
			stack = newStack
			if outcome.unsatisfiableFormula {
				return UNSAT, stats
			}
			pending = outcome.continueWith
			st = statePropagate
		}
	}
}

// litFor builds the literal asserting v with the given polarity.
func litFor(v Variable, val bool) Literal {
	if val {
		return NewPositiveLiteral(v)
	}
	return NewNegativeLiteral(v)
}

// initialAssignment scans every unit clause and records its forced literal.
// It returns (assignment, false) if two unit clauses conflict.
func initialAssignment(cnf *CNF) (*Assignment, bool) {
	a := NewAssignment()
	for _, cl := range cnf.Clauses() {
		lits := cl.Literals()
		if len(lits) != 1 {
			continue
		}
		lit := lits[0]
		switch a.GetLit(lit) {
		case True:
			// already recorded compatibly
		case False:
			return nil, false
		default:
			a.Change(lit.Var(), lit.IsPositive())
		}
	}
	return a, true
}

// chooseNextVar picks the next variable to decide: the smallest variable
// greater than the current decision level's next-var-at-least bound that is
// still unassigned. It returns (0, false) once every variable up to and
// including highest has been considered.
func chooseNextVar(highest Variable, stack []*decisionLevel, initial *Assignment) (Variable, bool) {
	var nextVarAtLeast Variable
	assignment := initial
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		nextVarAtLeast = top.nextVarAtLeast
		assignment = top.assignment
	}

	candidate := nextVarAtLeast + 1
	for assignment.Get(candidate) != Unknown {
		candidate++
	}

	if candidate <= highest {
		return candidate, true
	}
	return 0, false
}

// backtrack pops exhausted decision levels (ones whose branch was already
// flipped) off the top of stack until it finds one not yet flipped, rebuilds
// that level's assignment as its parent's (initial for the first level) with
// the decided variable negated, so values BCP derived on the abandoned branch
// are dropped, and returns the truncated stack together with the literal to
// propagate next. It returns unsatisfiableFormula if every level is
// exhausted.
func backtrack(stack []*decisionLevel, initial *Assignment) ([]*decisionLevel, backtrackOutcome) {
	for len(stack) > 0 {
		dl := stack[len(stack)-1]
		if !dl.flipped {
			dl.flipped = true
			newVal := dl.assignment.Get(dl.decidedVar) != True
			parent := initial
			if len(stack) > 1 {
				parent = stack[len(stack)-2].assignment
			}
			dl.assignment = parent.With(dl.decidedVar, newVal)
			return stack, backtrackOutcome{continueWith: litFor(dl.decidedVar, newVal)}
		}
		stack = stack[:len(stack)-1]
	}
	return stack, backtrackOutcome{unsatisfiableFormula: true}
}
