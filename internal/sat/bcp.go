package sat

// BCPOutcome is the two-variant result of running BCP to a fixpoint.
type BCPOutcome int

const (
	BCPDone BCPOutcome = iota
	BCPUnsatisfiable
)

// RunBCP drives idx's watched-literal updates to a fixpoint starting from
// seed, which must already be reflected in a (a.GetLit(seed) == True).
// Every propagation emitted by the index is written into a before the next
// literal is popped from the queue, so a later iteration never rediscovers
// the same literal as unassigned in the same clause.
func RunBCP(idx *WatchedIndex, a *Assignment, seed Literal) BCPOutcome {
	queue := NewQueue[Literal](8)
	queue.Push(seed)

	for !queue.IsEmpty() {
		lit := queue.Pop()

		result := idx.Update(a, lit)
		if result.Unsatisfiable {
			return BCPUnsatisfiable
		}

		for _, p := range result.Propagations {
			a.Change(p.Var(), p.IsPositive())
			queue.Push(p)
		}
	}

	return BCPDone
}
