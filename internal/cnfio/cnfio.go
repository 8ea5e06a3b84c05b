// Package cnfio reads and writes the line-oriented CNF text format: one
// clause per line, whitespace-separated signed integer tokens, the literal
// string "false" denoting the empty clause. It is not standard DIMACS: there
// is no "p cnf <nvars> <nclauses>" problem line.
package cnfio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wl-sat/yasat/internal/sat"
)

// Read parses r one line at a time into a *sat.CNF. Blank lines and
// surrounding whitespace are ignored. A line is rejected if any token fails
// to parse as a signed integer, equals zero, or names a variable the line
// already holds with the opposite sign.
func Read(r io.Reader) (*sat.CNF, error) {
	cnf := sat.NewCNF()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == "false" {
			cnf.AddClause(sat.NewClause())
			continue
		}

		cl, err := parseClause(line)
		if err != nil {
			return nil, fmt.Errorf("cnfio: line %d: %w", lineNo, err)
		}
		cnf.AddClause(cl)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cnfio: %w", err)
	}

	return cnf, nil
}

func parseClause(line string) (*sat.Clause, error) {
	cl := sat.NewClause()
	seen := map[int]bool{}
	for _, tok := range strings.Fields(line) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("token %q is not an integer", tok)
		}
		switch {
		case n == 0:
			return nil, fmt.Errorf("token 0 is not a valid variable")
		case seen[-n]:
			return nil, fmt.Errorf("tokens %d and %d contradict each other", -n, n)
		case n > 0:
			cl.AddPositive(sat.Variable(n))
		default:
			cl.AddNegative(sat.Variable(-n))
		}
		seen[n] = true
	}
	return cl, nil
}

// Write prints cnf back out in the same format Read accepts, one clause per
// line in clause order and one literal per token in the clause's own
// iteration order.
func Write(w io.Writer, cnf *sat.CNF) error {
	for _, cl := range cnf.Clauses() {
		if cl.IsEmpty() {
			if _, err := fmt.Fprintln(w, "false"); err != nil {
				return err
			}
			continue
		}
		parts := make([]string, 0, cl.Len())
		for _, l := range cl.Literals() {
			v := int(l.Var())
			if !l.IsPositive() {
				v = -v
			}
			parts = append(parts, strconv.Itoa(v))
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}
