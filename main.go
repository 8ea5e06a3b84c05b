package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/wl-sat/yasat/internal/cnfio"
	"github.com/wl-sat/yasat/internal/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

func parseConfig() (*config, error) {
	flag.Parse()
	return &config{
		memProfile: *flagMemProfile,
		cpuProfile: *flagCPUProfile,
	}, nil
}

type config struct {
	memProfile bool
	cpuProfile bool
}

// readInteractive reads one clause per line from in until the first empty
// line, echoing a prompt to out between lines the way the original prototype
// this CLI is modelled on did.
func readInteractive(in io.Reader, out io.Writer) (*sat.CNF, error) {
	cnf := sat.NewCNF()
	scanner := bufio.NewScanner(in)

	for i := 1; ; i++ {
		fmt.Fprintf(out, "  cls %02d: ", i)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			break
		}

		one, err := cnfio.Read(strings.NewReader(line))
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
			i--
			continue
		}
		for _, cl := range one.Clauses() {
			cnf.AddClause(cl)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cnf, nil
}

func run(cfg *config) error {
	cnf, err := readInteractive(os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("could not read formula: %w", err)
	}

	fmt.Println("parsed formula:")
	if err := cnfio.Write(os.Stdout, cnf); err != nil {
		return fmt.Errorf("could not print formula: %w", err)
	}

	t := time.Now()
	verdict, stats := sat.Decide(cnf)
	elapsed := time.Since(t)

	fmt.Printf("c time (sec):  %f\n", elapsed.Seconds())
	fmt.Printf("c evaluations: %d\n", stats.Evaluations)
	fmt.Printf("c ratio:       %s\n", evaluationRatio(stats.Evaluations, cnf.HighestVar()))
	fmt.Printf("c verdict:     %s\n", verdict)

	return nil
}

// evaluationRatio formats evaluations / 2^highestVar. 2^highestVar overflows
// a machine float once highestVar exceeds roughly 1023, and loses precision
// well before that, so the ratio is computed with math/big.
func evaluationRatio(evaluations int, highestVar sat.Variable) string {
	space := new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(highestVar)))
	ratio := new(big.Float).Quo(big.NewFloat(float64(evaluations)), space)
	return ratio.Text('e', 6)
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
