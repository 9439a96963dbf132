// Command dpllsat decides satisfiability of a DIMACS CNF instance.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/kdsolve/dpllsat/internal/dimacs"
	"github.com/kdsolve/dpllsat/internal/sat"
)

var (
	flagCPUProfile = flag.String("cpuprofile", "", "write a pprof CPU profile to this file")
	flagMemProfile = flag.String("memprofile", "", "write a pprof heap profile to this file")
	flagTimeout    = flag.Duration("timeout", sat.DefaultOptions.Timeout, "search time budget before reporting TIMEOUT")
	flagGzip       = flag.Bool("gzip", false, "treat the instance file as gzip compressed")
)

type config struct {
	instanceFile string
	timeout      time.Duration
	gzipped      bool
	cpuProfile   string
	memProfile   string
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("usage: dpllsat [flags] <path-to-cnf>")
	}
	return &config{
		instanceFile: flag.Arg(0),
		timeout:      *flagTimeout,
		gzipped:      *flagGzip,
		cpuProfile:   *flagCPUProfile,
		memProfile:   *flagMemProfile,
	}, nil
}

func run(cfg *config) error {
	formula, err := dimacs.Parse(cfg.instanceFile, cfg.gzipped)
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	fmt.Println(cfg.instanceFile)
	fmt.Printf("| Vars: %d | Clauses: %d |\n", formula.NumVars(), formula.NumClauses())

	solver := sat.NewSolver(formula, sat.Options{Timeout: cfg.timeout})

	start := time.Now()
	verdict := solver.Solve()
	elapsed := time.Since(start)

	fmt.Printf("Result: %s\n", verdict)
	fmt.Printf("CPU time used: %.5f\n", elapsed.Seconds())

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile != "" {
		f, err := os.Create(cfg.cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile != "" {
		f, err := os.Create(cfg.memProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}
