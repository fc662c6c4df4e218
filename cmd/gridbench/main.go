// SPDX-License-Identifier: MIT
// Package: lvlgrid/cmd/gridbench
//
// gridbench times DC power-flow and LOPF solves on generated networks of
// increasing size and prints a fixed-width table of median wall times.
//
// Usage:
//
//	gridbench -mode all -runs 5 -seed 42
//	gridbench -mode lopf -backend highs -cap 250 -sizes 10,100,1000

package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvlgrid/bbus"
	"github.com/katalvlaran/lvlgrid/dcflow"
	"github.com/katalvlaran/lvlgrid/gridgen"
	"github.com/katalvlaran/lvlgrid/lopf"
)

var (
	dcSizes   = []int{3, 10, 50, 100, 500, 1000, 2000}
	lopfSizes = []int{3, 10, 50, 100, 500}
)

// backends maps -backend names to engine constructors; platform-gated
// files register more entries in init.
var backends = map[string]func() lopf.Backend{
	"simplex": func() lopf.Backend { return lopf.Simplex{} },
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func main() {
	mode := flag.String("mode", "all", `sweep to run: "dc", "lopf", or "all"`)
	runs := flag.Int("runs", 5, "timed solves per size; the table reports the median")
	seed := flag.Int64("seed", 42, "network generator seed")
	backendName := flag.String("backend", "simplex",
		"LOPF engine, one of: "+strings.Join(backendNames(), ", "))
	capacity := flag.Float64("cap", 0, "uniform LOPF line capacity in MW; 0 leaves lines unconstrained")
	sizes := flag.String("sizes", "", "comma-separated bus counts overriding the default sweeps")
	flag.Parse()

	switch *mode {
	case "dc", "lopf", "all":
	default:
		log.Fatalf("unknown -mode %q (want dc, lopf, or all)", *mode)
	}
	if *runs < 1 {
		log.Fatalf("-runs must be at least 1, got %d", *runs)
	}
	mkBackend, ok := backends[*backendName]
	if !ok {
		log.Fatalf("unknown -backend %q (available: %s)", *backendName, strings.Join(backendNames(), ", "))
	}

	dcList, lopfList := dcSizes, lopfSizes
	if *sizes != "" {
		list, err := parseSizes(*sizes)
		if err != nil {
			log.Fatalf("bad -sizes: %v", err)
		}
		dcList, lopfList = list, list
	}

	if *mode == "dc" || *mode == "all" {
		runDC(dcList, *runs, *seed)
	}
	if *mode == "lopf" || *mode == "all" {
		opts := lopf.DefaultOptions()
		opts.Backend = mkBackend()
		if *capacity > 0 {
			opts.LineCapacity = *capacity
		}
		runLOPF(lopfList, *runs, *seed, opts, *backendName)
	}
}

// runDC sweeps DC power flow. Network generation stays outside the timed
// section; every timed iteration is an independent solve.
func runDC(sizes []int, runs int, seed int64) {
	fmt.Println("[DC power flow]")
	printHeader()
	opts := dcflow.Options{Scale: bbus.VoltageBase(380)}
	for _, n := range sizes {
		net, err := gridgen.Random(n, seed)
		if err != nil {
			log.Fatalf("generate n=%d: %v", n, err)
		}
		times := make([]time.Duration, runs)
		for i := range times {
			start := time.Now()
			if _, err := dcflow.Solve(net, opts); err != nil {
				log.Fatalf("dcflow n=%d: %v", n, err)
			}
			times[i] = time.Since(start)
		}
		printRow(n, len(net.Lines()), runs, median(times))
	}
	fmt.Println()
}

// runLOPF sweeps the optimizer. Solve assembles the LP from scratch on
// every call, so each timed run covers formulation plus the engine.
func runLOPF(sizes []int, runs int, seed int64, opts lopf.Options, engine string) {
	fmt.Printf("[LOPF, %s backend]\n", engine)
	printHeader()
	for _, n := range sizes {
		net, err := gridgen.Random(n, seed)
		if err != nil {
			log.Fatalf("generate n=%d: %v", n, err)
		}
		times := make([]time.Duration, runs)
		for i := range times {
			start := time.Now()
			res, err := lopf.Solve(net, opts)
			if err != nil {
				log.Fatalf("lopf n=%d: %v", n, err)
			}
			if !res.Converged {
				log.Fatalf("lopf n=%d: %s", n, res.Status)
			}
			times[i] = time.Since(start)
		}
		printRow(n, len(net.Lines()), runs, median(times))
	}
	fmt.Println()
}

func printHeader() {
	fmt.Printf("%-8s %8s %6s %14s\n", "buses", "lines", "runs", "median/solve")
	fmt.Println(strings.Repeat("-", 39))
}

func printRow(buses, lines, runs int, med time.Duration) {
	fmt.Printf("%-8d %8d %6d %14s\n", buses, lines, runs, med)
}

// median returns the middle element (or the mean of the middle pair) of a
// copy of ds.
func median(ds []time.Duration) time.Duration {
	s := append([]time.Duration(nil), ds...)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}

func parseSizes(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if n < 2 {
			return nil, fmt.Errorf("size %d: need at least 2 buses", n)
		}
		out = append(out, n)
	}
	return out, nil
}
