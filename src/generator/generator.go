package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"linear_structures/src/workload"
)

func main() {
	var outPath string
	var numValues int
	var mean, stdDev float64
	var unique bool
	var seed uint64

	flag.StringVar(&outPath, "out", "out.txt", "The output file")
	flag.IntVar(&numValues, "n", 0, "The number of values")
	flag.Float64Var(&mean, "mean", 0, "The mean of the drawn values")
	flag.Float64Var(&stdDev, "stddev", 0, "The standard deviation of the drawn values")
	flag.BoolVar(&unique, "unique", false, "Draw distinct values only")
	flag.Uint64Var(&seed, "seed", 1, "The random seed")

	flag.Parse()

	err := false
	if numValues <= 0 {
		fmt.Fprintln(os.Stderr, "Must specify a positive number of values")
		err = true
	}
	if stdDev < 0 {
		fmt.Fprintln(os.Stderr, "Standard deviation cannot be negative")
		err = true
	}

	if err {
		os.Exit(1)
	}

	w, genErr := workload.GenerateWorkload(numValues, mean, stdDev, unique, seed)
	if genErr != nil {
		fmt.Fprintln(os.Stderr, genErr)
		os.Exit(1)
	}

	if writeErr := os.WriteFile(outPath, []byte(w.String()), 0666); writeErr != nil {
		log.Fatal(writeErr)
	}
	fmt.Printf("Wrote %d values (%d distinct) to %v\n", len(w.Values), w.Distinct(), outPath)
}
