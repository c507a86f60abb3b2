// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/SoftbearStudios/heightmap/benchmark"
	"github.com/SoftbearStudios/heightmap/terrain/diamond"
)

func main() {
	var (
		cpuProfile string
		config     Config
		unit       string
	)

	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.UintVar(&config.Factor, "factor", 8, "detail factor, side is 2^factor+1")
	flag.Float64Var(&config.Offset, "offset", 0.096, "offset, higher values give more even terrain")
	flag.Uint64Var(&config.Seed, "seed", 0, "random seed, at most 32 bits for the diamond source (0 uses the current time)")
	flag.IntVar(&config.Precision, "precision", 64, "bits of floating point precision (32 or 64)")
	flag.StringVar(&config.Perturbation, "perturb", diamond.PerturbFlat.String(), "perturbation (flat, literal or decay)")
	flag.StringVar(&config.Source, "source", sourceDiamond, "heightmap source (diamond or perlin)")
	flag.StringVar(&config.Bench, "bench", "", "benchmark label (empty disables benchmarking)")
	flag.StringVar(&unit, "bench-unit", benchmark.Microseconds.String(), "benchmark duration unit")
	flag.StringVar(&config.BenchLog, "bench-log", benchmark.DefaultPath, "benchmark log file")
	flag.Parse()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	var err error
	if config.BenchUnit, err = benchmark.ParseUnit(unit); err != nil {
		log.Fatal(err)
	}

	report, err := run(config)
	if err != nil {
		log.Fatal(err)
	}

	buf, err := json.Marshal(report)
	if err != nil {
		log.Fatal("could not encode report: ", err)
	}
	fmt.Println(string(buf))
}
