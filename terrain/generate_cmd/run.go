// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/SoftbearStudios/heightmap/benchmark"
	"github.com/SoftbearStudios/heightmap/terrain"
	"github.com/SoftbearStudios/heightmap/terrain/diamond"
	"github.com/SoftbearStudios/heightmap/terrain/noise"
)

const (
	sourceDiamond = "diamond"
	sourcePerlin  = "perlin"
)

// Config is parsed from flags.
type Config struct {
	Factor       uint
	Offset       float64
	Seed         uint64
	Precision    int
	Perturbation string
	Source       string
	Bench        string
	BenchUnit    benchmark.Unit
	BenchLog     string
}

// Report summarizes a generated heightmap.
type Report struct {
	Source       string  `json:"source"`
	Side         int     `json:"side"`
	Seed         int64   `json:"seed"`
	Offset       float64 `json:"offset,omitempty"`
	Perturbation string  `json:"perturbation,omitempty"`
	Precision    int     `json:"precision"`
	terrain.Stats
}

func run(config Config) (*Report, error) {
	if config.Seed == 0 {
		config.Seed = uint64(uint32(time.Now().Unix()))
	}

	switch config.Precision {
	case 32:
		return generate[float32](config)
	case 64:
		return generate[float64](config)
	default:
		return nil, fmt.Errorf("invalid precision %d", config.Precision)
	}
}

func generate[T terrain.Scalar](config Config) (*Report, error) {
	report := &Report{
		Source:    config.Source,
		Precision: config.Precision,
	}

	var source terrain.Source[T]

	switch config.Source {
	case sourceDiamond:
		if config.Seed > math.MaxUint32 {
			return nil, fmt.Errorf("diamond seed %d does not fit in 32 bits", config.Seed)
		}

		perturbation, err := diamond.ParsePerturbation(config.Perturbation)
		if err != nil {
			return nil, err
		}

		g, err := diamond.NewWithOptions(diamond.Options[T]{
			Factor:       config.Factor,
			Offset:       T(config.Offset),
			Seed:         uint32(config.Seed),
			Perturbation: perturbation,
		})
		if err != nil {
			return nil, err
		}

		report.Seed = int64(g.Seed())
		report.Offset = float64(g.Offset())
		report.Perturbation = g.Perturbation().String()
		source = g
	case sourcePerlin:
		g := noise.New[T](config.Factor, int64(config.Seed))
		report.Seed = g.Seed()
		source = g
	default:
		return nil, fmt.Errorf("invalid source %q", config.Source)
	}

	if config.Bench != "" {
		b := benchmark.NewWithOptions(config.Bench, config.BenchUnit, benchmark.Options{Path: config.BenchLog})
		b.Start()
		source.Build()
		if err := b.Stop(); err != nil {
			// Benchmarking is optional, so don't fail the run
			log.Printf("benchmark error: %v", err)
		} else {
			log.Printf("%s: %d %s", b.Label(), b.Unit().Count(b.Elapsed()), b.Unit())
		}
	} else {
		source.Build()
	}

	report.Side = source.Side()
	report.Stats = terrain.Summarize(source.Map())
	return report, nil
}
