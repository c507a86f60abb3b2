// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package benchmark times a section of code and appends the result to a log file.
//
//	b := benchmark.New("build", benchmark.Milliseconds)
//	b.Start()
//	// ...
//	err := b.Stop()
package benchmark

import "time"

// DefaultPath is the log file used when Options.Path is empty.
const DefaultPath = "benchmark/log.txt"

// NoTick is logged in place of an elapsed time when the clock did not advance.
const NoTick = "internal clock did not tick during benchmark"

// timeFormat matches ctime.
const timeFormat = time.ANSIC

// Options configures a Benchmark.
type Options struct {
	// Path of the log file. Defaults to DefaultPath.
	Path string
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Benchmark records how long it takes between Start and Stop.
// A Benchmark is used by one goroutine, but any number of Benchmarks may share a log file.
type Benchmark struct {
	label     string
	unit      Unit
	path      string
	clock     func() time.Time
	started   time.Time
	completed time.Time
}

func New(label string, unit Unit) *Benchmark {
	return NewWithOptions(label, unit, Options{})
}

func NewWithOptions(label string, unit Unit, options Options) *Benchmark {
	if options.Path == "" {
		options.Path = DefaultPath
	}
	if options.Clock == nil {
		options.Clock = time.Now
	}
	return &Benchmark{
		label: label,
		unit:  unit,
		path:  options.Path,
		clock: options.Clock,
	}
}

// Start (re)starts the benchmark.
func (b *Benchmark) Start() {
	b.started = b.clock()
}

// Stop ends the benchmark and appends a record of it to the log:
// label, start time, completion time, elapsed count (or NoTick) and unit.
func (b *Benchmark) Stop() error {
	b.completed = b.clock()
	elapsed := b.Elapsed()

	fields := []interface{}{
		b.label,
		b.started.Format(timeFormat),
		b.completed.Format(timeFormat),
	}

	if elapsed == 0 {
		fields = append(fields, NoTick, "")
	} else {
		fields = append(fields, b.unit.Count(elapsed), b.unit)
	}

	return AppendLog(b.path, fields)
}

// Elapsed is the time between the last Start and Stop.
func (b *Benchmark) Elapsed() time.Duration {
	return b.completed.Sub(b.started)
}

func (b *Benchmark) Label() string {
	return b.label
}

func (b *Benchmark) Unit() Unit {
	return b.unit
}

func (b *Benchmark) Path() string {
	return b.path
}
