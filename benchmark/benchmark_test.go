// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock returns each of times in turn.
func fakeClock(times ...time.Time) func() time.Time {
	return func() time.Time {
		t := times[0]
		times = times[1:]
		return t
	}
}

func readLog(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestBenchmark_Stop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "log.txt")
	start := time.Date(2022, 1, 23, 10, 0, 0, 0, time.UTC)

	b := NewWithOptions("build", Milliseconds, Options{
		Path:  path,
		Clock: fakeClock(start, start.Add(1500*time.Microsecond)),
	})
	b.Start()
	require.NoError(t, b.Stop())

	assert.Equal(t, 1500*time.Microsecond, b.Elapsed())

	records := readLog(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, []string{
		"build",
		"Sun Jan 23 10:00:00 2022",
		"Sun Jan 23 10:00:00 2022",
		"1",
		"milliseconds",
	}, records[0])
}

func TestBenchmark_NoTick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	now := time.Date(2022, 1, 23, 10, 0, 0, 0, time.UTC)

	b := NewWithOptions("instant", Seconds, Options{Path: path, Clock: fakeClock(now, now)})
	b.Start()
	require.NoError(t, b.Stop())

	records := readLog(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, NoTick, records[0][3])
}

func TestBenchmark_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	for i := 0; i < 3; i++ {
		b := NewWithOptions("again", Nanoseconds, Options{Path: path})
		b.Start()
		require.NoError(t, b.Stop())
	}

	assert.Len(t, readLog(t, path), 3)
}

func TestBenchmark_Concurrent(t *testing.T) {
	const n = 32
	path := filepath.Join(t.TempDir(), "log.txt")

	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := NewWithOptions("concurrent", Microseconds, Options{Path: path})
			b.Start()
			errs <- b.Stop()
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	records := readLog(t, path)
	assert.Len(t, records, n)
	for _, record := range records {
		assert.Len(t, record, 5)
		assert.Equal(t, "concurrent", record[0])
	}
}

func TestNew_Defaults(t *testing.T) {
	b := New("defaults", Hours)
	assert.Equal(t, DefaultPath, b.Path())
	assert.Equal(t, "defaults", b.Label())
	assert.Equal(t, Hours, b.Unit())
}

func TestParseUnit(t *testing.T) {
	for _, unit := range units {
		parsed, err := ParseUnit(unit.String())
		require.NoError(t, err)
		assert.Equal(t, unit, parsed)
	}

	_, err := ParseUnit("fortnights")
	assert.Error(t, err)
}

func TestUnit_Count(t *testing.T) {
	assert.Equal(t, int64(2), Minutes.Count(150*time.Second))
	assert.Equal(t, int64(1500), Microseconds.Count(1500*time.Microsecond))
	assert.Equal(t, int64(0), Hours.Count(time.Minute))
	assert.Equal(t, int64(5), Unit{}.Count(5))
}

func TestUnit_String(t *testing.T) {
	assert.Equal(t, "seconds", Seconds.String())
	assert.Equal(t, "units", Unit{}.String())
}

func TestBenchmark_ZeroUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	start := time.Date(2022, 1, 23, 10, 0, 0, 0, time.UTC)

	b := NewWithOptions("generic", Unit{}, Options{Path: path, Clock: fakeClock(start, start.Add(3))})
	b.Start()
	require.NoError(t, b.Stop())

	records := readLog(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"3", "units"}, records[0][3:])
}

func TestAppendLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	require.NoError(t, AppendLog(path, []interface{}{"a", 1.234, float32(2), 7}))

	records := readLog(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"a", "1.23", "2.00", "7"}, records[0])
}
