// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// logMutex is shared by all Benchmarks so records from different goroutines never interleave.
var logMutex sync.Mutex

// AppendLog appends fields as one CSV record to filename, creating it and its
// directory if needed.
func AppendLog(filename string, fields []interface{}) (err error) {
	logMutex.Lock()
	defer logMutex.Unlock()

	if dir := filepath.Dir(filename); dir != "." {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return
		}
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	w := csv.NewWriter(f)

	fieldStrings := make([]string, 0, len(fields))

	for _, field := range fields {
		var fieldString string

		switch v := field.(type) {
		case float32, float64:
			fieldString = fmt.Sprintf("%.2f", v)
		default:
			fieldString = fmt.Sprint(v)
		}

		fieldStrings = append(fieldStrings, fieldString)
	}

	err = w.Write(fieldStrings)
	if err != nil {
		return
	}

	w.Flush()
	// Error from flush
	err = w.Error()
	return
}
