// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package report writes sortbench results: the plain text report, a YAML
// document with host details and fitted growth exponents, and a log-log
// chart of every series.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ajroetker/go-sortbench/bench"
)

// WriteText writes series in the text report format:
//
//	Algorithm: Radix Sort
//	Size: 1000, Time: 0.000123
func WriteText(w io.Writer, series []bench.Series) error {
	bw := bufio.NewWriter(w)
	for _, s := range series {
		fmt.Fprintf(bw, "Algorithm: %s\n", s.Name)
		for _, p := range s.Points {
			fmt.Fprintf(bw, "Size: %d, Time: %s\n", p.Size, strconv.FormatFloat(p.Elapsed.Seconds(), 'f', -1, 64))
		}
	}
	return bw.Flush()
}

// WriteTextFile writes the text report to path, replacing any existing file.
func WriteTextFile(path string, series []bench.Series) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteText(w, series)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
