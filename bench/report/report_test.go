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

package report_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/bench/report"
)

func testSeries() []bench.Series {
	return []bench.Series{
		{Name: "Radix Sort", Points: []bench.Point{
			{Size: 1000, Elapsed: 250 * time.Microsecond},
			{Size: 10000, Elapsed: 2500 * time.Microsecond},
		}},
		{Name: "Selection Sort", Points: []bench.Point{
			{Size: 1000, Elapsed: 10 * time.Millisecond},
			{Size: 10000, Elapsed: time.Second},
		}},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, testSeries()))

	want := "Algorithm: Radix Sort\n" +
		"Size: 1000, Time: 0.00025\n" +
		"Size: 10000, Time: 0.0025\n" +
		"Algorithm: Selection Sort\n" +
		"Size: 1000, Time: 0.01\n" +
		"Size: 10000, Time: 1\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, nil))
	assert.Empty(t, buf.String())

	require.NoError(t, report.WriteText(&buf, []bench.Series{{Name: "Merge Sort"}}))
	assert.Equal(t, "Algorithm: Merge Sort\n", buf.String())
}

func TestWriteTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sort_times.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale contents that are longer than the report\n"), 0o644))
	require.NoError(t, report.WriteTextFile(path, testSeries()[:1]))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Algorithm: Radix Sort\nSize: 1000, Time: 0.00025\nSize: 10000, Time: 0.0025\n", string(got))
}

func TestWriteTextFile_BadPath(t *testing.T) {
	err := report.WriteTextFile(filepath.Join(t.TempDir(), "missing", "out.txt"), testSeries())
	assert.Error(t, err)
}

func TestYAML(t *testing.T) {
	host := bench.Host{OS: "linux", Arch: "amd64", CPUs: 8, Features: []string{"avx2"}}
	series := append(testSeries(), bench.Series{Name: "Merge Sort", Points: []bench.Point{{Size: 10, Elapsed: time.Millisecond}}})
	doc := report.NewDocument(host, 42, series)

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, report.WriteYAMLFile(path, doc))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got report.Document
	require.NoError(t, yaml.Unmarshal(raw, &got))
	assert.Equal(t, host, got.Host)
	assert.Equal(t, uint64(42), got.Seed)
	require.Len(t, got.Series, 3)

	assert.Equal(t, "Radix Sort", got.Series[0].Name)
	require.NotNil(t, got.Series[0].Exponent)
	assert.InDelta(t, 1.0, *got.Series[0].Exponent, 1e-9)
	assert.Equal(t, []report.PointEntry{{Size: 1000, Seconds: 0.00025}, {Size: 10000, Seconds: 0.0025}}, got.Series[0].Points)

	require.NotNil(t, got.Series[1].Exponent)
	assert.InDelta(t, 2.0, *got.Series[1].Exponent, 1e-9)

	// A single point cannot be fitted.
	assert.Nil(t, got.Series[2].Exponent)
	assert.NotContains(t, string(raw), "exponent: null")
}

func TestChart_Save(t *testing.T) {
	for _, name := range []string{"plot.png", "plot.svg"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, report.NewChart("Time Complexity Comparisons").Save(path, testSeries()))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestChart_Plot(t *testing.T) {
	chart := report.NewChart("Time Complexity Comparisons")
	p, err := chart.Plot(testSeries())
	require.NoError(t, err)
	assert.Equal(t, "Time Complexity Comparisons", p.Title.Text)
	assert.Equal(t, "Size", p.X.Label.Text)
	assert.Equal(t, "Time (s)", p.Y.Label.Text)
	assert.Equal(t, 1000.0, p.X.Min)
	assert.Equal(t, 10000.0, p.X.Max)
	assert.InDelta(t, 0.00025, p.Y.Min, 1e-12)
	assert.InDelta(t, 1.0, p.Y.Max, 1e-12)
}

func TestChart_SinglePoint(t *testing.T) {
	p, err := report.NewChart("one").Plot([]bench.Series{
		{Name: "Radix Sort", Points: []bench.Point{{Size: 100, Elapsed: time.Second}}},
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, p.X.Min)
	assert.Equal(t, 200.0, p.X.Max)
	assert.Equal(t, 0.5, p.Y.Min)
	assert.Equal(t, 2.0, p.Y.Max)
}

func TestChart_NothingToPlot(t *testing.T) {
	for name, series := range map[string][]bench.Series{
		"none":         nil,
		"no points":    {{Name: "Radix Sort"}},
		"zero elapsed": {{Name: "Radix Sort", Points: []bench.Point{{Size: 10}}}},
		"zero size":    {{Name: "Radix Sort", Points: []bench.Point{{Elapsed: time.Second}}}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := report.NewChart("empty").Plot(series)
			assert.True(t, errors.Is(err, report.ErrNothingToPlot), "got %v", err)
		})
	}
}
