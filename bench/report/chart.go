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

package report

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ajroetker/go-sortbench/bench"
)

// ErrNothingToPlot is returned when no series has a point that can be drawn
// on log axes.
var ErrNothingToPlot = errors.New("report: no positive points to plot")

// Chart renders series as lines on log-log axes.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// NewChart returns a Chart with the default labels and size.
func NewChart(title string) Chart {
	return Chart{
		Title:  title,
		XLabel: "Size",
		YLabel: "Time (s)",
		Width:  6.4 * vg.Inch,
		Height: 4.8 * vg.Inch,
	}
}

// Plot builds the plot for series. Points with a non-positive size or
// duration are left out since log axes cannot show them.
func (c Chart) Plot(series []bench.Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{}
	p.Y.Tick.Marker = plot.LogTicks{}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	drawn := 0
	for i, s := range series {
		var xys plotter.XYs
		for _, pt := range s.Points {
			if pt.Size <= 0 || pt.Elapsed <= 0 {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(pt.Size), Y: pt.Elapsed.Seconds()})
		}
		if len(xys) == 0 {
			continue
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
		drawn++
	}
	if drawn == 0 {
		return nil, ErrNothingToPlot
	}

	// A degenerate range would be padded to include zero.
	widenLogRange(&p.X.Min, &p.X.Max)
	widenLogRange(&p.Y.Min, &p.Y.Max)
	return p, nil
}

// Save renders series to path. The image format follows the file extension
// (png, svg, pdf, ...).
func (c Chart) Save(path string, series []bench.Series) error {
	p, err := c.Plot(series)
	if err != nil {
		return err
	}
	if err := p.Save(c.Width, c.Height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

func widenLogRange(lo, hi *float64) {
	if *lo == *hi {
		*lo /= 2
		*hi *= 2
	}
}
