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
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sortbench/bench"
)

// Document is the YAML report.
type Document struct {
	Host   bench.Host    `yaml:"host"`
	Seed   uint64        `yaml:"seed"`
	Series []SeriesEntry `yaml:"series"`
}

// SeriesEntry is one series of a Document.
type SeriesEntry struct {
	Name string `yaml:"name"`
	// Exponent is the fitted growth exponent, absent when the series has too
	// few usable points.
	Exponent *float64     `yaml:"exponent,omitempty"`
	Points   []PointEntry `yaml:"points"`
}

type PointEntry struct {
	Size    int     `yaml:"size"`
	Seconds float64 `yaml:"seconds"`
}

// NewDocument builds the YAML report for series measured on host.
func NewDocument(host bench.Host, seed uint64, series []bench.Series) Document {
	doc := Document{Host: host, Seed: seed}
	for _, s := range series {
		entry := SeriesEntry{Name: s.Name}
		if exp, ok := bench.Fit(s); ok {
			entry.Exponent = &exp
		}
		for _, p := range s.Points {
			entry.Points = append(entry.Points, PointEntry{Size: p.Size, Seconds: p.Elapsed.Seconds()})
		}
		doc.Series = append(doc.Series, entry)
	}
	return doc
}

// WriteYAML encodes doc to w.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// WriteYAMLFile writes doc to path, replacing any existing file.
func WriteYAMLFile(path string, doc Document) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteYAML(w, doc)
	})
}
