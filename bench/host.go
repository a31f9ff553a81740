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

package bench

import (
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

// Host describes the machine a run was measured on.
type Host struct {
	OS       string   `yaml:"os"`
	Arch     string   `yaml:"arch"`
	CPUs     int      `yaml:"cpus"`
	Features []string `yaml:"features,omitempty"`
}

type cpuFeature struct {
	name    string
	present bool
}

// HostInfo returns the current Host.
func HostInfo() Host {
	features := []cpuFeature{
		{"popcnt", cpu.X86.HasPOPCNT},
		{"sse4.2", cpu.X86.HasSSE42},
		{"avx", cpu.X86.HasAVX},
		{"avx2", cpu.X86.HasAVX2},
		{"bmi2", cpu.X86.HasBMI2},
		{"avx512f", cpu.X86.HasAVX512F},
		{"asimd", cpu.ARM64.HasASIMD},
		{"atomics", cpu.ARM64.HasATOMICS},
		{"sve", cpu.ARM64.HasSVE},
	}
	return Host{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
		CPUs: runtime.NumCPU(),
		Features: lo.FilterMap(features, func(f cpuFeature, _ int) (string, bool) {
			return f.name, f.present
		}),
	}
}
