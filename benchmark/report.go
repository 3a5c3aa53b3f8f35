// SPDX-License-Identifier: MIT

package benchmark

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sys/cpu"
)

// Result is the outcome of one timed case.
type Result struct {
	Group      string
	Name       string
	Size       int
	Elapsed    time.Duration
	Throughput float64 // in Unit; 0 when not applicable
	Unit       string
	Err        error
}

// Platform describes the host the suite ran on.
type Platform struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	Features []string
}

// DetectPlatform reads the CPU features relevant to dense kernels.
func DetectPlatform() Platform {
	p := Platform{GOOS: runtime.GOOS, GOARCH: runtime.GOARCH, NumCPU: runtime.NumCPU()}
	add := func(name string, ok bool) {
		if ok {
			p.Features = append(p.Features, name)
		}
	}
	add("sse4.2", cpu.X86.HasSSE42)
	add("avx", cpu.X86.HasAVX)
	add("avx2", cpu.X86.HasAVX2)
	add("fma", cpu.X86.HasFMA)
	add("avx512f", cpu.X86.HasAVX512F)
	add("asimd", cpu.ARM64.HasASIMD)
	add("sve", cpu.ARM64.HasSVE)

	return p
}

func (p Platform) String() string {
	feats := "none"
	if len(p.Features) > 0 {
		feats = strings.Join(p.Features, " ")
	}

	return fmt.Sprintf("%s/%s, %d CPUs, features: %s", p.GOOS, p.GOARCH, p.NumCPU, feats)
}

// Report is the full outcome of Suite.Run.
type Report struct {
	Platform Platform
	Started  time.Time
	Total    time.Duration
	Results  []Result
	Checks   []Check
}

// Passed reports whether every accuracy check passed and no case failed.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if res.Err != nil {
			return false
		}
	}
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}

	return true
}

const (
	_rptBanner   = "========================================"
	_rptRule     = "----------------------------------------"
	_rptNameCol  = 40
	_rptTimeCol  = 10
	_rptPassText = "PASS"
	_rptFailText = "FAIL"
)

// WriteTo renders the report as grouped text tables.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n  DENSE LINEAR ALGEBRA BENCHMARK SUITE\n%s\n", _rptBanner, _rptBanner)
	fmt.Fprintf(&b, "Platform: %s\n\n", r.Platform)

	group := ""
	for _, res := range r.Results {
		if res.Group != group {
			if group != "" {
				b.WriteByte('\n')
			}
			group = res.Group
			fmt.Fprintf(&b, "%s\n  %s\n%s\n", _rptRule, group, _rptRule)
		}
		fmt.Fprintf(&b, "%-*s%*.3f ms", _rptNameCol, res.Name, _rptTimeCol, float64(res.Elapsed)/float64(time.Millisecond))
		switch {
		case res.Err != nil:
			fmt.Fprintf(&b, " (error: %v)", res.Err)
		case res.Unit != "":
			fmt.Fprintf(&b, " (%.6f %s)", res.Throughput, res.Unit)
		}
		b.WriteByte('\n')
	}

	if len(r.Checks) > 0 {
		if group != "" {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\n  Accuracy Tests\n%s\n", _rptRule, _rptRule)
		for _, c := range r.Checks {
			status := _rptPassText
			if !c.Passed {
				status = _rptFailText
			}
			fmt.Fprintf(&b, "%s accuracy: %s", c.Name, status)
			if c.Err != nil {
				fmt.Fprintf(&b, " (%v)", c.Err)
			}
			b.WriteByte('\n')
		}
	}

	fmt.Fprintf(&b, "%s\n        BENCHMARK SUITE COMPLETE (%s)\n%s\n", _rptBanner, r.Total.Round(time.Millisecond), _rptBanner)
	n, err := io.WriteString(w, b.String())

	return int64(n), err
}
