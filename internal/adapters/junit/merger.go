// Package junit folds individual JUnit result files into one consolidated
// report.
package junit

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"

	"github.com/xiao-chen/dist-test/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// TestSuite models one <testsuite> element.
type TestSuite struct {
	XMLName  xml.Name   `xml:"testsuite"`
	Name     string     `xml:"name,attr"`
	Tests    int        `xml:"tests,attr"`
	Failures int        `xml:"failures,attr"`
	Errors   int        `xml:"errors,attr"`
	Skipped  int        `xml:"skipped,attr,omitempty"`
	Time     float64    `xml:"time,attr"`
	Cases    []TestCase `xml:"testcase"`
}

// TestCase models one <testcase> element.
type TestCase struct {
	Name      string   `xml:"name,attr"`
	ClassName string   `xml:"classname,attr"`
	Time      float64  `xml:"time,attr"`
	Failure   *Detail  `xml:"failure,omitempty"`
	Error     *Detail  `xml:"error,omitempty"`
	Skip      *struct{} `xml:"skipped,omitempty"`
}

// Detail carries a failure or error payload.
type Detail struct {
	Message string `xml:"message,attr,omitempty"`
	Type    string `xml:"type,attr,omitempty"`
	Body    string `xml:",chardata"`
}

func (c TestCase) failed() bool {
	return c.Failure != nil || c.Error != nil
}

func (c TestCase) key() string {
	return c.ClassName + "#" + c.Name
}

// Merger implements ports.ResultMerger over JUnit XML files.
type Merger struct {
	logger ports.Logger
}

// NewMerger creates a new Merger.
func NewMerger(logger ports.Logger) *Merger {
	return &Merger{logger: logger}
}

// Merge parses every input file and writes one consolidated <testsuite> to
// outputPath. Repeated executions of the same test are all kept, except
// that when ignoreFlaky is set, a test with at least one passing execution
// has its failing executions dropped: a flake is not a failure.
func (m *Merger) Merge(ctx context.Context, inputs []string, outputPath string, ignoreFlaky bool) error {
	suites := make([][]TestCase, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cases, err := readCases(path)
			if err != nil {
				return err
			}
			suites[i] = cases
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var all []TestCase
	for _, cases := range suites {
		all = append(all, cases...)
	}

	if ignoreFlaky {
		all = dropFlakyFailures(all)
	}

	merged := TestSuite{Name: "merged", Cases: all, Tests: len(all)}
	for _, c := range all {
		switch {
		case c.Error != nil:
			merged.Errors++
		case c.Failure != nil:
			merged.Failures++
		case c.Skip != nil:
			merged.Skipped++
		}
		merged.Time += c.Time
	}

	m.logger.Info(fmt.Sprintf("merged %d result files, %d failures remain",
		len(inputs), merged.Failures+merged.Errors))

	return writeSuite(outputPath, merged)
}

// dropFlakyFailures removes failing executions of tests that also passed.
func dropFlakyFailures(cases []TestCase) []TestCase {
	passed := make(map[string]bool)
	for _, c := range cases {
		if !c.failed() {
			passed[c.key()] = true
		}
	}

	kept := cases[:0]
	for _, c := range cases {
		if c.failed() && passed[c.key()] {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func readCases(path string) ([]TestCase, error) {
	data, err := os.ReadFile(path) //nolint:gosec // paths come from the artifact scan
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read result file"), "path", path)
	}

	var suite TestSuite
	if err := xml.Unmarshal(data, &suite); err == nil {
		return suite.Cases, nil
	}

	// Some producers wrap everything in <testsuites>.
	var wrapper struct {
		XMLName xml.Name    `xml:"testsuites"`
		Suites  []TestSuite `xml:"testsuite"`
	}
	if err := xml.Unmarshal(data, &wrapper); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse result file"), "path", path)
	}

	var cases []TestCase
	for _, s := range wrapper.Suites {
		cases = append(cases, s.Cases...)
	}
	return cases, nil
}

func writeSuite(path string, suite TestSuite) error {
	data, err := xml.MarshalIndent(suite, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode merged report")
	}
	data = append([]byte(xml.Header), data...)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write merged report"), "path", path)
	}
	return nil
}
