package ports

import "context"

// ResultMerger folds individual test-result files into one consolidated
// report.
//
//go:generate go run go.uber.org/mock/mockgen -source=merger.go -destination=mocks/mock_merger.go -package=mocks
type ResultMerger interface {
	// Merge reads every input file and writes the consolidated report to
	// outputPath. When ignoreFlaky is set, a test that both failed and
	// passed across the inputs counts as passed.
	Merge(ctx context.Context, inputs []string, outputPath string, ignoreFlaky bool) error
}
