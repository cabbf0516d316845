package ports

import (
	"context"

	"github.com/xiao-chen/dist-test/internal/core/domain"
)

// Reporter pushes a finished job's results to the results dashboard.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	Report(ctx context.Context, cfg *domain.Config, jobID string) error
}
