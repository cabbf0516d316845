package ports

import (
	"context"

	"github.com/xiao-chen/dist-test/internal/core/domain"
)

// Submitter hands a task-list file to the distributed-execution client.
//
//go:generate go run go.uber.org/mock/mockgen -source=submitter.go -destination=mocks/mock_submitter.go -package=mocks
type Submitter interface {
	// Submit blocks until the client exits. Exit statuses 0 and
	// tests-failed are reported through the result; any other nonzero
	// status is an error.
	Submit(ctx context.Context, cfg *domain.Config, taskListPath string, opts domain.SubmitOptions) (*domain.SubmissionResult, error)
}
