package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiao-chen/dist-test/internal/core/domain"
	"go.trai.ch/zerr"
)

// decorate attaches metadata the way the adapters do: the sentinel stays in
// the chain as the cause so errors.Is keeps matching it.
func decorate(sentinel error, msg, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, msg), key, value)
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, domain.ExitSuccess},
		{"tests failed", domain.ErrTestsFailed, domain.ExitTestsFailed},
		{"tests failed with metadata", decorate(domain.ErrTestsFailed, "job finished with failing tests", "job_id", "abc"), domain.ExitTestsFailed},
		{"no tests found", domain.ErrNoTestsFound, domain.ExitNoTests},
		{"invalid argument", domain.ErrInvalidArgument, domain.ExitUsage},
		{"task limit exceeded", domain.ErrTaskLimitExceeded, domain.ExitUsage},
		{"external tool without recorded code", domain.ErrExternalTool, domain.ExitUsage},
		{"external tool propagates child code", decorate(domain.ErrExternalTool, "tool failed", "exit_code", 42), 42},
		{"reporting failure propagates child code", decorate(domain.ErrReportingFailed, "reporting script exited nonzero", "exit_code", 5), 5},
		{"missing job id", domain.ErrMissingJobID, domain.ExitUsage},
		{"unknown error", errors.New("boom"), domain.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExitCodeFor(tt.err))
		})
	}
}

func TestExitCodeFor_WrappedSentinel(t *testing.T) {
	err := zerr.Wrap(decorate(domain.ErrExternalTool, "tool failed", "exit_code", 3), "archiving failed")
	assert.Equal(t, 3, domain.ExitCodeFor(err))
}

// Attaching metadata must never sever the sentinel from the chain; the
// whole exit-code mapping depends on errors.Is still matching afterwards.
func TestDecoratedSentinelsRemainMatchable(t *testing.T) {
	sentinels := []error{
		domain.ErrInvalidArgument,
		domain.ErrTaskLimitExceeded,
		domain.ErrNoTestsFound,
		domain.ErrExternalTool,
		domain.ErrTestsFailed,
		domain.ErrMissingJobID,
		domain.ErrReportingFailed,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			decorated := decorate(sentinel, "context", "key", "value")
			assert.True(t, errors.Is(decorated, sentinel))

			chained := zerr.With(decorated, "second", 2)
			assert.True(t, errors.Is(chained, sentinel))
		})
	}
}
