package ports

import (
	"context"
	"time"
)

// Sleeper abstracts blocking delays so retry backoff can be made
// deterministic in tests.
//
//go:generate go run go.uber.org/mock/mockgen -source=sleeper.go -destination=mocks/mock_sleeper.go -package=mocks
type Sleeper interface {
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the
	// latter case.
	Sleep(ctx context.Context, d time.Duration) error
}
