package ports

import (
	"context"

	"github.com/xiao-chen/dist-test/internal/core/domain"
)

// Archiver uploads dependency archives for a set of isolated task
// definitions and returns the resulting content-address manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// Archive invokes the archiving tool, retrying transient failures,
	// and reads the manifest it wrote to hashesPath.
	Archive(ctx context.Context, cfg *domain.Config, isolatedFiles []string, hashesPath string) (domain.ArchiveManifest, error)
}
