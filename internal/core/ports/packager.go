package ports

import (
	"context"

	"github.com/xiao-chen/dist-test/internal/core/domain"
)

// Packager discovers test units in a project and packages their
// dependencies into isolated task definitions ready for archiving.
//
//go:generate go run go.uber.org/mock/mockgen -source=packager.go -destination=mocks/mock_packager.go -package=mocks
type Packager interface {
	// PackageTests returns the paths of the generated isolated files. An
	// empty slice means the project contains no test units.
	PackageTests(ctx context.Context, cfg *domain.Config, projectDir string) ([]string, error)
}
