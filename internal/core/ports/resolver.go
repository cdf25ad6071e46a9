package ports

import (
	"context"
	"io"

	"go.trai.ch/reqlock/internal/core/domain"
)

// Resolver is the boundary to the dependency resolution engine.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// Compile resolves req.Declaration. In dry-run mode the manifest and one trailing
	// summary line are written to diag and req.Output is left untouched. Otherwise the
	// manifest is written to req.Output.
	Compile(ctx context.Context, req domain.CompileRequest, diag io.Writer) error
}
