// Package backend runs a loaded program. The tree-walk interpreter is the
// only backend; the interface keeps the pipeline independent of it.
package backend

import "github.com/funvibe/miniscript/internal/pipeline"

// Backend is the interface for execution backends
type Backend interface {
	// Run executes ctx.Program. Language diagnostics are stored in the
	// context; the error is for host failures only.
	Run(ctx *pipeline.PipelineContext) error

	// Name returns the backend name for display
	Name() string
}
