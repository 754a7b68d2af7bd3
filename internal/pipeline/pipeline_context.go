package pipeline

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/funvibe/miniscript/internal/ast"
	"github.com/funvibe/miniscript/internal/evaluator"
)

// PipelineContext carries a single run through the processing stages.
type PipelineContext struct {
	Context  context.Context
	FilePath string
	Program  *ast.Program

	// Out receives program output, Diag receives diagnostics.
	Out  io.Writer
	Diag io.Writer
	// Captured, when set, holds a copy of everything written to Out.
	Captured *bytes.Buffer
	Color    bool

	RunID      string
	Backend    string
	StartedAt  time.Time
	FinishedAt time.Time

	// Errors are host failures: a tree that cannot be loaded, a transcript
	// that cannot be written. Language diagnostics go to RuntimeErrors.
	Errors        []error
	RuntimeErrors []*evaluator.RuntimeError
}

func NewPipelineContext(filePath string, out, diag io.Writer) *PipelineContext {
	return &PipelineContext{
		Context:  context.Background(),
		FilePath: filePath,
		Out:      out,
		Diag:     diag,
	}
}

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}
