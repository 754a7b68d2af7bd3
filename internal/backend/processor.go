package backend

import (
	"fmt"
	"time"

	"github.com/funvibe/miniscript/internal/pipeline"
)

// ExecutionProcessor implements pipeline.Processor to run a Backend
type ExecutionProcessor struct {
	Backend Backend
}

func NewExecutionProcessor(b Backend) *ExecutionProcessor {
	return &ExecutionProcessor{Backend: b}
}

func (p *ExecutionProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	// If previous steps failed, don't run execution
	if ctx.Program == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	ctx.Backend = p.Backend.Name()
	ctx.StartedAt = time.Now()
	err := p.Backend.Run(ctx)
	ctx.FinishedAt = time.Now()

	if err != nil {
		ctx.Errors = append(ctx.Errors, fmt.Errorf("%s: %w", p.Backend.Name(), err))
	}
	return ctx
}
