package transcript

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/funvibe/miniscript/internal/evaluator"
	"github.com/funvibe/miniscript/internal/pipeline"
)

// Processor records the finished run when a Recorder is configured.
type Processor struct {
	Recorder *Recorder
	Logger   *slog.Logger
}

func NewProcessor(r *Recorder, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Recorder: r, Logger: logger}
}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if p.Recorder == nil || ctx.Program == nil || ctx.Backend == "" {
		return ctx
	}

	run := Run{
		ID:          ctx.RunID,
		Program:     ctx.FilePath,
		Backend:     ctx.Backend,
		StartedAt:   ctx.StartedAt,
		FinishedAt:  ctx.FinishedAt,
		Diagnostics: FromRuntimeErrors(ctx.RuntimeErrors),
	}
	if ctx.Captured != nil {
		run.Output = ctx.Captured.String()
	}

	c := ctx.Context
	if c == nil {
		c = context.Background()
	}
	id, err := p.Recorder.Record(c, run)
	if err != nil {
		ctx.Errors = append(ctx.Errors, fmt.Errorf("transcript: %w", err))
		return ctx
	}
	ctx.RunID = id
	p.Logger.Info("run recorded", "run", id, "driver", p.Recorder.Driver(), "diagnostics", len(run.Diagnostics))
	return ctx
}

// FromRuntimeErrors converts evaluator errors to transcript rows.
func FromRuntimeErrors(errs []*evaluator.RuntimeError) []Diagnostic {
	out := make([]Diagnostic, len(errs))
	for i, e := range errs {
		out[i] = Diagnostic{
			Seq:        i,
			Line:       e.Line,
			Kind:       e.Kind.String(),
			Message:    e.Error(),
			Suppressed: e.Suppressed,
		}
	}
	return out
}
