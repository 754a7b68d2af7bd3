package backend

import (
	"fmt"
	"log/slog"

	"github.com/funvibe/miniscript/internal/evaluator"
	"github.com/funvibe/miniscript/internal/pipeline"
)

// TreeWalkBackend executes programs with the tree-walk evaluator.
type TreeWalkBackend struct {
	Logger *slog.Logger
}

func NewTreeWalk(logger *slog.Logger) *TreeWalkBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &TreeWalkBackend{Logger: logger}
}

func (b *TreeWalkBackend) Run(ctx *pipeline.PipelineContext) error {
	if ctx.Program == nil {
		return fmt.Errorf("no program to execute")
	}

	eval := evaluator.New(ctx.Out, ctx.Diag)
	eval.Reporter.SetColor(ctx.Color)
	eval.Logger = b.Logger.With("file", ctx.FilePath)

	eval.Run(ctx.Program)

	ctx.RuntimeErrors = eval.Reporter.Errors()
	b.Logger.Debug("program finished",
		"file", ctx.FilePath,
		"diagnostics", len(ctx.RuntimeErrors),
		"printed", len(eval.Reporter.Printed()))
	return nil
}

func (b *TreeWalkBackend) Name() string {
	return "tree-walk"
}
