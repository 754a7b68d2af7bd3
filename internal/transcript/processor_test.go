package transcript

import (
	"bytes"
	"context"
	"testing"

	"github.com/funvibe/miniscript/internal/ast"
	"github.com/funvibe/miniscript/internal/evaluator"
	"github.com/funvibe/miniscript/internal/pipeline"
)

func TestProcessorRecordsRun(t *testing.T) {
	r := openTemp(t)

	ctx := pipeline.NewPipelineContext("prog.yaml", nil, nil)
	ctx.Program = &ast.Program{File: "prog.yaml"}
	ctx.Backend = "tree-walk"
	ctx.Captured = bytes.NewBufferString("hello")
	ctx.RuntimeErrors = []*evaluator.RuntimeError{
		{Kind: evaluator.UndeclaredError, Line: 2, Name: "y"},
	}

	ctx = NewProcessor(r, nil).Process(ctx)
	if len(ctx.Errors) != 0 {
		t.Fatalf("errors: %v", ctx.Errors)
	}
	if ctx.RunID == "" {
		t.Fatal("RunID not set")
	}

	runs, err := r.Runs(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Output != "hello" {
		t.Fatalf("runs = %+v", runs)
	}
	diags, err := r.Diagnostics(context.Background(), ctx.RunID)
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 1 || diags[0].Kind != "undeclared" || diags[0].Message != "Line 2, y undeclared" {
		t.Errorf("diagnostics = %+v", diags)
	}
}

func TestProcessorSkips(t *testing.T) {
	// No recorder configured.
	ctx := pipeline.NewPipelineContext("prog.yaml", nil, nil)
	ctx.Program = &ast.Program{}
	ctx.Backend = "tree-walk"
	if got := NewProcessor(nil, nil).Process(ctx); got.RunID != "" || len(got.Errors) != 0 {
		t.Errorf("processor without recorder changed the context: %+v", got)
	}

	// Program never ran.
	r := openTemp(t)
	ctx = pipeline.NewPipelineContext("prog.yaml", nil, nil)
	NewProcessor(r, nil).Process(ctx)
	runs, err := r.Runs(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("recorded %d runs for a program that never ran", len(runs))
	}
}
