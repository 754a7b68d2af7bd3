package modules

import "github.com/funvibe/miniscript/internal/pipeline"

// LoadProcessor fills the context's Program from its FilePath.
type LoadProcessor struct {
	Loader *Loader
}

func NewLoadProcessor(loader *Loader) *LoadProcessor {
	if loader == nil {
		loader = NewLoader()
	}
	return &LoadProcessor{Loader: loader}
}

func (p *LoadProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Program != nil {
		return ctx
	}
	prog, err := p.Loader.Load(ctx.FilePath)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Program = prog
	return ctx
}
