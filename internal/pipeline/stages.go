package pipeline

import (
	"github.com/hashicorp/go-hclog"

	"github.com/vult-lang/vultparse/internal/dump"
	"github.com/vult-lang/vultparse/internal/lexer"
	"github.com/vult-lang/vultparse/internal/parser"
)

// ParseStage lexes and parses ctx.Source, populating ctx.Results,
// ctx.Lines and ctx.Errors.
type ParseStage struct {
	Log hclog.Logger
}

func (s *ParseStage) Process(ctx *Context) *Context {
	lx := lexer.New(ctx.File, ctx.Source)
	results := parser.ParseBuffer(lx, ctx.File)
	ctx.Lines = results.Lines
	ctx.Results = results
	if !results.OK() {
		ctx.Errors = results.Errors
		if s.Log != nil {
			s.Log.Debug("parse failed", "file", ctx.File, "errors", len(results.Errors))
		}
	}
	return ctx
}

// DumpStage renders the parsed statements back to text via the dump
// package, skipping the work entirely if an earlier stage recorded
// errors.
type DumpStage struct{}

func (s *DumpStage) Process(ctx *Context) *Context {
	if len(ctx.Errors) > 0 || ctx.Results == nil {
		return ctx
	}
	ctx.Rendered = dump.StmtList(ctx.Results.Statements)
	return ctx
}
