// Package pipeline chains the lex/parse/report stages the CLI runs in
// sequence, the way the teacher chains analysis stages over a shared
// context.
package pipeline

import (
	"github.com/vult-lang/vultparse/internal/lexer"
	"github.com/vult-lang/vultparse/internal/parser"
)

// Context holds the data passed between pipeline stages: the source
// being processed, and whatever each stage has produced so far.
type Context struct {
	File   string
	Source string

	Lines   *lexer.LineBuffer
	Results *parser.Results
	Errors  []error

	// Rendered holds a stage's textual output, e.g. a dump-processor's
	// rendering of the parsed statements.
	Rendered string
}

// NewContext builds the initial context for a source file.
func NewContext(file, source string) *Context {
	return &Context{File: file, Source: source}
}

// Processor is any stage that can transform a Context.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline is an ordered sequence of Processors.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from the given stages, run in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, threading the context through. A
// stage that records Errors is still given a chance to run — later
// stages are expected to check ctx.Errors before doing expensive work.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
