package pdf

import (
	"fmt"

	"github.com/flanksource/commons/logger"
	"github.com/samber/lo"

	"github.com/quillpdf/quill/api"
	"github.com/quillpdf/quill/chart"
	"github.com/quillpdf/quill/pdf/grid"
)

// Engine assembles reports into paginated PDFs. An Engine is stateless
// across calls: every Generate owns its own builder, cursor and image cache,
// so independent engines (or repeated calls) may run concurrently.
type Engine struct {
	opts     api.Options
	renderer chart.Renderer
	layouter TableLayouter
}

// Option configures an Engine.
type Option func(*Engine)

// WithChartRenderer replaces the default SVG chart renderer.
func WithChartRenderer(r chart.Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithTableLayouter replaces the default grid layout delegate.
func WithTableLayouter(l TableLayouter) Option {
	return func(e *Engine) {
		e.layouter = l
	}
}

// New creates an engine for the given options.
func New(opts api.Options, engineOpts ...Option) *Engine {
	e := &Engine{
		opts:     opts.Normalized(),
		renderer: chart.NewSVGRenderer(),
		layouter: grid.New(),
	}
	for _, opt := range engineOpts {
		opt(e)
	}
	return e
}

// Generate assembles the report into a PDF. Phases run strictly in order:
// document metadata, cover page, optional TOC, the chart pre-render batch
// (the one concurrent phase, fully awaited), the sequential section loop,
// the page-numbering finalizer, serialization. A serialization failure is
// fatal and returns an error with no partial output; individual chart
// failures surface as inline markers inside a complete document.
func (e *Engine) Generate(report api.ReportData) ([]byte, error) {
	b := NewBuilder(e.opts)
	b.SetMetadata(report.Metadata)

	e.renderCover(b, report.Metadata)
	if e.opts.IncludeTableOfContents {
		e.renderTOC(b, report.Sections)
	}

	charts := lo.FilterMap(report.Sections, func(s api.Section, _ int) (api.ChartSection, bool) {
		c, ok := s.(api.ChartSection)
		return c, ok
	})
	cache := chart.Prerender(e.renderer, charts, b.ContentWidth(), e.opts.Quality)

	// first content page: present even for an empty section list
	b.AddPage()
	cur := b.StartCursor()

	var err error
	for _, section := range report.Sections {
		if cur, err = e.renderSection(b, cur, section, cache); err != nil {
			return nil, err
		}
	}

	if e.opts.IncludePageNumbers {
		b.stampPageNumbers()
	}

	out, err := b.Output()
	if err != nil {
		return nil, fmt.Errorf("report %q: %w", report.Metadata.Title, err)
	}

	logger.Debugf("generated report %q: %d sections, %d pages, %d bytes",
		report.Metadata.Title, len(report.Sections), b.PageCount(), len(out))
	return out, nil
}
