package pdfgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vigovia/inliner"
	"vigovia/models"
	"vigovia/render"
)

// Document is the finished export: the PDF bytes and the download filename.
type Document struct {
	Bytes    []byte
	Filename string
}

// MarkupInliner resolves remote image references to embedded ones. It never
// fails; bad images come back as placeholders.
type MarkupInliner interface {
	Inline(ctx context.Context, markup string) string
}

// Engine runs the full export pipeline: render, inline, settle, rasterize,
// paginate, compose. There is no cancellation once an export starts beyond
// honoring the caller's context, and no retries anywhere.
type Engine struct {
	Inliner  MarkupInliner
	Raster   Rasterizer
	Opts     RasterOptions
	Composer NewComposer

	// OnStage, when set, receives pipeline stage names as they begin.
	OnStage func(stage string)
}

func NewEngine(r Rasterizer) *Engine {
	return &Engine{
		Inliner:  inliner.New(),
		Raster:   r,
		Opts:     DefaultRasterOptions(),
		Composer: NewPDFComposer,
	}
}

func (e *Engine) stage(s string) {
	if e.OnStage != nil {
		e.OnStage(s)
	}
}

// Export turns a frozen itinerary snapshot into the paginated document.
// Rasterization and composition failures propagate to the caller; the
// caller owns the user-facing failure notice.
func (e *Engine) Export(ctx context.Context, it models.Itinerary) (Document, error) {
	e.stage("rendering")
	markup, err := render.Render(it)
	if err != nil {
		return Document{}, err
	}

	e.stage("inlining")
	markup = e.Inliner.Inline(ctx, markup)

	// Pragmatic settling wait for embedded images and fonts, not an
	// event-driven guarantee.
	select {
	case <-ctx.Done():
		return Document{}, ctx.Err()
	case <-time.After(e.Opts.SettleDelay):
	}

	e.stage("rasterizing")
	bmp, err := e.Raster.Rasterize(ctx, Surface{HTML: markup}, e.Opts)
	if err != nil {
		return Document{}, err
	}

	e.stage("composing")
	comp, err := e.Composer(bmp)
	if err != nil {
		return Document{}, err
	}

	b := bmp.Bounds()
	pages := PageCount(b.Dx(), b.Dy())
	for i := 0; i < pages; i++ {
		comp.AddPage(PageOffsetMM(i), i == pages-1)
	}

	out, err := comp.Output()
	if err != nil {
		return Document{}, err
	}

	return Document{Bytes: out, Filename: Filename(it)}, nil
}

// Filename names the download from destination and traveler, with literal
// fallbacks when either is blank.
func Filename(it models.Itinerary) string {
	dest := strings.TrimSpace(it.Destination)
	if dest == "" {
		dest = "Itinerary"
	}
	traveler := strings.TrimSpace(it.TravelerName)
	if traveler == "" {
		traveler = "Traveler"
	}
	return fmt.Sprintf("%s-Itinerary-%s.pdf", dest, traveler)
}
