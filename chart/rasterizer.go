// Package chart rasterizes chart configurations into PNG images and
// pre-renders them in batch for the layout engine.
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/quillpdf/quill/api"
)

// Renderer rasterizes a single chart configuration into an encoded image.
// It must be safe for concurrent use: the pre-render batch calls it from
// multiple goroutines.
type Renderer interface {
	Render(config api.ChartConfig, theme string, widthPx, heightPx int) ([]byte, error)
}

// RenderError is returned when a chart cannot be rasterized.
type RenderError struct {
	Stage string // "compose" or "rasterize"
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("chart %s failed: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// SVGRenderer composes charts as SVG and rasterizes them to PNG in-process.
type SVGRenderer struct{}

// NewSVGRenderer creates the default chart renderer.
func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{}
}

// Render implements Renderer.
func (r *SVGRenderer) Render(config api.ChartConfig, theme string, widthPx, heightPx int) ([]byte, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return nil, &RenderError{Stage: "compose", Err: fmt.Errorf("invalid target size %dx%d", widthPx, heightPx)}
	}

	svgBytes, err := composeSVG(config, api.ThemeByName(theme), widthPx, heightPx)
	if err != nil {
		return nil, &RenderError{Stage: "compose", Err: err}
	}

	pngBytes, err := rasterize(svgBytes, widthPx, heightPx)
	if err != nil {
		return nil, &RenderError{Stage: "rasterize", Err: err}
	}

	return pngBytes, nil
}

// rasterize converts SVG bytes to PNG bytes at the exact target size.
func rasterize(svgBytes []byte, widthPx, heightPx int) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgBytes), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	icon.SetTarget(0, 0, float64(widthPx), float64(heightPx))

	rgba := image.NewRGBA(image.Rect(0, 0, widthPx, heightPx))
	scanner := rasterx.NewScannerGV(widthPx, heightPx, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(widthPx, heightPx, scanner)
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// pixels per mm at the draft quality tier
const basePxPerMM = 4.0

// PixelSize resolves a size class to target pixel dimensions for the given
// content width (mm) and quality tier.
func PixelSize(size api.SizeClass, contentWidth float64, quality api.Quality) (widthPx, heightPx int) {
	w, h := size.Dimensions(contentWidth)
	m := float64(quality.Multiplier())
	return int(w * basePxPerMM * m), int(h * basePxPerMM * m)
}
