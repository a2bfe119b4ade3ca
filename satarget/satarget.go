// Package satarget holds the render-ready output of the engine: a
// flat list of positioned, styled shapes plus generation metadata,
// consumed by external serializers and renderers.
package satarget

import (
	"oss.terrastruct.com/smartart/lib/geo"
	"oss.terrastruct.com/smartart/sagraph"
)

// Preset shape types. The catalog mirrors the preset geometry names
// of the office drawing format; the engine only ever emits tags, it
// never rasterizes them.
const (
	ShapeRectangle        = "rect"
	ShapeRoundedRectangle = "roundRect"
	ShapeEllipse          = "ellipse"
	ShapeDiamond          = "diamond"
	ShapeTriangle         = "triangle"
	ShapeTrapezoid        = "trapezoid"
	ShapeChevron          = "chevron"
	ShapePie              = "pie"
	ShapeArrowRight       = "rightArrow"
	ShapeConnector        = "conn"
)

// Shape is one positioned, styled output shape. Children is always
// empty; the output is flat by contract.
type Shape struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation,omitempty"`

	FillColor string   `json:"fillColor,omitempty"`
	LineColor string   `json:"lineColor,omitempty"`
	LineWidth *float64 `json:"lineWidth,omitempty"`

	Text string `json:"text,omitempty"`

	Children []*Shape `json:"children"`

	// SourceNodeID links back to the data-model point.
	SourceNodeID string `json:"sourceNodeId"`
}

func (s *Shape) Box() *geo.Box {
	return geo.NewBox(geo.NewPoint(s.X, s.Y), s.Width, s.Height)
}

// Diagnostic is a non-fatal warning collected during one generation
// call. Diagnostics travel with the result, never through a global
// logger, so concurrent generations cannot interleave.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	DiagUnknownAlgorithm = "unknown-algorithm"
	DiagMissingStyle     = "missing-style"
)

type ShapeGenerationResult struct {
	Shapes []*Shape `json:"shapes"`
	Bounds *geo.Box `json:"bounds"`

	Tree        *sagraph.TreeResult `json:"-"`
	Diagnostics []Diagnostic        `json:"diagnostics,omitempty"`
}

// TotalBounds folds the shapes' boxes, falling back to fallback when
// no shapes were produced.
func TotalBounds(shapes []*Shape, fallback *geo.Box) *geo.Box {
	var b *geo.Box
	for _, s := range shapes {
		b = b.Union(s.Box())
	}
	if b == nil {
		return fallback.Copy()
	}
	return b
}
