// Package smartart generates positioned, styled shapes from a
// declarative diagram data model and an optional layout-definition
// tree. It is the orchestrator over the tree builder, the layout
// algorithms, the constraint resolver, and the style resolver; the
// output is a flat shape list for an external serializer or renderer.
package smartart

import (
	"context"
	"fmt"

	"cdr.dev/slog"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/smartart/lib/geo"
	"oss.terrastruct.com/smartart/lib/log"
	"oss.terrastruct.com/smartart/sagraph"
	"oss.terrastruct.com/smartart/salayouts"
	"oss.terrastruct.com/smartart/sastyle"
	"oss.terrastruct.com/smartart/satarget"
)

const (
	DefaultBoundsWidth  = 800
	DefaultBoundsHeight = 600
)

// ShapeGenerationConfig carries caller defaults. Zero values fall
// back to the engine-wide defaults.
type ShapeGenerationConfig struct {
	Bounds      *geo.Box
	ThemeColors map[string]string

	DefaultShapeType  string
	DefaultNodeWidth  float64
	DefaultNodeHeight float64
	DefaultSpacing    float64
}

// GenerateOptions bundles the optional definitions of one generation
// call. A nil options pointer means all defaults.
type GenerateOptions struct {
	Layout *salayouts.LayoutDefinition
	Style  *sastyle.StyleDefinition
	Colors *sastyle.ColorsDefinition
	Config ShapeGenerationConfig
}

// GenerateDiagramShapes builds the tree from dm, walks the layout
// definition (or falls back to a linear layout of the content nodes),
// and emits one shape per resolved layout node. Structural defects in
// the data model are the only hard failures; everything else degrades
// to defaults with a diagnostic.
func GenerateDiagramShapes(ctx context.Context, dm *sagraph.DataModel, opts *GenerateOptions) (_ *satarget.ShapeGenerationResult, err error) {
	defer xdefer.Errorf(&err, "failed to generate diagram shapes")

	if opts == nil {
		opts = &GenerateOptions{}
	}

	tree, err := sagraph.BuildTree(dm, nil)
	if err != nil {
		return nil, err
	}

	g := newGenerator(opts, tree)

	if opts.Layout == nil || opts.Layout.Root == nil {
		g.generateDefault()
	} else {
		for _, root := range tree.Roots {
			g.process(opts.Layout.Root, root, g.bounds)
		}
	}

	for _, d := range g.diagnostics {
		log.Warn(ctx, d.Message, slog.F("code", d.Code))
	}

	return &satarget.ShapeGenerationResult{
		Shapes:      g.shapes,
		Bounds:      satarget.TotalBounds(g.shapes, g.bounds),
		Tree:        tree,
		Diagnostics: g.diagnostics,
	}, nil
}

type generator struct {
	cfg      ShapeGenerationConfig
	bounds   *geo.Box
	tree     *sagraph.TreeResult
	styleCtx *sastyle.Context

	shapes      []*satarget.Shape
	diagnostics []satarget.Diagnostic
	usedIDs     map[string]int
}

func newGenerator(opts *GenerateOptions, tree *sagraph.TreeResult) *generator {
	bounds := opts.Config.Bounds
	if bounds == nil {
		bounds = geo.NewBox(geo.NewPoint(0, 0), DefaultBoundsWidth, DefaultBoundsHeight)
	}
	return &generator{
		cfg:    opts.Config,
		bounds: bounds,
		tree:   tree,
		styleCtx: &sastyle.Context{
			Style:       opts.Style,
			Colors:      opts.Colors,
			ThemeColors: opts.Config.ThemeColors,
		},
		shapes:  []*satarget.Shape{},
		usedIDs: make(map[string]int),
	}
}

func (g *generator) diag(code, format string, v ...interface{}) {
	g.diagnostics = append(g.diagnostics, satarget.Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(format, v...),
	})
}

func (g *generator) newLayoutContext(bounds *geo.Box, params map[string]string, constraints []*salayouts.Constraint) *salayouts.LayoutContext {
	lctx := salayouts.NewDefaultContext(bounds, params, constraints)
	if g.cfg.DefaultNodeWidth > 0 {
		lctx.DefaultNodeWidth = g.cfg.DefaultNodeWidth
	}
	if g.cfg.DefaultNodeHeight > 0 {
		lctx.DefaultNodeHeight = g.cfg.DefaultNodeHeight
	}
	if g.cfg.DefaultSpacing > 0 {
		lctx.DefaultSpacing = g.cfg.DefaultSpacing
	}
	return lctx
}

// generateDefault is the no-layout-definition fallback: every content
// node in the tree, laid out linearly in the configured bounds.
func (g *generator) generateDefault() {
	var nodes []*sagraph.TreeNode
	for _, root := range g.tree.Roots {
		for _, n := range root.Descendants() {
			if salayouts.IsContentNode(n) {
				nodes = append(nodes, n)
			}
		}
	}

	lctx := g.newLayoutContext(g.bounds, nil, nil)
	res := salayouts.Apply(salayouts.AlgorithmLinear, nodes, lctx)
	for i, ln := range res.Nodes {
		g.emit(ln, nil, i, len(res.Nodes))
	}
}

// process runs one layout-definition node against one tree node:
// choose evaluation, selection, algorithm, constraints, emission,
// then the definition's children against each result.
func (g *generator) process(def *salayouts.DefinitionNode, node *sagraph.TreeNode, bounds *geo.Box) {
	if picked := salayouts.EvaluateChoose(def.Choose, node); picked != nil {
		// Branches are evaluated one level deep; the picked arm
		// replaces this definition node wholesale.
		def = picked
	}

	algo, known := salayouts.ParseAlgorithmType(def.Algorithm)
	if def.Algorithm != "" && !known {
		g.diag(satarget.DiagUnknownAlgorithm,
			"unknown layout algorithm %q at %q, falling back to linear", def.Algorithm, def.Name)
	}

	selected := def.ForEach.Select(node)
	lctx := g.newLayoutContext(bounds, def.Params, def.Constraints)
	res := salayouts.Apply(algo, selected, lctx)
	placed := salayouts.ApplyConstraintsToLayout(res.Nodes, def.Constraints, bounds)

	for i, ln := range placed {
		g.emit(ln, def, i, len(placed))
		g.emitNested(ln, def)
		for _, childDef := range def.Children {
			g.process(childDef, ln.TreeNode, ln.Box())
		}
	}
}

// emitNested flattens layout children produced inside an algorithm
// (the hierarchy family positions whole subtrees in one invocation).
// Nested nodes belong to the same definition level, so they keep its
// declared shape and style label. Each sibling group gets its own
// style resolution window.
func (g *generator) emitNested(ln *salayouts.LayoutNode, def *salayouts.DefinitionNode) {
	for j, child := range ln.Children {
		g.emit(child, def, j, len(ln.Children))
		g.emitNested(child, def)
	}
}

// emit converts one resolved layout node into exactly one flat shape.
func (g *generator) emit(ln *salayouts.LayoutNode, def *salayouts.DefinitionNode, i, n int) {
	tn := ln.TreeNode

	var style *sastyle.ResolvedStyle
	if def != nil && def.StyleLabel != "" {
		style = sastyle.ResolveLabelStyle(def.StyleLabel, i, n, g.styleCtx)
	} else {
		style = sastyle.ResolveNodeStyle(tn, i, n, g.styleCtx)
	}

	shapeType := g.cfg.DefaultShapeType
	if shapeType == "" {
		shapeType = satarget.ShapeRectangle
	}
	if ln.IsConnector {
		shapeType = satarget.ShapeConnector
	}
	if def != nil && def.Shape != "" {
		shapeType = def.Shape
	}

	s := &satarget.Shape{
		ID:           g.uniqueID(tn.ID),
		Type:         shapeType,
		X:            ln.X,
		Y:            ln.Y,
		Width:        ln.Width,
		Height:       ln.Height,
		Rotation:     ln.Rotation,
		FillColor:    style.FillColor,
		LineColor:    style.LineColor,
		LineWidth:    style.LineWidth,
		Text:         tn.Text,
		Children:     []*satarget.Shape{},
		SourceNodeID: tn.ID,
	}

	// Explicit per-point shape properties win over resolved style.
	if sp := tn.ShapeProperties; sp != nil {
		if sp.FillColor != "" {
			s.FillColor = sp.FillColor
		}
		if sp.LineColor != "" {
			s.LineColor = sp.LineColor
		}
		if sp.LineWidth != nil {
			s.LineWidth = sp.LineWidth
		}
		if sp.PresetGeometry != "" {
			s.Type = sp.PresetGeometry
		}
		if sp.Rotation != nil {
			s.Rotation = *sp.Rotation
		}
	}

	g.shapes = append(g.shapes, s)
}

// uniqueID keeps shape IDs unique within one generation call. A
// source node emitted twice gets an ordinal suffix.
func (g *generator) uniqueID(base string) string {
	if base == "" {
		base = "shape"
	}
	count := g.usedIDs[base]
	g.usedIDs[base] = count + 1
	if count == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, count)
}
