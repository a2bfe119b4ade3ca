// Package salayouts implements the geometric layout algorithms of the
// diagram engine. Every algorithm is a pure function from a list of
// sibling tree nodes and a read-only context to freshly allocated,
// positioned layout nodes.
package salayouts

import (
	"strconv"

	"oss.terrastruct.com/smartart/lib/geo"
	"oss.terrastruct.com/smartart/sagraph"
)

// AlgorithmType is a closed enum, one case per algorithm. Unknown
// tags from untrusted input resolve to Linear at the parse boundary,
// so dispatch itself is exhaustive.
type AlgorithmType int

const (
	AlgorithmLinear AlgorithmType = iota
	AlgorithmSpace
	AlgorithmHierChild
	AlgorithmHierRoot
	AlgorithmCycle
	AlgorithmSnake
	AlgorithmPyramid
	AlgorithmComposite
	AlgorithmConnector
	AlgorithmText
)

var algorithmTags = map[string]AlgorithmType{
	"lin":       AlgorithmLinear,
	"sp":        AlgorithmSpace,
	"hierChild": AlgorithmHierChild,
	"hierRoot":  AlgorithmHierRoot,
	"cycle":     AlgorithmCycle,
	"snake":     AlgorithmSnake,
	"pyra":      AlgorithmPyramid,
	"composite": AlgorithmComposite,
	"conn":      AlgorithmConnector,
	"tx":        AlgorithmText,
}

func (a AlgorithmType) String() string {
	for tag, t := range algorithmTags {
		if t == a {
			return tag
		}
	}
	return "lin"
}

// ParseAlgorithmType maps a layout-definition tag onto the enum. An
// unknown or empty tag reports false and falls back to Linear.
func ParseAlgorithmType(tag string) (AlgorithmType, bool) {
	t, ok := algorithmTags[tag]
	if !ok {
		return AlgorithmLinear, false
	}
	return t, true
}

const (
	DefaultNodeWidth  = 100
	DefaultNodeHeight = 60
	DefaultSpacing    = 20
)

// LayoutContext is built once per algorithm invocation and read-only
// during it.
type LayoutContext struct {
	Bounds      *geo.Box
	Params      map[string]string
	Constraints []*Constraint

	DefaultSpacing    float64
	DefaultNodeWidth  float64
	DefaultNodeHeight float64
}

func NewDefaultContext(bounds *geo.Box, params map[string]string, constraints []*Constraint) *LayoutContext {
	if bounds == nil {
		bounds = geo.NewBox(geo.NewPoint(0, 0), 0, 0)
	}
	return &LayoutContext{
		Bounds:            bounds,
		Params:            params,
		Constraints:       constraints,
		DefaultSpacing:    DefaultSpacing,
		DefaultNodeWidth:  DefaultNodeWidth,
		DefaultNodeHeight: DefaultNodeHeight,
	}
}

func (ctx *LayoutContext) Param(key, fallback string) string {
	if v, ok := ctx.Params[key]; ok && v != "" {
		return v
	}
	return fallback
}

func (ctx *LayoutContext) FloatParam(key string, fallback float64) float64 {
	if v, ok := ctx.Params[key]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

// ConstraintValue statically resolves the first constraint of the
// given type that carries an explicit value, with its factor and
// clamps applied. Algorithms use it for sizes and spacing before any
// node geometry exists.
func (ctx *LayoutContext) ConstraintValue(t ConstraintType) (float64, bool) {
	for _, c := range ctx.Constraints {
		if c.Type != t || c.Value == nil {
			continue
		}
		return c.resolve(*c.Value), true
	}
	return 0, false
}

func (ctx *LayoutContext) NodeWidth() float64 {
	if v, ok := ctx.ConstraintValue(ConstraintWidth); ok {
		return v
	}
	return ctx.DefaultNodeWidth
}

func (ctx *LayoutContext) NodeHeight() float64 {
	if v, ok := ctx.ConstraintValue(ConstraintHeight); ok {
		return v
	}
	return ctx.DefaultNodeHeight
}

func (ctx *LayoutContext) Spacing() float64 {
	if v, ok := ctx.ConstraintValue(ConstraintSpacing); ok {
		return v
	}
	if v, ok := ctx.ConstraintValue(ConstraintSiblingSpacing); ok {
		return v
	}
	return ctx.DefaultSpacing
}

// LayoutNode is a tree node after geometric placement. Fresh per
// invocation; constraint application copies rather than mutates.
type LayoutNode struct {
	TreeNode *sagraph.TreeNode

	X      float64
	Y      float64
	Width  float64
	Height float64
	// Rotation in degrees, clockwise.
	Rotation float64

	Children    []*LayoutNode
	IsConnector bool
}

func (n *LayoutNode) Box() *geo.Box {
	return geo.NewBox(geo.NewPoint(n.X, n.Y), n.Width, n.Height)
}

func (n *LayoutNode) Copy() *LayoutNode {
	n2 := *n
	n2.Children = append([]*LayoutNode(nil), n.Children...)
	return &n2
}

type LayoutResult struct {
	Nodes  []*LayoutNode
	Bounds *geo.Box
}

func emptyResult() *LayoutResult {
	return &LayoutResult{Bounds: geo.NewBox(geo.NewPoint(0, 0), 0, 0)}
}

// resultBounds folds the placed nodes into a bounding box, falling
// back to a zero box so degenerate inputs stay well-formed.
func resultBounds(nodes []*LayoutNode) *geo.Box {
	var b *geo.Box
	for _, n := range nodes {
		b = b.Union(n.Box())
	}
	if b == nil {
		b = geo.NewBox(geo.NewPoint(0, 0), 0, 0)
	}
	return b
}

// Apply dispatches nodes to the algorithm. The switch is exhaustive
// over the closed enum; there is no registry to miss.
func Apply(algo AlgorithmType, nodes []*sagraph.TreeNode, ctx *LayoutContext) *LayoutResult {
	if len(nodes) == 0 {
		return emptyResult()
	}
	switch algo {
	case AlgorithmLinear:
		return layoutLinear(nodes, ctx)
	case AlgorithmSpace:
		return layoutSpace(nodes, ctx)
	case AlgorithmHierChild:
		return layoutHierChild(nodes, ctx)
	case AlgorithmHierRoot:
		// hierRoot is hierChild with the root as the only level-0 node.
		return layoutHierChild(nodes, ctx)
	case AlgorithmCycle:
		return layoutCycle(nodes, ctx)
	case AlgorithmSnake:
		return layoutSnake(nodes, ctx)
	case AlgorithmPyramid:
		return layoutPyramid(nodes, ctx)
	case AlgorithmComposite:
		return layoutComposite(nodes, ctx)
	case AlgorithmConnector:
		return layoutConnector(nodes, ctx)
	case AlgorithmText:
		return layoutText(nodes, ctx)
	}
	return layoutLinear(nodes, ctx)
}

// Horizontal alignment values: l, ctr, r. Vertical: t, mid, b.
func alignHorizontal(bounds *geo.Box, width float64, align string) float64 {
	switch align {
	case "l":
		return bounds.TopLeft.X
	case "r":
		return bounds.TopLeft.X + bounds.Width - width
	default: // ctr
		return bounds.TopLeft.X + (bounds.Width-width)/2
	}
}

func alignVertical(bounds *geo.Box, height float64, align string) float64 {
	switch align {
	case "t":
		return bounds.TopLeft.Y
	case "b":
		return bounds.TopLeft.Y + bounds.Height - height
	default: // mid
		return bounds.TopLeft.Y + (bounds.Height-height)/2
	}
}
