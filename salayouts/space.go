package salayouts

import (
	"oss.terrastruct.com/smartart/sagraph"
)

// layoutSpace places each node (normally exactly one) aligned within
// the bounds. Used for spacer and placeholder slots.
func layoutSpace(nodes []*sagraph.TreeNode, ctx *LayoutContext) *LayoutResult {
	return alignEach(nodes, ctx)
}

// layoutText is a text-only layout slot with the same placement
// mechanics as space. The text body itself stays opaque.
func layoutText(nodes []*sagraph.TreeNode, ctx *LayoutContext) *LayoutResult {
	return alignEach(nodes, ctx)
}

// layoutComposite centers each top-level node in the full bounds.
// Sub-layouts are sibling algorithm invocations driven by the shape
// generator, never composed here.
func layoutComposite(nodes []*sagraph.TreeNode, ctx *LayoutContext) *LayoutResult {
	return alignEach(nodes, ctx)
}

func alignEach(nodes []*sagraph.TreeNode, ctx *LayoutContext) *LayoutResult {
	if len(nodes) == 0 {
		return emptyResult()
	}
	w := ctx.NodeWidth()
	h := ctx.NodeHeight()
	x := alignHorizontal(ctx.Bounds, w, ctx.Param("nodeHorzAlign", "ctr"))
	y := alignVertical(ctx.Bounds, h, ctx.Param("nodeVertAlign", "mid"))

	out := make([]*LayoutNode, 0, len(nodes))
	for _, tn := range nodes {
		out = append(out, &LayoutNode{TreeNode: tn, X: x, Y: y, Width: w, Height: h})
	}
	return &LayoutResult{Nodes: out, Bounds: resultBounds(out)}
}
