package salayouts

import (
	"oss.terrastruct.com/smartart/sagraph"
)

// layoutLinear arranges nodes along one axis determined by linDir.
// The whole run is aligned within the bounds per nodeHorzAlign /
// nodeVertAlign, with the cross axis aligned directly against the
// full bounds.
func layoutLinear(nodes []*sagraph.TreeNode, ctx *LayoutContext) *LayoutResult {
	n := len(nodes)
	if n == 0 {
		return emptyResult()
	}

	dir := ctx.Param("linDir", "fromL")
	horizontal := dir == "fromL" || dir == "fromR"
	reversed := dir == "fromR" || dir == "fromB"

	ordered := nodes
	if reversed {
		ordered = make([]*sagraph.TreeNode, n)
		for i, tn := range nodes {
			ordered[n-1-i] = tn
		}
	}

	w := ctx.NodeWidth()
	h := ctx.NodeHeight()
	sp := ctx.Spacing()

	size := h
	if horizontal {
		size = w
	}
	total := float64(n)*size + float64(n-1)*sp

	bounds := ctx.Bounds
	out := make([]*LayoutNode, 0, n)
	if horizontal {
		x := alignHorizontal(bounds, total, ctx.Param("nodeHorzAlign", "ctr"))
		y := alignVertical(bounds, h, ctx.Param("nodeVertAlign", "mid"))
		for _, tn := range ordered {
			out = append(out, &LayoutNode{TreeNode: tn, X: x, Y: y, Width: w, Height: h})
			x += size + sp
		}
	} else {
		x := alignHorizontal(bounds, w, ctx.Param("nodeHorzAlign", "ctr"))
		y := alignVertical(bounds, total, ctx.Param("nodeVertAlign", "mid"))
		for _, tn := range ordered {
			out = append(out, &LayoutNode{TreeNode: tn, X: x, Y: y, Width: w, Height: h})
			y += size + sp
		}
	}

	return &LayoutResult{Nodes: out, Bounds: resultBounds(out)}
}
